package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aaravmahajanofficial/eshop-checkout/internal/api/middleware"
	"github.com/aaravmahajanofficial/eshop-checkout/internal/errors"
	service "github.com/aaravmahajanofficial/eshop-checkout/internal/services"
	"github.com/aaravmahajanofficial/eshop-checkout/internal/utils/response"
)

type RankingHandler struct {
	rankingService service.RankingService
	assets         *AssetPresenter
}

func NewRankingHandler(rankingService service.RankingService, assets *AssetPresenter) *RankingHandler {
	return &RankingHandler{rankingService: rankingService, assets: assets}
}

// TopOrdered godoc
//	@Summary		Best sellers by units ordered
//	@Tags			Bestsellers
//	@Produce		json
//	@Param			limit	query		int							false	"Number of products (default: 10, max: 50)"	minimum(1)	maximum(50)
//	@Success		200		{array}		models.ProductOrderCount	"Ranking"
//	@Failure		400		{object}	response.ErrorResponse		"Invalid limit"
//	@Router			/bestsellers/ordered [get]
func (h *RankingHandler) TopOrdered() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				response.Error(w, errors.BadRequestError("limit must be a positive integer"))
				return
			}
			limit = parsed
		}

		ranking, err := h.rankingService.TopOrdered(r.Context(), limit)
		if err != nil {
			logger.Error("Failed to load best sellers", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, h.assets.Ranking(ranking))
	}
}
