package service

import (
	"context"
	"strconv"
	"time"

	"github.com/aaravmahajanofficial/eshop-checkout/internal/cache"
	appErrors "github.com/aaravmahajanofficial/eshop-checkout/internal/errors"
	"github.com/aaravmahajanofficial/eshop-checkout/internal/models"
	repository "github.com/aaravmahajanofficial/eshop-checkout/internal/repositories"
)

const (
	DefaultBestsellerLimit = 10
	MaxBestsellerLimit     = 50

	rankingCacheTTL = time.Minute
)

type RankingService interface {
	TopOrdered(ctx context.Context, limit int) ([]models.ProductOrderCount, error)
}

type rankingService struct {
	repo  repository.InventoryRepository
	cache cache.Cache
}

func NewRankingService(repo repository.InventoryRepository, c cache.Cache) RankingService {
	return &rankingService{repo: repo, cache: c}
}

// TopOrdered lists products by order tally, most ordered first.
func (s *rankingService) TopOrdered(ctx context.Context, limit int) ([]models.ProductOrderCount, error) {
	if limit <= 0 {
		limit = DefaultBestsellerLimit
	}
	if limit > MaxBestsellerLimit {
		limit = MaxBestsellerLimit
	}

	key := cache.Key(cache.RankingKeyPrefix, "ordered", strconv.Itoa(limit))

	ranking, err := cache.Fetch(ctx, s.cache, key, rankingCacheTTL, func(ctx context.Context) ([]models.ProductOrderCount, error) {
		return s.repo.TopOrdered(ctx, limit)
	})
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch best sellers").WithError(err)
	}

	return ranking, nil
}
