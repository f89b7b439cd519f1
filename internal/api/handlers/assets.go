package handlers

import (
	"net/url"
	"strings"

	"github.com/aaravmahajanofficial/eshop-checkout/internal/models"
)

// AssetPresenter turns stored image paths into absolute URLs.
type AssetPresenter struct {
	baseURL string
}

func NewAssetPresenter(baseURL string) *AssetPresenter {
	return &AssetPresenter{baseURL: strings.TrimRight(baseURL, "/")}
}

func (p *AssetPresenter) URL(path string) string {
	if path == "" || p.baseURL == "" {
		return path
	}

	if u, err := url.Parse(path); err == nil && u.IsAbs() {
		return path
	}

	return p.baseURL + "/" + strings.TrimLeft(path, "/")
}

func (p *AssetPresenter) Cart(resp *models.CartResponse) *models.CartResponse {
	if resp == nil || resp.Cart == nil {
		return resp
	}

	for i := range resp.Cart.Items {
		resp.Cart.Items[i].ImageCover = p.URL(resp.Cart.Items[i].ImageCover)
	}

	return resp
}

func (p *AssetPresenter) Ranking(entries []models.ProductOrderCount) []models.ProductOrderCount {
	out := make([]models.ProductOrderCount, len(entries))
	for i, entry := range entries {
		entry.ImageCover = p.URL(entry.ImageCover)
		out[i] = entry
	}

	return out
}
