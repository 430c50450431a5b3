package gateway

import (
	"context"
	"net/http"
)

// Product is the catalog view of a product as served by the product API
type Product struct {
	ID           string  `json:"_id"`
	Name         string  `json:"name"`
	Slug         string  `json:"slug"`
	Category     string  `json:"category"`
	Image        string  `json:"image"`
	Price        float64 `json:"price"`
	Brand        string  `json:"brand"`
	Rating       float64 `json:"rating"`
	NumReviews   int     `json:"numReviews"`
	CountInStock int     `json:"countInStock"`
	Description  string  `json:"description"`
}

// CatalogClient reads products, stock levels and categories
type CatalogClient struct {
	*Client
}

func NewCatalogClient(c *Client) *CatalogClient {
	return &CatalogClient{Client: c}
}

// GetStock fetches the live stock count for a product key. Always a fresh
// round trip; cart quantities are validated against this, never against the
// persisted snapshot.
func (c *CatalogClient) GetStock(ctx context.Context, key string) (int, error) {
	var p Product
	if err := c.do(ctx, http.MethodGet, "/api/products/"+key, "", nil, &p); err != nil {
		return 0, err
	}
	return p.CountInStock, nil
}

// GetProduct fetches a product by slug
func (c *CatalogClient) GetProduct(ctx context.Context, slug string) (Product, error) {
	var p Product
	err := c.do(ctx, http.MethodGet, "/api/products/slug/"+slug, "", nil, &p)
	return p, err
}

// ListProducts fetches the whole catalog
func (c *CatalogClient) ListProducts(ctx context.Context) ([]Product, error) {
	var ps []Product
	err := c.do(ctx, http.MethodGet, "/api/products", "", nil, &ps)
	return ps, err
}

// ListCategories fetches the distinct product categories
func (c *CatalogClient) ListCategories(ctx context.Context) ([]string, error) {
	var cats []string
	err := c.do(ctx, http.MethodGet, "/api/products/categories", "", nil, &cats)
	return cats, err
}
