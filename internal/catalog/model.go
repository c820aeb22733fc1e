package catalog

import "context"

// Product is a catalog record as served by the products API.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       int      `json:"price"`
	Images      []string `json:"images"`
	Colors      []string `json:"colors"`
	Sizes       []string `json:"sizes,omitempty"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	IsNew       bool     `json:"isNew,omitempty"`
	IsSale      bool     `json:"isSale,omitempty"`
	Discount    int      `json:"discount,omitempty"`
	Date        string   `json:"date"`
}

// FirstImage returns the image snapshot used when adding to the cart.
func (p Product) FirstImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// Criteria is the filter payload for POST /products/filter.
type Criteria struct {
	MinPrice     int      `json:"minPrice"`
	MaxPrice     int      `json:"maxPrice"`
	Colors       []string `json:"colors"`
	ProductTypes []string `json:"productTypes"`
}

// FilterOptions is the filter vocabulary from GET /products/get-params.
type FilterOptions struct {
	Colors       []string   `json:"colors"`
	ProductTypes []string   `json:"productTypes"`
	PriceRange   PriceRange `json:"priceRange"`
}

type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Service is the read-only catalog surface the storefront consumes.
type Service interface {
	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	FilterProducts(ctx context.Context, criteria Criteria) ([]Product, error)
	GetFilterOptions(ctx context.Context) (*FilterOptions, error)
}
