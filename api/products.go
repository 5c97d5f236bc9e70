package api

import (
	"context"
	"net/http"
)

// Product is a catalog item.
type Product struct {
	ProductID   string  `json:"product_id"`
	StoreID     string  `json:"store_id"`
	CategoryID  string  `json:"category_id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	ImageURL    string  `json:"image_url,omitempty"`
}

// ProductInput is the create/update payload for a product.
type ProductInput struct {
	StoreID     string  `json:"store_id,omitempty"`
	CategoryID  string  `json:"category_id,omitempty"`
	Name        string  `json:"name,omitempty"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price,omitempty"`
	Stock       int     `json:"stock,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
}

// ProductService is the /products resource client.
type ProductService struct {
	client *Client
}

// NewProductService wraps the low-level client.
func NewProductService(client *Client) *ProductService {
	return &ProductService{client: client}
}

// List returns the catalog.
func (s *ProductService) List(ctx context.Context) ([]Product, error) {
	var out []Product
	if err := s.client.get(ctx, "/products", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByStore returns one storefront's catalog.
func (s *ProductService) ListByStore(ctx context.Context, storeID string) ([]Product, error) {
	var out []Product
	if err := s.client.get(ctx, "/products/store/"+storeID, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches a single product.
func (s *ProductService) Get(ctx context.Context, productID string) (*Product, error) {
	var out Product
	if err := s.client.get(ctx, "/products/"+productID, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create adds a product.
func (s *ProductService) Create(ctx context.Context, req ProductInput) (*Product, error) {
	var out Product
	if err := s.client.send(ctx, http.MethodPost, "/products", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update applies a partial update to a product.
func (s *ProductService) Update(ctx context.Context, productID string, req ProductInput) (*Product, error) {
	var out Product
	if err := s.client.send(ctx, http.MethodPatch, "/products/"+productID, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a product.
func (s *ProductService) Delete(ctx context.Context, productID string) error {
	return s.client.send(ctx, http.MethodDelete, "/products/"+productID, nil, nil)
}
