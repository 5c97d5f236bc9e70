package api

import (
	"context"
	"net/http"
)

// Category groups catalog products.
type Category struct {
	CategoryID  string `json:"category_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CategoryInput is the create/update payload for a category.
type CategoryInput struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// CategoryService is the /categories resource client.
type CategoryService struct {
	client *Client
}

// NewCategoryService wraps the low-level client.
func NewCategoryService(client *Client) *CategoryService {
	return &CategoryService{client: client}
}

// List returns all categories.
func (s *CategoryService) List(ctx context.Context) ([]Category, error) {
	var out []Category
	if err := s.client.get(ctx, "/categories", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches a single category.
func (s *CategoryService) Get(ctx context.Context, categoryID string) (*Category, error) {
	var out Category
	if err := s.client.get(ctx, "/categories/"+categoryID, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create adds a category.
func (s *CategoryService) Create(ctx context.Context, req CategoryInput) (*Category, error) {
	var out Category
	if err := s.client.send(ctx, http.MethodPost, "/categories", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update applies a partial update to a category.
func (s *CategoryService) Update(ctx context.Context, categoryID string, req CategoryInput) (*Category, error) {
	var out Category
	if err := s.client.send(ctx, http.MethodPatch, "/categories/"+categoryID, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a category.
func (s *CategoryService) Delete(ctx context.Context, categoryID string) error {
	return s.client.send(ctx, http.MethodDelete, "/categories/"+categoryID, nil, nil)
}
