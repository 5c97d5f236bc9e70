package api

import "context"

// StoreFront is a grocery storefront on the platform.
type StoreFront struct {
	StoreID string `json:"store_id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	OwnerID string `json:"owner_id,omitempty"`
}

// StoreService is the /stores resource client. It backs the durable
// selectedStore entry.
type StoreService struct {
	client *Client
}

// NewStoreService wraps the low-level client.
func NewStoreService(client *Client) *StoreService {
	return &StoreService{client: client}
}

// List returns all storefronts.
func (s *StoreService) List(ctx context.Context) ([]StoreFront, error) {
	var out []StoreFront
	if err := s.client.get(ctx, "/stores", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches a single storefront.
func (s *StoreService) Get(ctx context.Context, storeID string) (*StoreFront, error) {
	var out StoreFront
	if err := s.client.get(ctx, "/stores/"+storeID, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
