package api

import (
	"context"
	"net/http"
	"time"
)

// OrderStatus is the backend's order lifecycle state, passed through verbatim.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderPreparing OrderStatus = "preparing"
	OrderEnRoute   OrderStatus = "en_route"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// OrderItem is one product line on an order.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name,omitempty"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Order is a customer order as the backend returns it.
type Order struct {
	OrderID         string      `json:"order_id"`
	UserID          string      `json:"user_id"`
	StoreID         string      `json:"store_id"`
	DriverID        string      `json:"driver_id,omitempty"`
	Status          OrderStatus `json:"status"`
	Items           []OrderItem `json:"items"`
	Total           float64     `json:"total"`
	DeliveryAddress string      `json:"delivery_address"`
	CreatedAt       time.Time   `json:"created_at"`
}

// CreateOrderRequest places a new order.
type CreateOrderRequest struct {
	StoreID         string      `json:"store_id"`
	Items           []OrderItem `json:"items"`
	DeliveryAddress string      `json:"delivery_address"`
}

// UpdateOrderRequest is a partial PATCH; zero fields are omitted.
type UpdateOrderRequest struct {
	Status          OrderStatus `json:"status,omitempty"`
	DriverID        string      `json:"driver_id,omitempty"`
	DeliveryAddress string      `json:"delivery_address,omitempty"`
}

// OrderService is the /orders resource client.
type OrderService struct {
	client *Client
}

// NewOrderService wraps the low-level client.
func NewOrderService(client *Client) *OrderService {
	return &OrderService{client: client}
}

// List returns all orders visible to the caller's role.
func (s *OrderService) List(ctx context.Context) ([]Order, error) {
	var out []Order
	if err := s.client.get(ctx, "/orders", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByUser returns a user's orders.
func (s *OrderService) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	var out []Order
	if err := s.client.get(ctx, "/orders/user/"+userID, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches a single order.
func (s *OrderService) Get(ctx context.Context, orderID string) (*Order, error) {
	var out Order
	if err := s.client.get(ctx, "/orders/"+orderID, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create places an order.
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*Order, error) {
	var out Order
	if err := s.client.send(ctx, http.MethodPost, "/orders", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update applies a partial update to an order.
func (s *OrderService) Update(ctx context.Context, orderID string, req UpdateOrderRequest) (*Order, error) {
	var out Order
	if err := s.client.send(ctx, http.MethodPatch, "/orders/"+orderID, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Cancel deletes an order.
func (s *OrderService) Cancel(ctx context.Context, orderID string) error {
	return s.client.send(ctx, http.MethodDelete, "/orders/"+orderID, nil, nil)
}
