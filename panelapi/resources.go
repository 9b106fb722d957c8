package panelapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	panelauth "github.com/hostpanel/panelauth"
)

// Server is a provisioned machine in the hosting inventory.
type Server struct {
	ID        string    `json:"id"`
	Hostname  string    `json:"hostname"`
	IPAddress string    `json:"ip_address"`
	Status    string    `json:"status"`
	PlanID    string    `json:"plan_id"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Plan is a sellable hosting configuration.
type Plan struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	CPUCores     int     `json:"cpu_cores"`
	MemoryMB     int     `json:"memory_mb"`
	DiskGB       int     `json:"disk_gb"`
	PriceMonthly float64 `json:"price_monthly"`
	Active       bool    `json:"active"`
}

// Order is a customer's purchase of a plan.
type Order struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	PlanID    string    `json:"plan_id"`
	Status    string    `json:"status"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}

// ListServers fetches the server inventory.
func (c *Client) ListServers(ctx context.Context, token string) ([]Server, error) {
	var servers []Server
	if err := c.Do(ctx, token, http.MethodGet, "/servers", nil, &servers); err != nil {
		return nil, err
	}
	return servers, nil
}

// ListPlans fetches the hosting plan catalog.
func (c *Client) ListPlans(ctx context.Context, token string) ([]Plan, error) {
	var plans []Plan
	if err := c.Do(ctx, token, http.MethodGet, "/plans", nil, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// ListOrders fetches all orders.
func (c *Client) ListOrders(ctx context.Context, token string) ([]Order, error) {
	var orders []Order
	if err := c.Do(ctx, token, http.MethodGet, "/orders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// ListUsers fetches a page of the user directory. page is 1-based; perPage
// of 0 leaves the page size to the server.
func (c *Client) ListUsers(ctx context.Context, token string, page, perPage int) ([]panelauth.User, error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", fmt.Sprint(page))
	}
	if perPage > 0 {
		query.Set("per_page", fmt.Sprint(perPage))
	}
	path := "/users"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var users []panelauth.User
	if err := c.Do(ctx, token, http.MethodGet, path, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}
