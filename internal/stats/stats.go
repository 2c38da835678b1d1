// Package stats derives the dashboard aggregates from a fresh full fetch.
// Nothing here is incremental: every dashboard view recomputes from scratch.
package stats

import (
	"time"

	"github.com/google/uuid"

	"github.com/naturespantry/shop/internal/models"
)

const recentOrderCount = 5

type RecentOrder struct {
	ID           uuid.UUID `json:"id"`
	OrderNumber  string    `json:"order_number"`
	CustomerName string    `json:"customer_name"`
	Total        float64   `json:"total"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type Dashboard struct {
	TotalProducts  int64            `json:"total_products"`
	TotalOrders    int64            `json:"total_orders"`
	TotalUsers     int64            `json:"total_users"`
	TotalRevenue   float64          `json:"total_revenue"`
	OrdersByStatus map[string]int64 `json:"orders_by_status"`
	RecentOrders   []RecentOrder    `json:"recent_orders"`
}

// Compute expects orders sorted newest first, which is how the orders
// repository lists them.
func Compute(productCount, userCount int64, orders []models.Order) Dashboard {
	d := Dashboard{
		TotalProducts:  productCount,
		TotalOrders:    int64(len(orders)),
		TotalUsers:     userCount,
		OrdersByStatus: make(map[string]int64),
		RecentOrders:   make([]RecentOrder, 0, recentOrderCount),
	}

	for _, o := range orders {
		if o.PaymentStatus == models.PaymentStatusPaid {
			d.TotalRevenue += o.Total
		}
		d.OrdersByStatus[o.Status]++
		if len(d.RecentOrders) < recentOrderCount {
			d.RecentOrders = append(d.RecentOrders, RecentOrder{
				ID:           o.ID,
				OrderNumber:  o.OrderNumber,
				CustomerName: o.CustomerName,
				Total:        o.Total,
				Status:       o.Status,
				CreatedAt:    o.CreatedAt,
			})
		}
	}
	return d
}
