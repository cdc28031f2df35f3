package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/example/shop-assist-service/internal/domain"
	"github.com/example/shop-assist-service/internal/render"
)

// maxOrders — сколько заказов попадает в ответ.
const maxOrders = 5

// OrderStatus — найти заказы по email или номеру и отрисовать сводку.
// Любой исход превращается в текст для покупателя, наружу ошибки не уходят.
type OrderStatus struct {
	Store domain.OrderStore
}

func (uc OrderStatus) Execute(ctx context.Context, email, orderID string) string {
	if email == "" && orderID == "" {
		return "Please provide either an email address or order ID."
	}

	orders, err := uc.Store.RecentOrders(ctx, email, orderID)
	if err != nil {
		return fmt.Sprintf("Database error: %v", err)
	}
	if len(orders) == 0 {
		if orderID != "" {
			return fmt.Sprintf("No order found with ID %s.", orderID)
		}
		return fmt.Sprintf("No orders found for email %s.", email)
	}

	// хранилище может вернуть больше пяти записей в произвольном
	// порядке; порядок и лимит фиксируются здесь
	sort.SliceStable(orders, func(i, j int) bool {
		var ti, tj time.Time
		if orders[i].Date != nil {
			ti = *orders[i].Date
		}
		if orders[j].Date != nil {
			tj = *orders[j].Date
		}
		return ti.After(tj)
	})
	if len(orders) > maxOrders {
		orders = orders[:maxOrders]
	}
	return render.Orders(orders)
}
