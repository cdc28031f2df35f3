// Package render собирает готовый к показу текст ответа.
// Формат — Markdown, который дословно ожидает виджет чата,
// поэтому каждая строка воспроизводится байт в байт.
package render

import (
	"fmt"
	"strings"

	"github.com/example/shop-assist-service/internal/domain"
)

// maxListed — сколько позиций попадает в нумерованный список товаров.
const maxListed = 5

// Orders — сводка по списку заказов, по блоку на заказ.
// Отсутствующие атрибуты показываются как "N/A", а не прячутся.
func Orders(orders []domain.Order) string {
	lines := []string{"Here are the order details:"}
	for _, o := range orders {
		date := "N/A"
		if o.Date != nil {
			date = o.Date.Format("2006-01-02 15:04:05")
		}
		total := o.Total
		if total == "" {
			total = "N/A"
		}
		lines = append(lines,
			fmt.Sprintf("Order #%d", o.ID),
			fmt.Sprintf("Date: %s", date),
			fmt.Sprintf("Customer: %s %s", o.FirstName, o.LastName),
			fmt.Sprintf("Total: Rs.%s", total),
			fmt.Sprintf("Status: %s", domain.StatusLabel(o.Status)),
			"---",
		)
	}
	return strings.Join(lines, "\n")
}

// Products — разговорный ответ на поиск товара.
// Порядок записей сохраняется как есть: источники уже объединены.
func Products(products []domain.Product, term string) string {
	switch {
	case len(products) == 0:
		return fmt.Sprintf("I'm sorry, I couldn't find any products that match \"%s\" in our catalog. Please check back later as our inventory is constantly updated. Is there anything else I can help you with?", term)

	case len(products) == 1:
		p := products[0]
		var b strings.Builder
		fmt.Fprintf(&b, "Yes, we have a **%s** available for Rs. %s.", p.Name, p.Price)
		if p.Category != "" {
			fmt.Fprintf(&b, " You can find it in the %s category", p.Category)
		}
		if p.Link != "" {
			fmt.Fprintf(&b, " [here](%s).", p.Link)
		} else if p.Category != "" {
			// точку ставит только фраза про категорию: базовое
			// предложение уже закончено
			b.WriteString(".")
		}
		return b.String()

	default:
		var b strings.Builder
		fmt.Fprintf(&b, "Yes, we have several products matching '%s':\n\n", term)
		for i, p := range products {
			if i == maxListed {
				break
			}
			fmt.Fprintf(&b, "%d. **%s** - Rs. %s", i+1, p.Name, p.Price)
			if p.Category != "" {
				fmt.Fprintf(&b, " (%s)", p.Category)
			}
			if p.Link != "" {
				fmt.Fprintf(&b, " [View Product](%s)", p.Link)
			}
			b.WriteString("\n")
		}
		if len(products) > maxListed {
			fmt.Fprintf(&b, "\n...and %d more products available.", len(products)-maxListed)
		}
		return b.String()
	}
}
