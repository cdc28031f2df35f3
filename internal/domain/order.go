package domain

import "time"

// Order — снимок заказа из базы WooCommerce.
// Гарантирован только ID: остальные поля лежат в разреженной таблице
// атрибутов и могут отсутствовать.
type Order struct {
	ID        int64
	Status    string // код статуса витрины, например "wc-processing"
	Date      *time.Time
	FirstName string
	LastName  string
	Total     string // десятичная строка; пустая, если атрибута нет
}

// statusLabels — словарь статусов витрины для показа покупателю.
var statusLabels = map[string]string{
	"wc-pending":    "Pending payment",
	"wc-processing": "Processing",
	"wc-on-hold":    "On hold",
	"wc-completed":  "Completed",
	"wc-cancelled":  "Cancelled",
	"wc-refunded":   "Refunded",
	"wc-failed":     "Failed",
}

// StatusLabel возвращает человекочитаемую метку статуса.
// Незнакомый код проходит как есть и не блокирует вывод.
func StatusLabel(code string) string {
	if label, ok := statusLabels[code]; ok {
		return label
	}
	return code
}
