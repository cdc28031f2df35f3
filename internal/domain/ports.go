package domain

import "context"

// OrderStore — порт чтения заказов витрины.
type OrderStore interface {
	// RecentOrders возвращает последние заказы, отфильтрованные
	// по email и/или идентификатору (условия объединяются через AND).
	RecentOrders(ctx context.Context, email, orderID string) ([]Order, error)
}

// CatalogSource — порт поиска по каталогу товаров.
type CatalogSource interface {
	// Search ищет товары по подстроке названия без учёта регистра.
	Search(ctx context.Context, term string) ([]Product, error)
}

// FAQSource — порт поиска по справке магазина.
type FAQSource interface {
	Lookup(query string) (FAQ, bool)
}

// SupportQuery — запрос поддержки, пришедший по шине сообщений.
// Пустой Kind означает свободный текст в Query.
type SupportQuery struct {
	Kind    string `json:"kind,omitempty"`
	Email   string `json:"email,omitempty"`
	OrderID string `json:"order_id,omitempty"`
	Query   string `json:"query,omitempty"`
	Reply   string `json:"reply,omitempty"`
}

// QuerySubscriber — порт подписчика на запросы поддержки.
type QuerySubscriber interface {
	// Subscribe регистрирует обработчик; доставку ответа и ack
	// реализует адаптер.
	Subscribe(ctx context.Context, handler func(ctx context.Context, q SupportQuery) string) error
}

// Общие доменные ошибки
var ErrNotConfigured = configError("source not configured")

type configError string

func (e configError) Error() string { return string(e) }
