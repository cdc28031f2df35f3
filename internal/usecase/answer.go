package usecase

import (
	"context"
	"regexp"
	"strings"

	"github.com/example/shop-assist-service/internal/domain"
)

// AnswerQuery — диспетчер входящих запросов: статус заказа, справка
// или поиск товара. FAQ может отсутствовать, тогда этот шаг пропускается.
type AnswerQuery struct {
	Orders   OrderStatus
	Products SearchProducts
	FAQ      domain.FAQSource
}

var (
	emailRe   = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	orderIDRe = regexp.MustCompile(`#?(\d{2,})`)
)

// Execute разбирает свободный текст. Запрос с email или номером
// заказа трактуется как вопрос о заказе, остальное идёт в справку
// и затем в поиск по каталогам.
func (uc AnswerQuery) Execute(ctx context.Context, text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return "Please tell me what you are looking for."
	}

	email := emailRe.FindString(text)
	rest := emailRe.ReplaceAllString(text, "")
	if email != "" || strings.Contains(strings.ToLower(text), "order") {
		var orderID string
		if m := orderIDRe.FindStringSubmatch(rest); m != nil {
			orderID = m[1]
		}
		return uc.Orders.Execute(ctx, email, orderID)
	}

	if uc.FAQ != nil {
		if entry, ok := uc.FAQ.Lookup(text); ok {
			return entry.Answer
		}
	}
	return uc.Products.Answer(ctx, searchTerm(text))
}

// Dispatch обрабатывает структурированный запрос с шины сообщений.
func (uc AnswerQuery) Dispatch(ctx context.Context, q domain.SupportQuery) string {
	switch q.Kind {
	case "order_status":
		return uc.Orders.Execute(ctx, q.Email, q.OrderID)
	case "product_search":
		return uc.Products.Answer(ctx, q.Query)
	default:
		return uc.Execute(ctx, q.Query)
	}
}

// searchTerm снимает обрамление вопроса, оставляя название товара.
func searchTerm(q string) string {
	q = strings.Trim(strings.ToLower(q), " ?!.")
	for _, prefix := range []string{"do you have", "do you sell", "i am looking for", "i'm looking for", "search for", "find"} {
		if strings.HasPrefix(q, prefix) {
			q = strings.TrimSpace(q[len(prefix):])
			break
		}
	}
	return strings.Trim(q, " ?!.\"'")
}
