package usecase

import (
	"context"
	"log"

	"github.com/example/shop-assist-service/internal/domain"
	"github.com/example/shop-assist-service/internal/render"
)

// SearchProducts — поиск по всем каталогам с объединением результатов.
// Источники опрашиваются в заданном порядке: сначала витрина, затем
// выделенный каталог. Дедупликации между источниками нет.
type SearchProducts struct {
	Sources []domain.CatalogSource
}

// Execute собирает нормализованные записи. Отказ одного источника
// даёт нулевой вклад и не прерывает опрос остальных.
func (uc SearchProducts) Execute(ctx context.Context, term string) []domain.Product {
	var all []domain.Product
	for _, src := range uc.Sources {
		products, err := src.Search(ctx, term)
		if err != nil {
			log.Printf("catalog search: %v", err)
			continue
		}
		all = append(all, products...)
	}
	return all
}

// Answer возвращает готовый текст ответа на поисковый запрос.
func (uc SearchProducts) Answer(ctx context.Context, term string) string {
	if term == "" {
		return "Please provide a product name to search for."
	}
	return render.Products(uc.Execute(ctx, term), term)
}
