package wcstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/example/shop-assist-service/internal/domain"
)

// Search ищет опубликованные товары витрины по подстроке названия.
// Цена читается из атрибута _price; результат ограничен десятью записями.
func (s *Store) Search(ctx context.Context, term string) ([]domain.Product, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	q := fmt.Sprintf(`
SELECT p.ID, p.post_title, pm.meta_value
FROM %[1]sposts p
LEFT JOIN %[1]spostmeta pm ON p.ID = pm.post_id
WHERE p.post_type = 'product'
  AND p.post_status = 'publish'
  AND p.post_title LIKE ?
  AND pm.meta_key = '_price'
LIMIT 10`, s.TablePrefix)

	rows, err := db.QueryContext(ctx, q, "%"+term+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var (
			id    int64
			title string
			price sql.NullString
		)
		if err := rows.Scan(&id, &title, &price); err != nil {
			return nil, err
		}
		products = append(products, domain.Product{
			ID:     id,
			Name:   title,
			Price:  price.String,
			Link:   ProductLink(s.StoreURL, title),
			Source: domain.SourceWooCommerce,
		})
	}
	return products, rows.Err()
}

// ProductLink строит адрес карточки товара из названия: у витрины нет
// готовой ссылки, путь выводится из нижнего регистра с дефисами
// вместо пробелов.
func ProductLink(base, title string) string {
	slug := strings.ReplaceAll(strings.ToLower(title), " ", "-")
	return base + "/product/" + slug
}

var _ domain.CatalogSource = (*Store)(nil)
