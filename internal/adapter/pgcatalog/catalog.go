// Package pgcatalog — выделенный каталог товаров в Postgres
// (таблица products). Как и у витрины, соединение живёт один запрос.
package pgcatalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/example/shop-assist-service/internal/domain"
)

// Значения-заглушки из примера окружения: с ними каталог считается
// ненастроенным и отключается без попытки соединения.
var placeholders = map[string]bool{
	"your_postgres_db_name":  true,
	"your_postgres_user":     true,
	"your_postgres_password": true,
}

type Catalog struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Configured возвращает ошибку, если каталог отключён, с причиной.
func (c *Catalog) Configured() error {
	if c.Host == "" || c.Name == "" || c.User == "" || c.Password == "" {
		return fmt.Errorf("%w: missing credentials", domain.ErrNotConfigured)
	}
	if placeholders[c.Name] || placeholders[c.User] || placeholders[c.Password] {
		return fmt.Errorf("%w: placeholder credentials", domain.ErrNotConfigured)
	}
	return nil
}

// Connect открывает соединение; им пользуются Search и служебные
// команды вроде импорта фида.
func (c *Catalog) Connect(ctx context.Context) (*pgx.Conn, error) {
	dsn := fmt.Sprintf("host=%s port=%s dbname=%s user=%s password=%s",
		c.Host, c.Port, c.Name, c.User, c.Password)
	return pgx.Connect(ctx, dsn)
}

// Search ищет товары по подстроке названия без учёта регистра.
// Цена выбирается текстом, чтобы показать её покупателю без
// переформатирования.
func (c *Catalog) Search(ctx context.Context, term string) ([]domain.Product, error) {
	if err := c.Configured(); err != nil {
		return nil, err
	}
	conn, err := c.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close(ctx)

	rows, err := conn.Query(ctx, `
SELECT id, title, price::text, category, product_link, image_url
FROM products
WHERE title ILIKE $1
LIMIT 10`, "%"+term+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Category, &p.Link, &p.ImageURL); err != nil {
			return nil, err
		}
		p.Source = domain.SourcePostgres
		products = append(products, p)
	}
	return products, rows.Err()
}

var _ domain.CatalogSource = (*Catalog)(nil)

// EnsureSchema — создать таблицу каталога, если отсутствует.
func EnsureSchema(ctx context.Context, conn *pgx.Conn) error {
	_, err := conn.Exec(ctx, `
CREATE TABLE IF NOT EXISTS products (
  id SERIAL PRIMARY KEY,
  title TEXT NOT NULL,
  price DECIMAL(10,2) NOT NULL,
  product_link TEXT NOT NULL,
  category TEXT NOT NULL,
  image_url TEXT NOT NULL,
  created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);`)
	return err
}
