package wcstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/shop-assist-service/internal/domain"
)

// RecentOrders возвращает до пяти последних заказов. Атрибуты заказа
// (имя, фамилия, сумма) разворачиваются из таблицы postmeta условной
// агрегацией, поэтому строки группируются по ID заказа.
func (s *Store) RecentOrders(ctx context.Context, email, orderID string) ([]domain.Order, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	q := fmt.Sprintf(`
SELECT
    p.ID,
    p.post_status,
    p.post_date,
    MAX(CASE WHEN pm.meta_key = '_billing_first_name' THEN pm.meta_value END) AS first_name,
    MAX(CASE WHEN pm.meta_key = '_billing_last_name' THEN pm.meta_value END) AS last_name,
    MAX(CASE WHEN pm.meta_key = '_order_total' THEN pm.meta_value END) AS total
FROM %[1]sposts p
JOIN %[1]spostmeta pm ON p.ID = pm.post_id
WHERE p.post_type = 'shop_order'`, s.TablePrefix)

	var args []any
	if orderID != "" {
		q += " AND p.ID = ?"
		args = append(args, orderID)
	}
	if email != "" {
		// email — не колонка, а атрибут, поэтому фильтр идёт подзапросом
		q += fmt.Sprintf(" AND p.ID IN (SELECT post_id FROM %spostmeta WHERE meta_key = '_billing_email' AND meta_value = ?)", s.TablePrefix)
		args = append(args, email)
	}
	q += " GROUP BY p.ID ORDER BY p.post_date DESC LIMIT 5"

	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var (
			o     domain.Order
			date  sql.NullTime
			first sql.NullString
			last  sql.NullString
			total sql.NullString
		)
		if err := rows.Scan(&o.ID, &o.Status, &date, &first, &last, &total); err != nil {
			return nil, err
		}
		if date.Valid {
			d := date.Time
			o.Date = &d
		}
		o.FirstName = first.String
		o.LastName = last.String
		o.Total = total.String
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

var _ domain.OrderStore = (*Store)(nil)
