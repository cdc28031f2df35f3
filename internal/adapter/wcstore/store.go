// Package wcstore читает базу WooCommerce (MySQL): заказы и каталог
// витрины. Соединение открывается на время одного запроса и всегда
// закрывается, пула между вызовами нет.
package wcstore

import (
	"database/sql"
	"net"

	"github.com/go-sql-driver/mysql"
)

type Store struct {
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	TablePrefix string
	// StoreURL — базовый адрес витрины для ссылок на карточки товаров.
	StoreURL string
}

func (s *Store) open() (*sql.DB, error) {
	cfg := mysql.NewConfig()
	cfg.User = s.User
	cfg.Passwd = s.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(s.Host, s.Port)
	cfg.DBName = s.Name
	cfg.ParseTime = true
	return sql.Open("mysql", cfg.FormatDSN())
}
