package domain

// Source — метка источника товара.
type Source string

const (
	SourceWooCommerce Source = "woocommerce"
	SourcePostgres    Source = "postgres"
)

// Product — каноническая запись товара после нормализации.
// ID уникален только в паре (Source, ID): разные витрины могут
// выдавать одинаковые числовые идентификаторы.
type Product struct {
	ID       int64
	Name     string
	Price    string // десятичная строка в том виде, как хранит источник
	Category string // заполняется только каталогом Postgres
	Link     string
	ImageURL string // заполняется только каталогом Postgres
	Source   Source
}

// FAQ — пара вопрос/ответ из справки магазина.
type FAQ struct {
	Question string
	Answer   string
}
