package main

import (
	"context"
	"encoding/xml"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/example/shop-assist-service/internal/adapter/pgcatalog"
	"github.com/example/shop-assist-service/internal/config"
)

// Loads the product feed XML into the postgres catalog, creating the
// schema first. Prices may carry a currency prefix in the feed.
type product struct {
	Title    string `xml:"title"`
	Price    string `xml:"price"`
	Link     string `xml:"product_link"`
	Category string `xml:"category"`
	ImageURL string `xml:"image_url"`
}

type feed struct {
	Products []product `xml:"product"`
}

func main() {
	path := flag.String("feed", "data/products_database.xml", "product feed XML file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	catalog := &pgcatalog.Catalog{
		Host:     cfg.Postgres.Host,
		Port:     cfg.Postgres.Port,
		Name:     cfg.Postgres.Name,
		User:     cfg.Postgres.User,
		Password: cfg.Postgres.Password,
	}
	if err := catalog.Configured(); err != nil {
		log.Fatalf("postgres catalog: %v", err)
	}

	ctx := context.Background()
	conn, err := catalog.Connect(ctx)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer conn.Close(ctx)

	if err := pgcatalog.EnsureSchema(ctx, conn); err != nil {
		log.Fatalf("ensure schema: %v", err)
	}

	data, err := os.ReadFile(*path)
	if err != nil {
		log.Fatalf("read feed: %v", err)
	}
	var f feed
	if err := xml.Unmarshal(data, &f); err != nil {
		log.Fatalf("parse feed: %v", err)
	}

	for _, p := range f.Products {
		price := strings.TrimSpace(strings.ReplaceAll(p.Price, "₹", ""))
		_, err := conn.Exec(ctx, `
INSERT INTO products (title, price, product_link, category, image_url)
VALUES ($1, $2, $3, $4, $5)`,
			p.Title, price, p.Link, p.Category, p.ImageURL)
		if err != nil {
			log.Fatalf("insert %q: %v", p.Title, err)
		}
	}
	log.Printf("imported %d products", len(f.Products))
}
