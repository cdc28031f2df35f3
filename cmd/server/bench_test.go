package main

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/example/shop-assist-service/internal/adapter/httpapi"
	"github.com/example/shop-assist-service/internal/domain"
	"github.com/example/shop-assist-service/internal/render"
	"github.com/example/shop-assist-service/internal/usecase"
)

type staticCatalog struct{ products []domain.Product }

func (c staticCatalog) Search(ctx context.Context, term string) ([]domain.Product, error) {
	return c.products, nil
}

func BenchmarkHandleProducts(b *testing.B) {
	// HTTP adapter over a static catalog, no live stores
	var products []domain.Product
	for i := 0; i < 8; i++ {
		products = append(products, domain.Product{
			ID: int64(i), Name: fmt.Sprintf("Product %d", i), Price: "99",
			Source: domain.SourcePostgres,
		})
	}
	answer := usecase.AnswerQuery{
		Products: usecase.SearchProducts{Sources: []domain.CatalogSource{staticCatalog{products: products}}},
	}
	router := httpapi.NewServer(answer).Router

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req := httptest.NewRequest(http.MethodGet, "/api/products?q=product", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
		}
	})
}

func BenchmarkRenderProducts(b *testing.B) {
	var products []domain.Product
	for i := 0; i < 7; i++ {
		products = append(products, domain.Product{
			ID: int64(i), Name: fmt.Sprintf("Product %d", i), Price: "99",
			Category: "Gifts", Link: "https://shop.example/product/p",
		})
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = render.Products(products, "product")
	}
}
