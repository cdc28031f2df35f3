package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/example/shop-assist-service/internal/domain"
)

type fakeCatalog struct {
	products []domain.Product
	err      error
}

func (f fakeCatalog) Search(ctx context.Context, term string) ([]domain.Product, error) {
	return f.products, f.err
}

func TestSearchProductsMergesInOrder(t *testing.T) {
	uc := SearchProducts{Sources: []domain.CatalogSource{
		fakeCatalog{products: []domain.Product{
			{ID: 1, Name: "Wool Socks", Source: domain.SourceWooCommerce},
		}},
		fakeCatalog{products: []domain.Product{
			// same numeric id as the woocommerce record, kept as-is
			{ID: 1, Name: "Wool Socks", Source: domain.SourcePostgres},
			{ID: 2, Name: "Sport Socks", Source: domain.SourcePostgres},
		}},
	}}

	got := uc.Execute(context.Background(), "socks")
	if len(got) != 3 {
		t.Fatalf("got %d products, want 3", len(got))
	}
	wantSources := []domain.Source{domain.SourceWooCommerce, domain.SourcePostgres, domain.SourcePostgres}
	for i, p := range got {
		if p.Source != wantSources[i] {
			t.Errorf("product %d source = %s, want %s", i, p.Source, wantSources[i])
		}
	}
}

func TestSearchProductsDegradesOnSourceFailure(t *testing.T) {
	uc := SearchProducts{Sources: []domain.CatalogSource{
		fakeCatalog{err: errors.New("connection refused")},
		fakeCatalog{products: []domain.Product{
			{ID: 7, Name: "Wool Socks", Source: domain.SourcePostgres},
			{ID: 8, Name: "Sport Socks", Source: domain.SourcePostgres},
		}},
	}}

	got := uc.Execute(context.Background(), "socks")
	if len(got) != 2 {
		t.Fatalf("got %d products, want 2", len(got))
	}
	for _, p := range got {
		if p.Source != domain.SourcePostgres {
			t.Errorf("unexpected source %s", p.Source)
		}
	}
}

func TestSearchProductsAllSourcesFail(t *testing.T) {
	uc := SearchProducts{Sources: []domain.CatalogSource{
		fakeCatalog{err: errors.New("down")},
		fakeCatalog{err: domain.ErrNotConfigured},
	}}

	if got := uc.Execute(context.Background(), "socks"); len(got) != 0 {
		t.Errorf("got %d products, want 0", len(got))
	}
	if got := uc.Answer(context.Background(), "socks"); !strings.Contains(got, "I'm sorry") {
		t.Errorf("Answer() = %q, want apology", got)
	}
}

func TestSearchProductsAnswerEmptyTerm(t *testing.T) {
	uc := SearchProducts{}
	if got := uc.Answer(context.Background(), ""); got != "Please provide a product name to search for." {
		t.Errorf("Answer() = %q", got)
	}
}
