package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/shop-assist-service/internal/adapter/faq"
	"github.com/example/shop-assist-service/internal/adapter/httpapi"
	"github.com/example/shop-assist-service/internal/adapter/natsstan"
	"github.com/example/shop-assist-service/internal/adapter/pgcatalog"
	"github.com/example/shop-assist-service/internal/adapter/wcstore"
	"github.com/example/shop-assist-service/internal/config"
	"github.com/example/shop-assist-service/internal/domain"
	"github.com/example/shop-assist-service/internal/usecase"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	shop := &wcstore.Store{
		Host:        cfg.MySQL.Host,
		Port:        cfg.MySQL.Port,
		User:        cfg.MySQL.User,
		Password:    cfg.MySQL.Password,
		Name:        cfg.MySQL.Name,
		TablePrefix: cfg.MySQL.TablePrefix,
		StoreURL:    cfg.StoreURL,
	}
	catalog := &pgcatalog.Catalog{
		Host:     cfg.Postgres.Host,
		Port:     cfg.Postgres.Port,
		Name:     cfg.Postgres.Name,
		User:     cfg.Postgres.User,
		Password: cfg.Postgres.Password,
	}
	if err := catalog.Configured(); err != nil {
		log.Printf("postgres catalog disabled: %v", err)
	} else {
		log.Println("postgres catalog enabled - dual database search")
	}

	var faqSource domain.FAQSource
	if entries, err := faq.Load(cfg.FAQFile); err != nil {
		log.Printf("faq load: %v", err)
	} else {
		log.Printf("loaded %d faq entries", len(entries))
		faqSource = faq.NewStore(entries)
	}

	answer := usecase.AnswerQuery{
		Orders:   usecase.OrderStatus{Store: shop},
		Products: usecase.SearchProducts{Sources: []domain.CatalogSource{shop, catalog}},
		FAQ:      faqSource,
	}

	sub := &natsstan.Subscriber{
		ClusterID: cfg.StanClusterID,
		ClientID:  cfg.StanClientID,
		URL:       cfg.NATSURL,
		Subject:   cfg.QuerySubject,
		Durable:   "shop-assist-durable",
	}
	go func() {
		if err := sub.Subscribe(ctx, answer.Dispatch); err != nil {
			log.Printf("stan subscribe: %v", err)
		}
	}()

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: httpapi.NewServer(answer).Router}
	go func() {
		log.Printf("http listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	_ = srv.Shutdown(shutdownCtx)
}
