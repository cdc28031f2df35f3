package natsstan

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	stan "github.com/nats-io/stan.go"

	"github.com/example/shop-assist-service/internal/domain"
)

// Subscriber слушает запросы поддержки и публикует готовый ответ
// в reply-тему запроса.
type Subscriber struct {
	ClusterID string
	ClientID  string
	URL       string
	Subject   string
	Durable   string
}

func (s *Subscriber) Subscribe(ctx context.Context, handler func(ctx context.Context, q domain.SupportQuery) string) error {
	clientID := s.ClientID
	if clientID == "" {
		clientID = fmt.Sprintf("shop-assist-%d", time.Now().UnixNano())
	}
	sc, err := stan.Connect(s.ClusterID, clientID, stan.NatsURL(s.URL))
	if err != nil {
		return err
	}
	_, err = sc.QueueSubscribe(s.Subject, "shop-assist-workers", func(m *stan.Msg) {
		var q domain.SupportQuery
		if err := json.Unmarshal(m.Data, &q); err != nil {
			// битый запрос подтверждаем: переотправка его не починит
			log.Printf("invalid query: %v", err)
			_ = m.Ack()
			return
		}
		hCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		answer := handler(hCtx, q)
		if q.Reply != "" {
			if err := sc.Publish(q.Reply, []byte(answer)); err != nil {
				// не подтверждаем, даём сообщению переотправиться
				log.Printf("publish answer: %v", err)
				return
			}
		}
		if err := m.Ack(); err != nil {
			log.Printf("ack failed: %v", err)
		}
	}, stan.DurableName(s.Durable), stan.SetManualAckMode(), stan.AckWait(10*time.Second), stan.DeliverAllAvailable())
	if err != nil {
		sc.Close()
		return err
	}
	go func() {
		<-ctx.Done()
		sc.Close()
	}()
	return nil
}

var _ domain.QuerySubscriber = (*Subscriber)(nil)
