package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	stan "github.com/nats-io/stan.go"

	"github.com/example/shop-assist-service/internal/domain"
)

// Reads one JSON support query from stdin, publishes it to the query
// subject and prints the answer arriving on an ephemeral reply subject.
func main() {
	clusterID := getenv("STAN_CLUSTER_ID", "shop-cluster")
	clientID := getenv("STAN_PUB_ID", "shop-askbot")
	natsURL := getenv("NATS_URL", "nats://localhost:4222")
	subject := getenv("QUERY_SUBJECT", "support.queries")

	sc, err := stan.Connect(clusterID, clientID, stan.NatsURL(natsURL))
	if err != nil {
		log.Fatalf("stan connect: %v", err)
	}
	defer sc.Close()

	var q domain.SupportQuery
	dec := json.NewDecoder(os.Stdin)
	if err := dec.Decode(&q); err != nil {
		log.Fatalf("read json from stdin: %v", err)
	}
	q.Reply = fmt.Sprintf("support.answers.%d", time.Now().UnixNano())

	answers := make(chan string, 1)
	sub, err := sc.Subscribe(q.Reply, func(m *stan.Msg) {
		answers <- string(m.Data)
	})
	if err != nil {
		log.Fatalf("subscribe reply: %v", err)
	}
	defer sub.Unsubscribe()

	b, err := json.Marshal(q)
	if err != nil {
		log.Fatalf("marshal: %v", err)
	}
	if err := sc.Publish(subject, b); err != nil {
		log.Fatalf("publish: %v", err)
	}

	select {
	case answer := <-answers:
		fmt.Println(answer)
	case <-time.After(15 * time.Second):
		log.Fatal("no answer within 15s")
	}
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
