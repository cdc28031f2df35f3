package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/example/shop-assist-service/internal/usecase"
)

// Server — HTTP-граница ассистента: один текстовый вопрос на входе,
// один текстовый ответ на выходе, плюс прямой доступ к обеим операциям.
type Server struct {
	Router *mux.Router
	Answer usecase.AnswerQuery
}

func NewServer(answer usecase.AnswerQuery) *Server {
	s := &Server{Router: mux.NewRouter(), Answer: answer}
	s.Router.HandleFunc("/message", s.handleMessage).Methods(http.MethodGet)
	s.Router.HandleFunc("/api/order-status", s.handleOrderStatus).Methods(http.MethodGet)
	s.Router.HandleFunc("/api/products", s.handleProducts).Methods(http.MethodGet)
	return s
}

func (s *Server) handleMessage(w http.ResponseWriter, r *http.Request) {
	input := r.URL.Query().Get("input")
	if input == "" {
		http.Error(w, "missing input", http.StatusBadRequest)
		return
	}
	writeResult(w, s.Answer.Execute(r.Context(), input))
}

func (s *Server) handleOrderStatus(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeResult(w, s.Answer.Orders.Execute(r.Context(), q.Get("email"), q.Get("order_id")))
}

func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	writeResult(w, s.Answer.Products.Answer(r.Context(), r.URL.Query().Get("q")))
}

func writeResult(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"result": text})
}
