// Package faq — справка магазина: загрузка из файла с табуляцией
// в роли разделителя и поиск ответа по ключевым словам.
package faq

import (
	"encoding/csv"
	"os"
	"strings"
	"sync"

	"github.com/example/shop-assist-service/internal/domain"
)

// Load читает пары вопрос/ответ. Первая строка — заголовок,
// строки короче двух полей пропускаются.
func Load(path string) ([]domain.FAQ, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	recs, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	var entries []domain.FAQ
	for i, rec := range recs {
		if i == 0 {
			continue
		}
		if len(rec) < 2 {
			continue
		}
		entries = append(entries, domain.FAQ{Question: rec[0], Answer: rec[1]})
	}
	return entries, nil
}

// Store держит справку в памяти; наполняется один раз при старте.
type Store struct {
	mu      sync.RWMutex
	entries []domain.FAQ
}

func NewStore(entries []domain.FAQ) *Store {
	return &Store{entries: entries}
}

// Lookup возвращает первую запись, в вопросе которой встречаются
// все значимые слова запроса (от четырёх букв, без учёта регистра).
func (s *Store) Lookup(query string) (domain.FAQ, bool) {
	var words []string
	for _, w := range strings.Fields(strings.ToLower(query)) {
		w = strings.Trim(w, "?!.,\"'")
		if len(w) >= 4 {
			words = append(words, w)
		}
	}
	if len(words) == 0 {
		return domain.FAQ{}, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.entries {
		q := strings.ToLower(e.Question)
		matched := true
		for _, w := range words {
			if !strings.Contains(q, w) {
				matched = false
				break
			}
		}
		if matched {
			return e, true
		}
	}
	return domain.FAQ{}, false
}

var _ domain.FAQSource = (*Store)(nil)
