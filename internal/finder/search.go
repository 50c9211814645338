package finder

import (
	"vacancy-finder-go/internal/models"
	"vacancy-finder-go/internal/ranking"
	"vacancy-finder-go/internal/storage"
)

// Searcher answers ranked vacancy queries over a store.
type Searcher struct {
	store storage.Connector
}

func NewSearcher(store storage.Connector) *Searcher {
	return &Searcher{store: store}
}

// Query holds the user's selection inputs.
type Query struct {
	// Keywords filter descriptions case-insensitively; empty means no filter.
	Keywords []string
	// SalaryRange is an inclusive "min-max" spec; empty means no filter.
	SalaryRange string
	// TopN caps the result length and must be positive.
	TopN int
}

// Search loads every stored vacancy and runs it through the ranking
// pipeline.
func (s *Searcher) Search(q Query) ([]models.Vacancy, error) {
	vacancies, err := s.store.Get(storage.Criteria{})
	if err != nil {
		return nil, err
	}
	return ranking.Rank(vacancies, q.Keywords, q.SalaryRange, q.TopN)
}
