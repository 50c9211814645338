package storage

import (
	"sync"

	"vacancy-finder-go/internal/models"
)

// MemoryStore keeps vacancies in memory. It exists so services and the
// pipeline can be exercised without touching disk.
type MemoryStore struct {
	mu        sync.Mutex
	vacancies []models.Vacancy
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Add(vacancy models.Vacancy) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vacancies = append(s.vacancies, vacancy)
	return nil
}

func (s *MemoryStore) Get(criteria Criteria) ([]models.Vacancy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []models.Vacancy
	for _, v := range s.vacancies {
		if criteria.Matches(v) {
			matched = append(matched, v)
		}
	}
	return matched, nil
}

func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.vacancies[:0]
	for _, v := range s.vacancies {
		if v.ID != id {
			kept = append(kept, v)
		}
	}
	s.vacancies = kept
	return nil
}
