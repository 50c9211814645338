package storage

import "vacancy-finder-go/internal/models"

// Connector is the persistence contract for vacancies. The JSON file store
// is the canonical backend; the memory, SQLite and Supabase stores serve the
// same contract so callers can swap backends without touching the pipeline.
type Connector interface {
	// Add appends the vacancy to the store. It never deduplicates.
	Add(vacancy models.Vacancy) error
	// Get returns the stored vacancies matching the criteria, in insertion
	// order. Empty criteria matches everything.
	Get(criteria Criteria) ([]models.Vacancy, error)
	// Delete removes every vacancy with the given id. Deleting an unknown
	// id is a no-op.
	Delete(id string) error
}
