package storage

import (
	"fmt"
	"os"

	supabase "github.com/nedpals/supabase-go"

	"vacancy-finder-go/internal/models"
)

const supabaseTable = "vacancies"

// SupabaseStore persists vacancies in a hosted Supabase table via the
// nedpals/supabase-go SDK. Criteria matching happens client-side so the
// semantics stay identical to the file-backed stores.
type SupabaseStore struct {
	client *supabase.Client
}

// NewSupabaseStore creates a SupabaseStore. It falls back to the
// SUPABASE_URL and SUPABASE_KEY environment variables for empty arguments.
func NewSupabaseStore(supabaseURL, supabaseKey string) (*SupabaseStore, error) {
	if supabaseURL == "" {
		supabaseURL = os.Getenv("SUPABASE_URL")
	}
	if supabaseKey == "" {
		supabaseKey = os.Getenv("SUPABASE_KEY")
	}
	if supabaseURL == "" || supabaseKey == "" {
		return nil, fmt.Errorf("supabase URL and key must be provided via args or SUPABASE_URL / SUPABASE_KEY env vars")
	}
	return &SupabaseStore{client: supabase.CreateClient(supabaseURL, supabaseKey)}, nil
}

// supabaseRow is the table shape: salary NULL means unspecified, id NULL
// means absent.
type supabaseRow struct {
	Name        string   `json:"name"`
	Link        string   `json:"link"`
	Salary      *float64 `json:"salary"`
	Description string   `json:"description"`
	ID          *string  `json:"id"`
}

func toRow(v models.Vacancy) supabaseRow {
	row := supabaseRow{
		Name:        v.Name,
		Link:        v.Link,
		Description: v.Description,
	}
	if amount, ok := v.Salary.Amount(); ok {
		row.Salary = &amount
	}
	if v.ID != "" {
		row.ID = &v.ID
	}
	return row
}

func (r supabaseRow) toVacancy() (models.Vacancy, error) {
	v := models.Vacancy{
		Name:        r.Name,
		Link:        r.Link,
		Description: r.Description,
	}
	if r.Salary != nil {
		salary, err := models.NewSalary(*r.Salary)
		if err != nil {
			return models.Vacancy{}, err
		}
		v.Salary = salary
	}
	if r.ID != nil {
		v.ID = *r.ID
	}
	return v, nil
}

func (s *SupabaseStore) Add(vacancy models.Vacancy) error {
	var results []supabaseRow
	if err := s.client.DB.From(supabaseTable).Insert(toRow(vacancy)).Execute(&results); err != nil {
		return &StorageError{Op: "insert", Path: supabaseTable, Err: err}
	}
	return nil
}

func (s *SupabaseStore) Get(criteria Criteria) ([]models.Vacancy, error) {
	var rows []supabaseRow
	if err := s.client.DB.From(supabaseTable).Select("*").Execute(&rows); err != nil {
		return nil, &StorageError{Op: "select", Path: supabaseTable, Err: err}
	}
	var matched []models.Vacancy
	for _, row := range rows {
		v, err := row.toVacancy()
		if err != nil {
			return nil, &StorageError{Op: "select", Path: supabaseTable, Err: err}
		}
		if criteria.Matches(v) {
			matched = append(matched, v)
		}
	}
	return matched, nil
}

func (s *SupabaseStore) Delete(id string) error {
	var results []supabaseRow
	if err := s.client.DB.From(supabaseTable).Delete().Eq("id", id).Execute(&results); err != nil {
		return &StorageError{Op: "delete", Path: supabaseTable, Err: err}
	}
	return nil
}
