package storage

import (
	"path/filepath"
	"testing"

	"vacancy-finder-go/internal/models"
)

func mustVacancy(t *testing.T, name string, salary any, description, id string) models.Vacancy {
	t.Helper()
	v, err := models.NewVacancy(name, "https://example.com/"+id, salary, description, id)
	if err != nil {
		t.Fatalf("NewVacancy: %v", err)
	}
	return v
}

// The backends share one behavioral contract; every implementation runs the
// same suite.
func runConnectorSuite(t *testing.T, open func(t *testing.T) Connector) {
	t.Run("add then get by id", func(t *testing.T) {
		store := open(t)
		want := mustVacancy(t, "Go Developer", 120000.0, "needs Go", "42")
		if err := store.Add(want); err != nil {
			t.Fatalf("Add: %v", err)
		}
		got, err := store.Get(Criteria{"id": "42"})
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("got %d vacancies, want 1", len(got))
		}
		if got[0] != want {
			t.Fatalf("round trip mismatch: got %+v, want %+v", got[0], want)
		}
	})

	t.Run("empty criteria matches all", func(t *testing.T) {
		store := open(t)
		store.Add(mustVacancy(t, "a", 1.0, "", "1"))
		store.Add(mustVacancy(t, "b", nil, "", "2"))
		got, err := store.Get(Criteria{})
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("got %d vacancies, want 2", len(got))
		}
	})

	t.Run("exact match only", func(t *testing.T) {
		store := open(t)
		store.Add(mustVacancy(t, "Go Developer", 1.0, "", "1"))
		got, err := store.Get(Criteria{"name": "Go"})
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("substring criteria must not match, got %d", len(got))
		}
	})

	t.Run("salary criteria", func(t *testing.T) {
		store := open(t)
		store.Add(mustVacancy(t, "priced", 120000.0, "", "1"))
		store.Add(mustVacancy(t, "unpriced", nil, "", "2"))

		priced, err := store.Get(Criteria{"salary": 120000.0})
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if len(priced) != 1 || priced[0].Name != "priced" {
			t.Fatalf("numeric salary criteria matched %+v", priced)
		}

		unpriced, err := store.Get(Criteria{"salary": models.SalaryUnspecified})
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if len(unpriced) != 1 || unpriced[0].Name != "unpriced" {
			t.Fatalf("sentinel salary criteria matched %+v", unpriced)
		}
	})

	t.Run("add never deduplicates", func(t *testing.T) {
		store := open(t)
		v := mustVacancy(t, "dup", 1.0, "", "1")
		store.Add(v)
		store.Add(v)
		got, _ := store.Get(Criteria{"id": "1"})
		if len(got) != 2 {
			t.Fatalf("got %d vacancies, want 2", len(got))
		}
	})

	t.Run("delete removes every match and unknown id is a no-op", func(t *testing.T) {
		store := open(t)
		store.Add(mustVacancy(t, "a", 1.0, "", "1"))
		store.Add(mustVacancy(t, "b", 2.0, "", "1"))
		store.Add(mustVacancy(t, "c", 3.0, "", "2"))

		if err := store.Delete("1"); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		got, _ := store.Get(Criteria{})
		if len(got) != 1 || got[0].ID != "2" {
			t.Fatalf("after delete got %+v", got)
		}

		if err := store.Delete("missing"); err != nil {
			t.Fatalf("deleting an unknown id must be a no-op, got %v", err)
		}
		got, _ = store.Get(Criteria{})
		if len(got) != 1 {
			t.Fatalf("no-op delete changed the store: %+v", got)
		}
	})
}

func TestJSONFileStoreConnector(t *testing.T) {
	runConnectorSuite(t, func(t *testing.T) Connector {
		store, err := NewJSONFileStore(filepath.Join(t.TempDir(), "vacancies.json"))
		if err != nil {
			t.Fatalf("NewJSONFileStore: %v", err)
		}
		return store
	})
}

func TestMemoryStoreConnector(t *testing.T) {
	runConnectorSuite(t, func(t *testing.T) Connector {
		return NewMemoryStore()
	})
}

func TestSQLiteStoreConnector(t *testing.T) {
	runConnectorSuite(t, func(t *testing.T) Connector {
		store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "vacancies.db"))
		if err != nil {
			t.Fatalf("NewSQLiteStore: %v", err)
		}
		t.Cleanup(func() { store.Close() })
		return store
	})
}
