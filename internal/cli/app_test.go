package cli

import (
	"context"
	"strings"
	"testing"

	"vacancy-finder-go/internal/finder"
	"vacancy-finder-go/internal/source"
	"vacancy-finder-go/internal/storage"
	"vacancy-finder-go/pkg/logging"
)

type staticSource struct {
	items []source.RawVacancy
}

func (s *staticSource) Name() string { return "static" }

func (s *staticSource) Fetch(ctx context.Context, keyword string) ([]source.RawVacancy, error) {
	return s.items, nil
}

func newTestApp(items []source.RawVacancy, input string, out *strings.Builder) *App {
	store := storage.NewMemoryStore()
	aggregator := finder.NewAggregator(&staticSource{items: items}, store, logging.NewNop())
	searcher := finder.NewSearcher(store)
	return NewAppWithIO(aggregator, searcher, strings.NewReader(input), out)
}

func TestRunFullSession(t *testing.T) {
	items := []source.RawVacancy{
		{"id": "1", "name": "go", "link": "l1", "salary": 200000.0, "description": "needs Go"},
		{"id": "2", "name": "python-go", "link": "l2", "salary": 120000.0, "description": "needs Python and Go"},
		{"id": "3", "name": "rust", "link": "l3", "description": "needs Rust"},
	}
	// query, top-N, keywords, salary range
	input := "developer\n1\npython\n100000-250000\n"

	var out strings.Builder
	app := newTestApp(items, input, &out)
	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Name: python-go") {
		t.Fatalf("output should contain the ranked vacancy, got:\n%s", got)
	}
	if strings.Contains(got, "Name: go\n") || strings.Contains(got, "Name: rust") {
		t.Fatalf("output should contain only the top match, got:\n%s", got)
	}
}

func TestRunRepromptsUntilPositiveCount(t *testing.T) {
	input := "developer\nabc\n0\n-3\n2\n\n\n"

	var out strings.Builder
	app := newTestApp(nil, input, &out)
	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := strings.Count(out.String(), "The count must be a positive integer."); got != 3 {
		t.Fatalf("re-prompt message printed %d times, want 3", got)
	}
}

func TestRunReportsNoMatches(t *testing.T) {
	input := "developer\n5\nnope\n\n"
	var out strings.Builder
	app := newTestApp(nil, input, &out)
	if err := app.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "No vacancies matched the given criteria.") {
		t.Fatalf("missing empty-result message, got:\n%s", out.String())
	}
}
