package source

import "context"

// RawVacancy is a loosely-typed source item carrying the canonical keys
// id, name, link, salary and description. Any key may be missing;
// normalization into an entity happens in models.FromRaw.
type RawVacancy = map[string]any

// Source supplies raw vacancies for a search keyword. A failed fetch is
// reported as an error; callers decide whether to abort or continue with an
// empty batch.
type Source interface {
	Name() string
	Fetch(ctx context.Context, keyword string) ([]RawVacancy, error)
}
