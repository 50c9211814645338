package finder

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"vacancy-finder-go/internal/models"
	"vacancy-finder-go/internal/source"
	"vacancy-finder-go/internal/storage"
	"vacancy-finder-go/pkg/logging"
)

// Aggregator pulls raw vacancies from a source, normalizes them into
// entities and appends them to the store.
type Aggregator struct {
	source       source.Source
	store        storage.Connector
	deduplicator *source.Deduplicator
	logger       *logging.Logger
}

func NewAggregator(src source.Source, store storage.Connector, logger *logging.Logger) *Aggregator {
	return &Aggregator{
		source:       src,
		store:        store,
		deduplicator: source.NewDeduplicator(),
		logger:       logger,
	}
}

// Aggregate fetches vacancies for the keyword and persists them, returning
// the number saved. A source failure is logged and yields zero records
// rather than aborting the session; storage failures abort.
func (a *Aggregator) Aggregate(ctx context.Context, keyword string) (int, error) {
	items, err := a.source.Fetch(ctx, keyword)
	if err != nil {
		a.logger.Error("fetch failed", "source", a.source.Name(), "keyword", keyword, "err", err)
		return 0, nil
	}

	unique := a.deduplicator.Filter(items)
	a.logger.Info("fetched vacancies",
		"source", a.source.Name(), "keyword", keyword,
		"total", len(items), "unique", len(unique))

	saved := 0
	for _, item := range unique {
		vacancy, err := models.FromRaw(item)
		if err != nil {
			a.logger.Warn("skipping raw vacancy", "err", err)
			continue
		}
		if vacancy.ID == "" {
			// Delete addresses vacancies by id, so records arriving
			// without one get a generated identifier.
			vacancy.ID = uuid.NewString()
		}
		if err := a.store.Add(vacancy); err != nil {
			return saved, fmt.Errorf("save vacancy %q: %w", vacancy.Name, err)
		}
		saved++
	}
	return saved, nil
}
