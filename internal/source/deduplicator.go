package source

// Deduplicator drops raw items already seen in this run, keyed by vacancy id
// when present, falling back to the link. Items with neither always pass.
// Store.Add itself never deduplicates; this runs between fetch and persist.
type Deduplicator struct {
	seen map[string]bool
}

func NewDeduplicator() *Deduplicator {
	return &Deduplicator{seen: make(map[string]bool)}
}

// Filter returns the items not seen before, preserving order.
func (d *Deduplicator) Filter(items []RawVacancy) []RawVacancy {
	unique := make([]RawVacancy, 0, len(items))
	for _, item := range items {
		key := identityKey(item)
		if key != "" && d.seen[key] {
			continue
		}
		if key != "" {
			d.seen[key] = true
		}
		unique = append(unique, item)
	}
	return unique
}

// Reset clears the seen set.
func (d *Deduplicator) Reset() {
	d.seen = make(map[string]bool)
}

// SeenCount returns the number of distinct identities seen so far.
func (d *Deduplicator) SeenCount() int {
	return len(d.seen)
}

func identityKey(item RawVacancy) string {
	if id, ok := item["id"].(string); ok && id != "" {
		return "id:" + id
	}
	if link, ok := item["link"].(string); ok && link != "" {
		return "link:" + link
	}
	return ""
}
