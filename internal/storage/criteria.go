package storage

import "vacancy-finder-go/internal/models"

// Criteria selects stored vacancies by exact field equality. Supported keys
// are the persisted field names: name, link, salary, description, id.
// Matching is never partial and never coerces types; a key no entry carries
// matches nothing.
type Criteria map[string]any

// Matches reports whether the vacancy satisfies every criteria entry.
func (c Criteria) Matches(v models.Vacancy) bool {
	for field, want := range c {
		if !fieldEquals(v, field, want) {
			return false
		}
	}
	return true
}

func fieldEquals(v models.Vacancy, field string, want any) bool {
	switch field {
	case "name":
		s, ok := want.(string)
		return ok && v.Name == s
	case "link":
		s, ok := want.(string)
		return ok && v.Link == s
	case "description":
		s, ok := want.(string)
		return ok && v.Description == s
	case "id":
		if want == nil {
			return v.ID == ""
		}
		s, ok := want.(string)
		return ok && v.ID == s
	case "salary":
		return salaryEquals(v.Salary, want)
	default:
		return false
	}
}

func salaryEquals(s models.Salary, want any) bool {
	switch w := want.(type) {
	case string:
		return w == models.SalaryUnspecified && !s.Specified()
	case float64:
		amount, ok := s.Amount()
		return ok && amount == w
	case int:
		amount, ok := s.Amount()
		return ok && amount == float64(w)
	default:
		return false
	}
}
