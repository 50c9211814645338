package models

import "encoding/json"

// Vacancy is a single normalized job posting. An empty ID means the source
// did not supply an identifier.
type Vacancy struct {
	Name        string
	Link        string
	Salary      Salary
	Description string
	ID          string
}

// NewVacancy builds a validated vacancy. The salary value follows the loose
// source typing accepted by SalaryFromValue: nil or the sentinel string mean
// unspecified, numbers must be non-negative.
func NewVacancy(name, link string, salary any, description, id string) (Vacancy, error) {
	s, err := SalaryFromValue(salary)
	if err != nil {
		return Vacancy{}, err
	}
	return Vacancy{
		Name:        name,
		Link:        link,
		Salary:      s,
		Description: description,
		ID:          id,
	}, nil
}

// FromRaw normalizes a loosely-typed source item into a Vacancy. A missing
// salary defaults to unspecified, a missing description to empty text and a
// missing id to absent.
func FromRaw(item map[string]any) (Vacancy, error) {
	name, _ := item["name"].(string)
	link, _ := item["link"].(string)
	description, _ := item["description"].(string)
	id, _ := item["id"].(string)
	return NewVacancy(name, link, item["salary"], description, id)
}

// FromRawList normalizes a batch of source items, failing on the first
// invalid one.
func FromRawList(items []map[string]any) ([]Vacancy, error) {
	vacancies := make([]Vacancy, 0, len(items))
	for _, item := range items {
		v, err := FromRaw(item)
		if err != nil {
			return nil, err
		}
		vacancies = append(vacancies, v)
	}
	return vacancies, nil
}

// Ordering is the result of comparing two vacancies by salary.
type Ordering int

const (
	// OrderingUndefined means at least one side has no numeric salary;
	// the two vacancies have no defined order.
	OrderingUndefined Ordering = iota
	OrderingLess
	OrderingEqual
	OrderingGreater
)

// CompareBySalary orders two vacancies by salary value. The result is
// OrderingUndefined when either salary is unspecified; callers must check
// for that before relying on the order.
func CompareBySalary(a, b Vacancy) Ordering {
	av, aok := a.Salary.Amount()
	bv, bok := b.Salary.Amount()
	if !aok || !bok {
		return OrderingUndefined
	}
	switch {
	case av < bv:
		return OrderingLess
	case av > bv:
		return OrderingGreater
	default:
		return OrderingEqual
	}
}

// vacancyJSON is the persisted shape: salary is a number or the sentinel
// string, id is a string or null.
type vacancyJSON struct {
	Name        string  `json:"name"`
	Link        string  `json:"link"`
	Salary      Salary  `json:"salary"`
	Description string  `json:"description"`
	ID          *string `json:"id"`
}

func (v Vacancy) MarshalJSON() ([]byte, error) {
	var id *string
	if v.ID != "" {
		id = &v.ID
	}
	return json.Marshal(vacancyJSON{
		Name:        v.Name,
		Link:        v.Link,
		Salary:      v.Salary,
		Description: v.Description,
		ID:          id,
	})
}

func (v *Vacancy) UnmarshalJSON(data []byte) error {
	var raw vacancyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v.Name = raw.Name
	v.Link = raw.Link
	v.Salary = raw.Salary
	v.Description = raw.Description
	v.ID = ""
	if raw.ID != nil {
		v.ID = *raw.ID
	}
	return nil
}
