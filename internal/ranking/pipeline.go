// Package ranking implements the vacancy selection pipeline: keyword filter,
// salary range filter, descending salary sort, top-N truncation. The stages
// compose strictly in that order; each one returns a fresh slice and leaves
// its input untouched.
package ranking

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"vacancy-finder-go/internal/models"
)

// FilterByKeywords keeps the vacancies whose description contains at least
// one keyword, compared case-insensitively as a substring. An empty keyword
// list filters nothing.
func FilterByKeywords(vacancies []models.Vacancy, keywords []string) []models.Vacancy {
	if len(keywords) == 0 {
		return append([]models.Vacancy(nil), vacancies...)
	}
	var filtered []models.Vacancy
	for _, v := range vacancies {
		description := strings.ToLower(v.Description)
		for _, keyword := range keywords {
			if strings.Contains(description, strings.ToLower(keyword)) {
				filtered = append(filtered, v)
				break
			}
		}
	}
	return filtered
}

// FilterBySalaryRange keeps the vacancies whose numeric salary falls inside
// the inclusive "min-max" range. Vacancies without a salary are always
// dropped once a range is given. An empty spec filters nothing.
func FilterBySalaryRange(vacancies []models.Vacancy, rangeSpec string) ([]models.Vacancy, error) {
	if strings.TrimSpace(rangeSpec) == "" {
		return append([]models.Vacancy(nil), vacancies...), nil
	}
	min, max, err := parseRange(rangeSpec)
	if err != nil {
		return nil, err
	}
	var kept []models.Vacancy
	for _, v := range vacancies {
		amount, ok := v.Salary.Amount()
		if !ok {
			continue
		}
		if amount >= float64(min) && amount <= float64(max) {
			kept = append(kept, v)
		}
	}
	return kept, nil
}

func parseRange(spec string) (int, int, error) {
	parts := strings.SplitN(spec, "-", 2)
	if len(parts) != 2 {
		return 0, 0, &ParseError{Input: spec, Reason: `want "min-max"`}
	}
	min, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, &ParseError{Input: spec, Reason: "min bound is not an integer"}
	}
	max, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, &ParseError{Input: spec, Reason: "max bound is not an integer"}
	}
	return min, max, nil
}

// SortBySalaryDesc returns the vacancies in stable descending salary order.
// Vacancies without a salary rank below every priced one; ties keep their
// input order.
func SortBySalaryDesc(vacancies []models.Vacancy) []models.Vacancy {
	sorted := append([]models.Vacancy(nil), vacancies...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return salaryRank(sorted[i]) > salaryRank(sorted[j])
	})
	return sorted
}

func salaryRank(v models.Vacancy) float64 {
	amount, ok := v.Salary.Amount()
	if !ok {
		return math.Inf(-1)
	}
	return amount
}

// TopN returns the first min(n, len) vacancies. n must be positive.
func TopN(vacancies []models.Vacancy, n int) ([]models.Vacancy, error) {
	if n <= 0 {
		return nil, &models.ValidationError{Field: "top_n", Reason: "must be a positive integer"}
	}
	if n > len(vacancies) {
		n = len(vacancies)
	}
	return append([]models.Vacancy(nil), vacancies[:n]...), nil
}

// Rank runs the full pipeline over the vacancies.
func Rank(vacancies []models.Vacancy, keywords []string, rangeSpec string, n int) ([]models.Vacancy, error) {
	filtered := FilterByKeywords(vacancies, keywords)
	ranged, err := FilterBySalaryRange(filtered, rangeSpec)
	if err != nil {
		return nil, err
	}
	return TopN(SortBySalaryDesc(ranged), n)
}
