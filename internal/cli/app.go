// Package cli implements the interactive search session: prompt for the
// five inputs, fetch and persist fresh vacancies, rank the stored set and
// print the top matches.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"vacancy-finder-go/internal/finder"
	"vacancy-finder-go/internal/models"
)

// App drives one interactive session over stdin/stdout.
type App struct {
	aggregator *finder.Aggregator
	searcher   *finder.Searcher
	scanner    *bufio.Scanner
	out        io.Writer
}

func NewApp(aggregator *finder.Aggregator, searcher *finder.Searcher) *App {
	return NewAppWithIO(aggregator, searcher, os.Stdin, os.Stdout)
}

// NewAppWithIO wires explicit streams; tests drive the prompts with it.
func NewAppWithIO(aggregator *finder.Aggregator, searcher *finder.Searcher, in io.Reader, out io.Writer) *App {
	return &App{
		aggregator: aggregator,
		searcher:   searcher,
		scanner:    bufio.NewScanner(in),
		out:        out,
	}
}

func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "Welcome to the vacancy finder!")

	query := a.promptLine("Enter a search query: ")
	topN, err := a.promptTopN()
	if err != nil {
		return err
	}
	keywords := strings.Fields(a.promptLine("Enter filter keywords (space separated): "))
	salaryRange := a.promptLine("Enter a salary range (e.g. 100000-150000): ")

	fmt.Fprintln(a.out, "\nFetching vacancies...")
	saved, err := a.aggregator.Aggregate(ctx, query)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Saved %d vacancies\n", saved)

	results, err := a.searcher.Search(finder.Query{
		Keywords:    keywords,
		SalaryRange: salaryRange,
		TopN:        topN,
	})
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(a.out, "No vacancies matched the given criteria.")
		return nil
	}

	fmt.Fprintln(a.out, "\nTop vacancies by salary:")
	PrintVacancies(a.out, results)
	return nil
}

func (a *App) promptLine(prompt string) string {
	fmt.Fprint(a.out, prompt)
	if !a.scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(a.scanner.Text())
}

// promptTopN re-prompts until it reads a positive integer.
func (a *App) promptTopN() (int, error) {
	for {
		fmt.Fprint(a.out, "How many vacancies to show: ")
		if !a.scanner.Scan() {
			return 0, fmt.Errorf("input closed while reading the result count")
		}
		n, err := strconv.Atoi(strings.TrimSpace(a.scanner.Text()))
		if err != nil || n <= 0 {
			fmt.Fprintln(a.out, "The count must be a positive integer.")
			continue
		}
		return n, nil
	}
}

// PrintVacancies writes the display form of each vacancy.
func PrintVacancies(w io.Writer, vacancies []models.Vacancy) {
	for _, v := range vacancies {
		fmt.Fprintf(w, "Name: %s\n", v.Name)
		fmt.Fprintf(w, "Link: %s\n", v.Link)
		fmt.Fprintf(w, "Salary: %s\n", v.Salary)
		fmt.Fprintf(w, "Description: %s\n", v.Description)
		fmt.Fprintln(w, strings.Repeat("-", 40))
	}
}
