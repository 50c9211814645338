package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"vacancy-finder-go/pkg/httpclient"
)

const (
	defaultBaseURL = "https://api.hh.ru/vacancies"
	userAgent      = "HH-User-Agent"
	perPage        = 100
	maxPages       = 20
)

// HeadHunter fetches vacancies from the hh.ru public API. It paginates until
// the API returns an empty page or the page cap is reached.
type HeadHunter struct {
	client  *httpclient.HttpClient
	baseURL string
}

// NewHeadHunter creates a HeadHunter source. An empty baseURL selects the
// public API endpoint.
func NewHeadHunter(client *httpclient.HttpClient, baseURL string) *HeadHunter {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &HeadHunter{client: client, baseURL: baseURL}
}

func (h *HeadHunter) Name() string {
	return "HeadHunter"
}

type hhResponse struct {
	Items []hhItem `json:"items"`
}

type hhItem struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	AlternateURL string    `json:"alternate_url"`
	Salary       *hhSalary `json:"salary"`
	Snippet      hhSnippet `json:"snippet"`
}

type hhSalary struct {
	From     *float64 `json:"from"`
	To       *float64 `json:"to"`
	Currency string   `json:"currency"`
}

type hhSnippet struct {
	Requirement    string `json:"requirement"`
	Responsibility string `json:"responsibility"`
}

func (h *HeadHunter) Fetch(ctx context.Context, keyword string) ([]RawVacancy, error) {
	var raw []RawVacancy
	for page := 0; page < maxPages; page++ {
		items, err := h.fetchPage(ctx, keyword, page)
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			break
		}
		for _, item := range items {
			raw = append(raw, item.toRaw())
		}
	}
	return raw, nil
}

func (h *HeadHunter) fetchPage(ctx context.Context, keyword string, page int) ([]hhItem, error) {
	params := url.Values{}
	params.Set("text", keyword)
	params.Set("page", strconv.Itoa(page))
	params.Set("per_page", strconv.Itoa(perPage))

	resp, err := h.client.GetWithContext(ctx, h.baseURL+"?"+params.Encode(), map[string]string{
		"User-Agent": userAgent,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch headhunter page %d: %w", page, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("headhunter API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read headhunter response: %w", err)
	}

	var response hhResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("parse headhunter response: %w", err)
	}
	return response.Items, nil
}

// toRaw maps a wire item onto the canonical raw keys. Missing values stay
// missing rather than defaulting here.
func (it hhItem) toRaw() RawVacancy {
	raw := RawVacancy{
		"name": it.Name,
		"link": it.AlternateURL,
	}
	if it.ID != "" {
		raw["id"] = it.ID
	}
	if amount, ok := it.Salary.amount(); ok {
		raw["salary"] = amount
	}
	if description := it.Snippet.text(); description != "" {
		raw["description"] = description
	}
	return raw
}

// amount resolves the salary substructure to a single number, preferring the
// lower bound.
func (s *hhSalary) amount() (float64, bool) {
	if s == nil {
		return 0, false
	}
	if s.From != nil {
		return *s.From, true
	}
	if s.To != nil {
		return *s.To, true
	}
	return 0, false
}

func (sn hhSnippet) text() string {
	parts := make([]string, 0, 2)
	if r := stripMarkup(sn.Requirement); r != "" {
		parts = append(parts, r)
	}
	if r := stripMarkup(sn.Responsibility); r != "" {
		parts = append(parts, r)
	}
	return strings.Join(parts, " ")
}

// stripMarkup drops the highlight tags hh.ru embeds in snippet text and
// returns the plain text.
func stripMarkup(s string) string {
	if !strings.Contains(s, "<") {
		return strings.TrimSpace(s)
	}
	var b strings.Builder
	tokenizer := html.NewTokenizer(strings.NewReader(s))
	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt == html.TextToken {
			b.Write(tokenizer.Text())
		}
	}
	return strings.TrimSpace(b.String())
}
