package httpclient

import (
	"context"
	"io"
	"net/http"
	"time"
)

type HttpClient struct {
	client *http.Client
}

func NewHttpClient(timeout time.Duration) *HttpClient {
	return &HttpClient{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (h *HttpClient) Get(url string) (*http.Response, error) {
	return h.client.Get(url)
}

// GetWithContext issues a GET with the given headers, honoring ctx
// cancellation.
func (h *HttpClient) GetWithContext(ctx context.Context, url string, headers map[string]string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	return h.client.Do(req)
}

func (h *HttpClient) Post(url string, contentType string, body io.Reader) (*http.Response, error) {
	return h.client.Post(url, contentType, body)
}
