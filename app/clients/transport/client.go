package transport

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

// Request describes a single outbound HTTP call
type Request struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    string
}

// Response holds status and raw body of a completed call.
// Non-2xx statuses are returned as is, it's up to the caller to interpret them
type Response struct {
	Status int
	Body   string
}

// NetworkError is returned when the request could not be completed at all
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Options configures Client
type Options struct {
	// VerifyServerCertificate disables TLS validation when false.
	// GigaChat endpoints are signed by a CA missing from most system trust stores.
	VerifyServerCertificate bool
}

// Client performs HTTP requests with a single attempt and no timeout
type Client struct {
	http *resty.Client
}

// Do executes request
func (c *Client) Do(ctx context.Context, r Request) (Response, error) {
	req := c.http.R().SetContext(ctx).SetHeaders(r.Headers)
	if r.Body != "" {
		req.SetBody(r.Body)
	}
	resp, err := req.Execute(r.Method, r.URL)
	if err != nil {
		return Response{}, &NetworkError{URL: r.URL, Err: err}
	}
	log.Debug().
		Str("method", r.Method).
		Str("url", r.URL).
		Int("status", resp.StatusCode()).
		Msg("request done")
	return Response{Status: resp.StatusCode(), Body: string(resp.Body())}, nil
}

// NewClient creates client on top of a fresh HTTP transport
func NewClient(opts Options) *Client {
	c := resty.New().SetLogger(restyLogger{})
	if !opts.VerifyServerCertificate {
		log.Warn().Msg("TLS certificate verification is disabled")
		c.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true}) //nolint:gosec
	}
	return &Client{http: c}
}

// NewClientWithHTTP creates client using given HTTP client as is
func NewClientWithHTTP(hc *http.Client) *Client {
	return &Client{http: resty.NewWithClient(hc).SetLogger(restyLogger{})}
}
