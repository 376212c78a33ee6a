package clients

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

//go:generate mockgen -source=http_client.go -destination=mock_http_client.go -package=clients

const (
	defaultTimeout   = 15 * time.Second
	defaultMaxBody   = 1 << 20
	defaultUserAgent = "gobounty"
)

var (
	ErrFailedCloseResponseBody = errors.New("failed close response body")
	ErrBodyTooLarge            = errors.New("response body too large")
)

type HTTPClientI interface {
	Get(ctx context.Context, url string, headers http.Header) (*Response, error)
}

type Response struct {
	StatusCode int
	Body       []byte
	Header     http.Header
}

type Option func(*HTTPClient)

func WithTimeout(d time.Duration) Option {
	return func(h *HTTPClient) { h.client.Timeout = d }
}

func WithUserAgent(ua string) Option {
	return func(h *HTTPClient) { h.userAgent = ua }
}

// WithMaxBody caps how many bytes of a response body are read.
func WithMaxBody(n int64) Option {
	return func(h *HTTPClient) { h.maxBody = n }
}

type HTTPClient struct {
	client    *http.Client
	userAgent string
	maxBody   int64
}

func NewHTTPClient(opts ...Option) *HTTPClient {
	h := &HTTPClient{
		client:    &http.Client{Timeout: defaultTimeout},
		userAgent: defaultUserAgent,
		maxBody:   defaultMaxBody,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *HTTPClient) Get(ctx context.Context, url string, headers http.Header) (resp *Response, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, err
	}
	if headers != nil {
		req.Header = headers.Clone()
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", h.userAgent)
	}

	httpResp, err := h.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if e := httpResp.Body.Close(); e != nil {
			err = errors.Join(err, ErrFailedCloseResponseBody)
		}
	}()

	body, err := io.ReadAll(io.LimitReader(httpResp.Body, h.maxBody+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > h.maxBody {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrBodyTooLarge, h.maxBody)
	}
	return &Response{
		StatusCode: httpResp.StatusCode,
		Body:       body,
		Header:     httpResp.Header,
	}, nil
}
