package http

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	charsetpkg "golang.org/x/net/html/charset"
)

// ErrCircuitOpen is returned when the client's circuit breaker rejects a call.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// Client represents an HTTP client with configuration options.
type Client struct {
	baseURL            string
	client             *http.Client
	dismiss404         bool
	defaultHeaders     map[string]string
	defaultContentType string
	breaker            *gobreaker.CircuitBreaker[*rawResponse]
	logger             HTTPLogger
}

// ClientOptions represents the configuration options for the HTTP client.
type ClientOptions struct {
	FollowRedirect      bool
	Dismiss404          bool
	DefaultHeaders      map[string]string
	DefaultContentType  string
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	IdleConnTimeout     time.Duration
	ConnectionTimeout   time.Duration
	ReadTimeout         time.Duration
	// CircuitBreaker enables a breaker around every call when set.
	CircuitBreaker *BreakerOptions
	// Logger receives request/response events when set.
	Logger HTTPLogger
}

// BreakerOptions configures the optional circuit breaker.
type BreakerOptions struct {
	Name string
	// MaxConsecutiveFailures trips the breaker once exceeded. Defaults to 5.
	MaxConsecutiveFailures uint32
	// OpenTimeout is how long the breaker stays open before half-opening. Defaults to 30s.
	OpenTimeout time.Duration
}

// rawResponse is what travels through the breaker: the body is already read.
type rawResponse struct {
	status int
	header http.Header
	body   []byte
}

// upstreamError marks a 5xx so the breaker counts it as a failure while the
// caller still gets the body to decode.
type upstreamError struct {
	resp *rawResponse
}

func (e *upstreamError) Error() string {
	return fmt.Sprintf("upstream error: status %d", e.resp.status)
}

// NewHttpClient creates a new HTTP client with the given base URL and configuration options.
func NewHttpClient(baseURL string, opts ClientOptions) *Client {
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 200
	}
	if opts.MaxIdleConnsPerHost == 0 {
		opts.MaxIdleConnsPerHost = 20
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 60 * time.Second
	}
	if opts.ConnectionTimeout == 0 {
		opts.ConnectionTimeout = 60 * time.Second
	}
	if opts.DefaultContentType == "" {
		opts.DefaultContentType = "application/json"
	}

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        opts.MaxIdleConns,
		MaxIdleConnsPerHost: opts.MaxIdleConnsPerHost,
		IdleConnTimeout:     opts.IdleConnTimeout,
		DialContext: (&net.Dialer{
			Timeout: opts.ConnectionTimeout,
		}).DialContext,
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   opts.ReadTimeout,
	}

	if !opts.FollowRedirect {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	hc := &Client{
		baseURL:            strings.TrimRight(baseURL, "/"),
		client:             client,
		dismiss404:         opts.Dismiss404,
		defaultHeaders:     opts.DefaultHeaders,
		defaultContentType: opts.DefaultContentType,
		logger:             opts.Logger,
	}

	if opts.CircuitBreaker != nil {
		hc.breaker = newBreaker(*opts.CircuitBreaker)
	}

	return hc
}

func newBreaker(opts BreakerOptions) *gobreaker.CircuitBreaker[*rawResponse] {
	maxFailures := opts.MaxConsecutiveFailures
	if maxFailures == 0 {
		maxFailures = 5
	}
	timeout := opts.OpenTimeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return gobreaker.NewCircuitBreaker[*rawResponse](gobreaker.Settings{
		Name:        opts.Name,
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > maxFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil
		},
	})
}

// BaseURL returns the normalized base URL of the client.
func (hc *Client) BaseURL() string {
	return hc.baseURL
}

// Request creates a new Request object for the client.
func (hc *Client) Request() *Request {
	return NewHttpClientRequest(hc)
}

// Get sends a GET request to the specified path with optional query parameters, headers, and response types.
// It returns the success response, error response, status code, and error if any.
func (hc *Client) Get(ctx context.Context, path string, queryParams map[string]string, headers map[string]string, successResp any, errorResp any) (any, any, int, error) {
	return hc.doRequest(ctx, http.MethodGet, path, queryParams, headers, nil, successResp, errorResp)
}

// Post sends a POST request to the specified path with optional query parameters, headers, and response types.
func (hc *Client) Post(ctx context.Context, path string, queryParams map[string]string, headers map[string]string, body any, successResp any, errorResp any) (any, any, int, error) {
	return hc.doRequest(ctx, http.MethodPost, path, queryParams, headers, body, successResp, errorResp)
}

// Put sends a PUT request to the specified path with optional query parameters, headers, and response types.
func (hc *Client) Put(ctx context.Context, path string, queryParams map[string]string, headers map[string]string, body any, successResp any, errorResp any) (any, any, int, error) {
	return hc.doRequest(ctx, http.MethodPut, path, queryParams, headers, body, successResp, errorResp)
}

// Delete sends a DELETE request to the specified path with optional query parameters, headers, and response types.
func (hc *Client) Delete(ctx context.Context, path string, queryParams map[string]string, headers map[string]string, body any, successResp any, errorResp any) (any, any, int, error) {
	return hc.doRequest(ctx, http.MethodDelete, path, queryParams, headers, body, successResp, errorResp)
}

// doRequest builds the URL and body, executes the call (through the breaker
// when configured) and decodes the response into successResp or errorResp.
func (hc *Client) doRequest(ctx context.Context, method, path string, queryParams map[string]string, headers map[string]string, body any, successResp any, errorResp any) (any, any, int, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	fullURL := hc.buildURL(path)
	if len(queryParams) > 0 {
		fullURL += "?" + buildQueryString(queryParams)
	}

	bodyBytes, contentType, err := hc.encodeBody(body)
	if err != nil {
		return nil, nil, 0, err
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, nil, 0, err
	}
	if body == nil {
		req.Body = http.NoBody
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for k, v := range hc.defaultHeaders {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	logHeaders := flattenHeaders(req.Header)
	if hc.logger != nil {
		hc.logger.LogRequest(method, fullURL, logHeaders, string(bodyBytes))
	}

	start := time.Now()
	resp, err := hc.execute(req)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		if hc.logger != nil {
			hc.logger.LogResponseError(method, fullURL, logHeaders, string(bodyBytes), 0, "", latency, err)
		}
		return nil, nil, 0, err
	}

	respContentType := resp.header.Get("Content-Type")
	if respContentType == "" {
		respContentType = hc.defaultContentType
	}

	if resp.status >= 200 && resp.status < 300 {
		if hc.logger != nil {
			hc.logger.LogResponseSuccess(method, fullURL, logHeaders, string(bodyBytes), resp.status, string(resp.body), latency)
		}
		if successResp != nil && len(resp.body) > 0 {
			if err := hc.unmarshalResponse(resp.body, respContentType, successResp); err != nil {
				return nil, nil, resp.status, fmt.Errorf("failed to decode response: %w", err)
			}
		}
		return successResp, nil, resp.status, nil
	}

	statusErr := fmt.Errorf("http error: status %d", resp.status)
	if hc.logger != nil {
		hc.logger.LogResponseError(method, fullURL, logHeaders, string(bodyBytes), resp.status, string(resp.body), latency, statusErr)
	}

	if resp.status == http.StatusNotFound && hc.dismiss404 {
		return nil, nil, resp.status, nil
	}

	if errorResp != nil && len(resp.body) > 0 {
		if err := hc.unmarshalResponse(resp.body, respContentType, errorResp); err != nil {
			return nil, nil, resp.status, statusErr
		}
		return nil, errorResp, resp.status, statusErr
	}

	return nil, nil, resp.status, statusErr
}

// execute runs the request and reads the whole body, through the breaker if any.
func (hc *Client) execute(req *http.Request) (*rawResponse, error) {
	call := func() (*rawResponse, error) {
		resp, err := hc.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer func() { _ = resp.Body.Close() }()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}

		raw := &rawResponse{status: resp.StatusCode, header: resp.Header, body: data}
		if resp.StatusCode >= 500 {
			return nil, &upstreamError{resp: raw}
		}
		return raw, nil
	}

	var resp *rawResponse
	var err error
	if hc.breaker == nil {
		resp, err = call()
	} else {
		resp, err = hc.breaker.Execute(call)
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %s", ErrCircuitOpen, hc.breaker.Name())
		}
	}

	var upstream *upstreamError
	if errors.As(err, &upstream) {
		return upstream.resp, nil
	}
	return resp, err
}

// BreakerState reports the breaker state, or "disabled" when none is configured.
func (hc *Client) BreakerState() string {
	if hc.breaker == nil {
		return "disabled"
	}
	return hc.breaker.State().String()
}

func (hc *Client) encodeBody(body any) ([]byte, string, error) {
	if body == nil {
		return nil, "", nil
	}

	switch b := body.(type) {
	case string:
		return []byte(b), "text/plain", nil
	case []byte:
		return b, "application/octet-stream", nil
	}

	switch hc.defaultContentType {
	case "application/xml":
		data, err := xml.Marshal(body)
		if err != nil {
			return nil, "", fmt.Errorf("failed to marshal request body to XML: %w", err)
		}
		return data, "application/xml", nil
	default:
		data, err := json.Marshal(body)
		if err != nil {
			return nil, "", fmt.Errorf("failed to marshal request body to JSON: %w", err)
		}
		return data, "application/json", nil
	}
}

// unmarshalResponse unmarshals response body based on content type
func (hc *Client) unmarshalResponse(bodyBytes []byte, contentType string, target any) error {
	mainContentType := strings.TrimSpace(strings.Split(contentType, ";")[0])

	switch mainContentType {
	case "application/xml", "text/xml":
		dec := xml.NewDecoder(bytes.NewReader(bodyBytes))
		dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
			return charsetpkg.NewReaderLabel(charset, input)
		}
		return dec.Decode(target)
	case "text/plain":
		if strPtr, ok := target.(*string); ok {
			*strPtr = string(bodyBytes)
			return nil
		}
		return json.Unmarshal(bodyBytes, target)
	case "application/octet-stream":
		if bytePtr, ok := target.(*[]byte); ok {
			*bytePtr = bodyBytes
			return nil
		}
		return json.Unmarshal(bodyBytes, target)
	default:
		return json.Unmarshal(bodyBytes, target)
	}
}

// buildURL builds a normalized URL by properly handling baseURL and path
func (hc *Client) buildURL(path string) string {
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return hc.baseURL + path
}

// buildQueryString builds an escaped, key-sorted query string
func buildQueryString(params map[string]string) string {
	values := url.Values{}
	for key, value := range params {
		values.Set(key, value)
	}
	return values.Encode()
}

func flattenHeaders(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k := range h {
		if strings.EqualFold(k, "Authorization") {
			out[k] = "***"
			continue
		}
		out[k] = h.Get(k)
	}
	return out
}
