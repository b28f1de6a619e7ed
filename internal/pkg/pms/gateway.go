package pms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"syscall"
	"time"
)

const (
	defaultTimeout    = 30 * time.Second
	defaultRetryTimes = 3
	retryDelay        = 100 * time.Millisecond
)

// Config holds PMS connector credentials and request policy.
type Config struct {
	BaseURL     string
	ClientToken string
	AccessToken string
	Client      string
	Timeout     time.Duration
	RetryTimes  int
}

// Gateway performs authenticated POST calls against the PMS connector API.
// Credentials are merged into every request body; transport failures are
// retried with a fixed delay, application-level failures are not.
type Gateway struct {
	cfg  Config
	http *http.Client
}

// NewGateway creates a PMS gateway.
func NewGateway(cfg Config) *Gateway {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.RetryTimes <= 0 {
		cfg.RetryTimes = defaultRetryTimes
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &Gateway{
		cfg: cfg,
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
	}
}

// Post sends body merged with the connector credentials to the given endpoint
// and decodes the JSON response into out. A non-2xx response or an exhausted
// retry budget yields a *RequestError carrying the endpoint and HTTP status.
func (g *Gateway) Post(ctx context.Context, endpoint string, body map[string]interface{}, out interface{}) error {
	if strings.TrimSpace(g.cfg.BaseURL) == "" {
		return &RequestError{Endpoint: endpoint, Status: http.StatusInternalServerError, Err: errors.New("base_url is empty")}
	}

	payload := map[string]interface{}{
		"ClientToken": g.cfg.ClientToken,
		"AccessToken": g.cfg.AccessToken,
		"Client":      g.cfg.Client,
	}
	for k, v := range body {
		payload[k] = v
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return &RequestError{Endpoint: endpoint, Status: http.StatusInternalServerError, Err: err}
	}

	var lastErr error
	for attempt := 0; attempt < g.cfg.RetryTimes; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return &RequestError{Endpoint: endpoint, Status: http.StatusInternalServerError, Err: ctx.Err()}
			case <-time.After(retryDelay):
			}
		}

		resp, err := g.send(ctx, endpoint, data)
		if err != nil {
			lastErr = err
			if isRetryable(ctx, err) {
				continue
			}
			return &RequestError{Endpoint: endpoint, Status: http.StatusInternalServerError, Err: err}
		}

		return decodeResponse(endpoint, resp, out)
	}

	return &RequestError{Endpoint: endpoint, Status: http.StatusInternalServerError, Err: lastErr}
}

func (g *Gateway) send(ctx context.Context, endpoint string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.BaseURL+endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if g.cfg.Client != "" {
		req.Header.Set("User-Agent", g.cfg.Client)
	}
	return g.http.Do(req)
}

func decodeResponse(endpoint string, resp *http.Response, out interface{}) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &RequestError{Endpoint: endpoint, Status: resp.StatusCode}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &RequestError{Endpoint: endpoint, Status: http.StatusInternalServerError, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// isRetryable reports whether a transport error is worth another attempt.
// A canceled caller context is never retried.
func isRetryable(ctx context.Context, err error) bool {
	if errors.Is(ctx.Err(), context.Canceled) {
		return false
	}
	return isTimeoutError(ctx, err) || isNetworkError(err)
}

func isTimeoutError(ctx context.Context, err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return false
}

func isNetworkError(err error) bool {
	if err == nil {
		return false
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		err = urlErr.Err
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ENETUNREACH) ||
		errors.Is(err, syscall.EHOSTUNREACH) {
		return true
	}

	return false
}
