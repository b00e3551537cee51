package research

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/Mr-Neutr0n/travel-agent-ai/internal/adapters/observability"
	"github.com/Mr-Neutr0n/travel-agent-ai/internal/domain"
)

// Client talks to the hosted recommendation service. Every call is
// client-side rate limited and retried on 429/5xx with jittered backoff,
// honoring Retry-After when the server provides one.
type Client struct {
	base string
	hc   *http.Client
	key  string
	rl   *rate.Limiter
}

func New(base, key string, rps int) (*Client, error) {
	if key == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 20 * time.Second},
		key:  key,
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

// ---- Public API (tries modern endpoints first, falls back to legacy variants) ----

func (c *Client) Hotels(ctx context.Context, destination string) (map[string]any, error) {
	return c.section(ctx, destination, "hotels")
}

func (c *Client) Dining(ctx context.Context, destination string) (map[string]any, error) {
	return c.section(ctx, destination, "dining")
}

func (c *Client) Activities(ctx context.Context, destination string) (map[string]any, error) {
	return c.section(ctx, destination, "activities")
}

func (c *Client) section(ctx context.Context, destination, section string) (map[string]any, error) {
	d := url.PathEscape(destination)
	candidates := []string{
		fmt.Sprintf("%s/v1/destinations/%s/%s", c.base, d, section), // preferred
		fmt.Sprintf("%s/v1/research/%s/%s", c.base, d, section),     // legacy
	}
	var out map[string]any
	return out, c.getFirst(ctx, section, candidates, &out)
}

// Summary posts the assembled record so the service can summarize what the
// section research actually found.
func (c *Client) Summary(ctx context.Context, destination string, rec domain.TravelRecord) (string, error) {
	body, err := json.Marshal(struct {
		Destination string              `json:"destination"`
		Record      domain.TravelRecord `json:"record"`
	}{destination, rec})
	if err != nil {
		return "", err
	}
	var out struct {
		Summary string `json:"summary"`
	}
	u := fmt.Sprintf("%s/v1/destinations/%s/summary", c.base, url.PathEscape(destination))
	if err := c.do(ctx, http.MethodPost, u, "summary", body, &out); err != nil {
		return "", err
	}
	return out.Summary, nil
}

// ---- Internals ----

func (c *Client) getFirst(ctx context.Context, endpoint string, urls []string, out any) error {
	var last error
	for _, u := range urls {
		if err := c.do(ctx, http.MethodGet, u, endpoint, nil, out); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				last = err
				continue // try next pattern
			}
			return err // non-404: stop early
		}
		return nil // success
	}
	if last != nil {
		return last
	}
	return errors.New("no candidate URL succeeded")
}

// do performs a request with client-side rate limiting, retries, and JSON
// decode into out. Retries on 429 and transient 5xx.
func (c *Client) do(ctx context.Context, method, url, endpoint string, body []byte, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	var lastErr error
	for i := 0; i < 4; i++ {
		// build a fresh request each attempt
		var rdr io.Reader
		if body != nil {
			rdr = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, url, rdr)
		if err != nil {
			return err
		}
		req.Header.Set("X-API-Key", c.key)
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", "travel-agent-ai/1.0")
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		start := time.Now()
		resp, err := c.hc.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = err
			if i < 3 && sleepCtx(ctx, backoff(i)) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr
		}
		observability.ObserveExternal("research", endpoint, resp.StatusCode, time.Since(start))

		switch resp.StatusCode {
		case http.StatusOK, http.StatusCreated, http.StatusAccepted:
			err := json.NewDecoder(resp.Body).Decode(out)
			resp.Body.Close()
			return err

		case http.StatusNoContent:
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			return nil

		case http.StatusNotFound:
			resp.Body.Close()
			return fmt.Errorf("research %s: %w", endpoint, domain.ErrNotFound)

		case http.StatusUnauthorized, http.StatusForbidden:
			resp.Body.Close()
			return fmt.Errorf("research %s: %w", endpoint, domain.ErrUnauthorized)

		case http.StatusTooManyRequests, http.StatusInternalServerError,
			http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			// Prefer server-provided Retry-After; otherwise exponential backoff.
			wait := retryAfter(resp)
			resp.Body.Close()
			if wait == 0 {
				wait = backoff(i)
			}
			lastErr = fmt.Errorf("remote %d", resp.StatusCode)
			if i < 3 && sleepCtx(ctx, wait) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr

		default:
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			resp.Body.Close()
			return fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
		}
	}

	return lastErr
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// retryAfter parses Retry-After header (seconds or HTTP-date). Returns 0 if absent/invalid.
func retryAfter(resp *http.Response) time.Duration {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(h)); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// backoff returns an exponential backoff delay with concurrency-safe jitter.
// Base doubles each attempt (200ms, 400ms, 800ms...), with up to +50% random
// jitter to avoid thundering herds.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0
	j := time.Duration(0.5 * f * float64(base))
	return base + j
}
