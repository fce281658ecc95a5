// Package youtube provides a resilient client for the YouTube138 RapidAPI surface
package youtube

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	perr "tubelens/internal/platform/errors"
	"tubelens/internal/platform/logger"
)

const (
	hostDefault      = "youtube138.p.rapidapi.com"
	defaultTimeout   = 15 * time.Second
	defaultMaxRetry  = 3
	defaultRetryBase = 500 * time.Millisecond
	defaultPageDelay = 300 * time.Millisecond
)

// Options configures the Client
type Options struct {
	// Host is the RapidAPI host header and request authority
	Host string

	// APIKey is the RapidAPI key, required
	APIKey string

	Timeout time.Duration

	// Retry config for transient and rate limited responses
	MaxRetries int
	RetryBase  time.Duration

	// PageDelay spaces out paginated calls to stay under provider quotas
	PageDelay time.Duration
}

// Client is a minimal YouTube138 client with retry and rate limit handling
type Client struct {
	http  *http.Client
	opts  Options
	log   logger.Logger
	now   func() time.Time
	sleep func(time.Duration)
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.Host == "" {
		o.Host = hostDefault
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxRetries <= 0 {
		o.MaxRetries = defaultMaxRetry
	}
	if o.RetryBase <= 0 {
		o.RetryBase = defaultRetryBase
	}
	if o.PageDelay < 0 {
		o.PageDelay = defaultPageDelay
	}
	return &Client{
		http:  &http.Client{Timeout: o.Timeout},
		opts:  o,
		log:   *logger.Named("youtube"),
		now:   time.Now,
		sleep: time.Sleep,
	}
}

// Do issues a GET with auth headers, retries, and rate limit handling
func (c *Client) Do(ctx context.Context, path string, q url.Values) (*http.Response, error) {
	u := "https://" + c.opts.Host + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	attempts := 0
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "youtube new request failed")
		}
		req.Header.Set("x-rapidapi-key", c.opts.APIKey)
		req.Header.Set("x-rapidapi-host", c.opts.Host)

		start := c.now()
		resp, err := c.http.Do(req)
		lat := c.now().Sub(start)

		if err != nil {
			if !c.shouldRetry(attempts) {
				return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "youtube do failed")
			}
			back := c.backoff(attempts)
			c.log.Warn().Dur("retry_in", back).Int("attempt", attempts).Msg("youtube transport error retrying")
			c.sleep(back)
			attempts++
			continue
		}

		c.log.Debug().
			Str("path", path).
			Int("status", resp.StatusCode).
			Int("attempt", attempts).
			Dur("latency", lat).
			Msg("youtube http response")

		switch resp.StatusCode {
		case http.StatusOK:
			return resp, nil
		case http.StatusUnauthorized, http.StatusForbidden:
			_ = drainAndClose(resp.Body)
			return nil, perr.Newf(perr.ErrorCodeUnauthorized, "youtube api key rejected status %d", resp.StatusCode)
		case http.StatusTooManyRequests:
			wait := retryAfter(resp.Header)
			if wait <= 0 {
				wait = c.backoff(attempts)
			}
			if !c.shouldRetry(attempts) {
				_ = drainAndClose(resp.Body)
				return nil, perr.Newf(perr.ErrorCodeTooManyRequests, "youtube rate limited")
			}
			c.log.Warn().Dur("sleep", wait).Msg("youtube rate limited backing off")
			_ = drainAndClose(resp.Body)
			c.sleep(wait)
			attempts++
			continue
		case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			if !c.shouldRetry(attempts) {
				_ = drainAndClose(resp.Body)
				return nil, perr.Newf(perr.ErrorCodeUnavailable, "youtube transient server error")
			}
			back := c.backoff(attempts)
			c.log.Warn().Dur("retry_in", back).Int("attempt", attempts).Msg("youtube transient error retrying")
			_ = drainAndClose(resp.Body)
			c.sleep(back)
			attempts++
			continue
		default:
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
			_ = resp.Body.Close()
			return nil, perr.Newf(perr.ErrorCodeUnknown, "youtube unexpected status %d body %s", resp.StatusCode, string(body))
		}
	}
}

func (c *Client) backoff(attempt int) time.Duration {
	ms := int64(c.opts.RetryBase / time.Millisecond)
	ms = ms << uint(attempt)
	max := int64(30 * time.Second / time.Millisecond)
	if ms > max {
		ms = max
	}
	return time.Duration(ms) * time.Millisecond
}

func (c *Client) shouldRetry(attempt int) bool {
	return attempt < c.opts.MaxRetries
}

func retryAfter(h http.Header) time.Duration {
	if s := h.Get("Retry-After"); s != "" {
		if sec := atoi(s); sec > 0 {
			return time.Duration(sec) * time.Second
		}
	}
	return 0
}
