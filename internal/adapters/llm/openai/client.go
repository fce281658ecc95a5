// Package openai provides a chat completions client used for comment analysis
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	perr "tubelens/internal/platform/errors"
	"tubelens/internal/platform/logger"
)

const (
	baseURLDefault   = "https://api.openai.com/v1"
	defaultModel     = "gpt-4o-mini"
	defaultTimeout   = 120 * time.Second
	defaultMaxRetry  = 2
	defaultRetryBase = time.Second
)

// Options configures the Client
type Options struct {
	BaseURL string
	APIKey  string

	// Model is the default completion model, overridable per request
	Model string

	Timeout    time.Duration
	MaxRetries int
	RetryBase  time.Duration
}

// Client is a minimal chat completions client
type Client struct {
	http  *http.Client
	opts  Options
	log   logger.Logger
	sleep func(time.Duration)
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.Model == "" {
		o.Model = defaultModel
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
	return &Client{
		http:  &http.Client{Timeout: o.Timeout},
		opts:  o,
		log:   *logger.Named("openai"),
		sleep: time.Sleep,
	}
}

// Model returns the default completion model
func (c *Client) Model() string { return c.opts.Model }

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Complete sends a single user prompt and returns the first choice's content
// model may be empty to use the configured default
func (c *Client) Complete(ctx context.Context, model, prompt string) (string, error) {
	if model == "" {
		model = c.opts.Model
	}
	body, err := json.Marshal(chatRequest{
		Model:       model,
		Messages:    []message{{Role: "user", Content: prompt}},
		Temperature: 0.2,
	})
	if err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeJSON, "openai marshal request failed")
	}

	attempts := 0
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.BaseURL+"/chat/completions", bytes.NewReader(body))
		if err != nil {
			return "", perr.Wrapf(err, perr.ErrorCodeUnknown, "openai new request failed")
		}
		req.Header.Set("Authorization", "Bearer "+c.opts.APIKey)
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			if attempts >= c.opts.MaxRetries {
				return "", perr.Wrapf(err, perr.ErrorCodeUnavailable, "openai do failed")
			}
			c.sleep(c.backoff(attempts))
			attempts++
			continue
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			return c.readChoice(resp, model)
		case resp.StatusCode == http.StatusUnauthorized:
			_ = resp.Body.Close()
			return "", perr.Newf(perr.ErrorCodeUnauthorized, "openai api key rejected")
		case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
			_ = resp.Body.Close()
			if attempts >= c.opts.MaxRetries {
				return "", perr.Newf(perr.ErrorCodeUnavailable, "openai status %d after %d attempts", resp.StatusCode, attempts+1)
			}
			back := c.backoff(attempts)
			c.log.Warn().Int("status", resp.StatusCode).Dur("retry_in", back).Msg("openai retrying")
			c.sleep(back)
			attempts++
			continue
		default:
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
			_ = resp.Body.Close()
			return "", perr.Newf(perr.ErrorCodeUnknown, "openai unexpected status %d body %s", resp.StatusCode, string(b))
		}
	}
}

func (c *Client) readChoice(resp *http.Response, model string) (string, error) {
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Msg("openai close body failed")
		}
	}()

	b, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return "", err
	}
	var out chatResponse
	if err := json.Unmarshal(b, &out); err != nil {
		return "", perr.Wrapf(err, perr.ErrorCodeJSON, "openai decode response failed")
	}
	if out.Error != nil {
		return "", perr.Newf(perr.ErrorCodeUnknown, "openai error %s %s", out.Error.Type, out.Error.Message)
	}
	if len(out.Choices) == 0 {
		return "", perr.Newf(perr.ErrorCodeUnknown, "openai empty choices for model %s", model)
	}
	c.log.Debug().
		Str("model", model).
		Int("prompt_tokens", out.Usage.PromptTokens).
		Int("completion_tokens", out.Usage.CompletionTokens).
		Int("total_tokens", out.Usage.TotalTokens).
		Msg("openai completion")
	return out.Choices[0].Message.Content, nil
}

func (c *Client) backoff(attempt int) time.Duration {
	d := c.opts.RetryBase << uint(attempt)
	if d > 20*time.Second {
		d = 20 * time.Second
	}
	return d
}
