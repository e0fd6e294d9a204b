package wrestledex

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/ringbookhq/ringbook/internal/platform/logging"
	"github.com/ringbookhq/ringbook/internal/platform/resilience"
	"github.com/ringbookhq/ringbook/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const defaultBaseURL = "https://api.wrestledex.io/v1"

var errWrestleDexTransient = crerr.New("wrestledex transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Token          string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to the WrestleDex talent catalog. It satisfies
// usecase.RosterImportSource.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	token          string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 15 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		token:          strings.TrimSpace(cfg.Token),
		maxRetries:     max(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

type rosterEnvelope struct {
	Data []rosterProfile `json:"data"`
}

type rosterProfile struct {
	ID        string `json:"id"`
	RingName  string `json:"ring_name"`
	Gender    string `json:"gender"`
	RealName  string `json:"real_name"`
	Nickname  string `json:"nickname"`
	Height    string `json:"height"`
	Weight    string `json:"weight"`
	DebutYear int    `json:"debut_year"`
	Biography string `json:"biography"`
}

// FetchRoster pulls every profile for the named promotion.
func (c *Client) FetchRoster(ctx context.Context, promotion string) ([]usecase.ExternalWrestler, error) {
	promotion = strings.TrimSpace(promotion)
	if promotion == "" {
		return nil, crerr.New("promotion is required")
	}

	path := "/promotions/" + url.PathEscape(promotion) + "/roster"
	var envelope rosterEnvelope
	if err := c.doJSON(ctx, path, &envelope); err != nil {
		return nil, fmt.Errorf("fetch roster promotion=%s: %w", promotion, err)
	}

	out := make([]usecase.ExternalWrestler, 0, len(envelope.Data))
	for _, profile := range envelope.Data {
		if strings.TrimSpace(profile.RingName) == "" {
			continue
		}
		out = append(out, usecase.ExternalWrestler{
			ExternalID: profile.ID,
			Name:       profile.RingName,
			Gender:     profile.Gender,
			RealName:   profile.RealName,
			Nickname:   profile.Nickname,
			Height:     profile.Height,
			Weight:     profile.Weight,
			DebutYear:  profile.DebutYear,
			Biography:  profile.Biography,
		})
	}

	return out, nil
}

func (c *Client) doJSON(ctx context.Context, path string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "wrestledex circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: talent catalog is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	fullURL := c.baseURL + path
	curlPreview := buildCurlPreview(fullURL, c.token != "")

	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.SetAttributes(
			attribute.String("wrestledex.url", fullURL),
			attribute.String("wrestledex.request_curl_preview", curlPreview),
		)
	}

	raw, err, _ := c.flight.Do(path, func() (any, error) {
		body, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && stderrors.Is(reqErr, errWrestleDexTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return body, reqErr
	})
	if err != nil {
		return err
	}

	body, ok := raw.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", raw)
	}

	if err := sonic.Unmarshal(body, target); err != nil {
		return fmt.Errorf("decode catalog payload: %w", err)
	}

	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %s", errWrestleDexTransient, sanitizeSensitiveText(err.Error(), c.token))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("%w: read response body: %v", errWrestleDexTransient, readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else {
				lastErr = fmt.Errorf("catalog status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
				if isRetryableStatus(resp.StatusCode) {
					lastErr = fmt.Errorf("%w: catalog status=%d body=%s", errWrestleDexTransient, resp.StatusCode, abbreviateBody(raw))
				} else {
					return nil, lastErr
				}
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("catalog request failed")
	}
	c.logger.WarnContext(ctx, "wrestledex request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func buildCurlPreview(fullURL string, withToken bool) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	appendPart := func(part string) {
		if buf.Len() > 0 {
			_ = buf.WriteByte(' ')
		}
		_, _ = buf.WriteString(part)
	}

	appendPart("curl")
	appendPart(shellQuote(fullURL))
	appendPart("-H")
	appendPart(shellQuote("Accept: application/json"))
	if withToken {
		appendPart("-H")
		appendPart(shellQuote("Authorization: Bearer ***"))
	}

	return buf.String()
}

func shellQuote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", "'\"'\"'") + "'"
}

func sanitizeSensitiveText(value, token string) string {
	value = strings.TrimSpace(value)
	if value == "" || token == "" {
		return value
	}
	return strings.ReplaceAll(value, token, "REDACTED")
}

func abbreviateBody(raw []byte) string {
	const limit = 512
	body := strings.TrimSpace(string(raw))
	if len(body) <= limit {
		return body
	}
	return body[:limit] + "...(truncated)"
}

func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusRequestTimeout ||
		statusCode == http.StatusTooManyRequests ||
		statusCode >= http.StatusInternalServerError
}
