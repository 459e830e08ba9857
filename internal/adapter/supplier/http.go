package supplier

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"clipmarket/internal/config/configs"
	"clipmarket/internal/core/domain"
)

// HTTPSupplier fetches current clip statistics from the view supplier
// service. Requests are paced by a token bucket shared by all callers.
type HTTPSupplier struct {
	base    *url.URL
	client  *http.Client
	limiter *rate.Limiter
}

type viewsResponse struct {
	Views  int64 `json:"views"`
	Likes  int64 `json:"likes"`
	Shares int64 `json:"shares"`
}

// NewHTTPSupplier builds a client for cfg.BaseURL.
func NewHTTPSupplier(cfg configs.Supplier) (*HTTPSupplier, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse supplier url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("supplier url %q must be absolute", cfg.BaseURL)
	}
	limit := rate.Inf
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPSupplier{
		base:    base,
		client:  &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(limit, burst),
	}, nil
}

// FetchViews returns the clip's current cumulative counts.
func (s *HTTPSupplier) FetchViews(ctx context.Context, clip domain.Clip) (domain.ViewSnapshot, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return domain.ViewSnapshot{}, err
	}

	u := *s.base
	u.Path += "/v1/views"
	q := url.Values{}
	q.Set("platform", strings.ToLower(clip.Platform))
	q.Set("url", clip.URL)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return domain.ViewSnapshot{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return domain.ViewSnapshot{}, fmt.Errorf("fetch views for clip %d: %w", clip.ID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.ViewSnapshot{}, fmt.Errorf("fetch views for clip %d: status %d: %s",
			clip.ID, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out viewsResponse
	if err = json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return domain.ViewSnapshot{}, fmt.Errorf("decode views for clip %d: %w", clip.ID, err)
	}
	if out.Views < 0 || out.Likes < 0 || out.Shares < 0 {
		return domain.ViewSnapshot{}, fmt.Errorf("negative counts for clip %d", clip.ID)
	}
	return domain.ViewSnapshot{Views: out.Views, Likes: out.Likes, Shares: out.Shares}, nil
}
