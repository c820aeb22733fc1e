package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"vastra-store/internal/logger"
	"vastra-store/internal/session"
	"vastra-store/internal/storage"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Client talks to the products API. Every call is rate limited on the
// client side, carries an X-Request-ID, and goes through a circuit
// breaker so a struggling API degrades fast instead of hanging the
// storefront. When a bearer credential is stored it is attached; the
// catalog itself is readable signed out.
type Client struct {
	baseURL string
	http    *http.Client
	kv      storage.Store
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker
}

type ClientOptions struct {
	BaseURL    string
	Timeout    time.Duration
	RatePerSec float64
	RateBurst  int
}

func NewClient(opts ClientOptions, kv storage.Store) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.RatePerSec <= 0 {
		opts.RatePerSec = 20
	}
	if opts.RateBurst <= 0 {
		opts.RateBurst = 40
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "catalog",
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
	})

	return &Client{
		baseURL: opts.BaseURL,
		http:    &http.Client{Timeout: opts.Timeout},
		kv:      kv,
		limiter: rate.NewLimiter(rate.Limit(opts.RatePerSec), opts.RateBurst),
		breaker: breaker,
	}
}

func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := c.doJSON(ctx, http.MethodGet, "/products", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, id string) (*Product, error) {
	var product Product
	if err := c.doJSON(ctx, http.MethodGet, "/products/"+id, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) FilterProducts(ctx context.Context, criteria Criteria) ([]Product, error) {
	var products []Product
	if err := c.doJSON(ctx, http.MethodPost, "/products/filter", criteria, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) GetFilterOptions(ctx context.Context) (*FilterOptions, error) {
	var opts FilterOptions
	if err := c.doJSON(ctx, http.MethodGet, "/products/get-params", nil, &opts); err != nil {
		return nil, err
	}
	return &opts, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	reqID := uuid.New().String()
	ctx = logger.WithRequestID(ctx, reqID)

	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", reqID)
	if token, ok := c.kv.Get(session.AccessTokenKey); ok && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	result, err := c.breaker.Execute(func() (any, error) {
		res, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		defer res.Body.Close()

		if res.StatusCode == http.StatusNotFound {
			return nil, ErrProductNotFound
		}
		if res.StatusCode < 200 || res.StatusCode >= 300 {
			text, _ := io.ReadAll(res.Body)
			return nil, fmt.Errorf("%w: %d %s", ErrRequestFailed, res.StatusCode, string(text))
		}

		return io.ReadAll(res.Body)
	})
	if err != nil {
		logger.FromCtx(ctx).Warn("catalog call failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return err
	}

	return json.Unmarshal(result.([]byte), out)
}
