// Package catalog provides an HTTP client for the catalog service, the
// source of product snapshots and live per-size stock.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/Kev3770/aura-cart-service/internal/domain"
	apperrors "github.com/Kev3770/aura-cart-service/pkg/errors"
)

// HTTPGetter is the interface for executing GET requests against the catalog
// service. Both httpclient.Client and httpclient.CircuitBreakerClient
// satisfy this.
type HTTPGetter interface {
	Get(ctx context.Context, url string) (*http.Response, error)
}

// Client calls the catalog service's read API.
type Client struct {
	baseURL string
	http    HTTPGetter
}

// NewClient creates a catalog client. baseURL is the catalog service root,
// e.g. "http://catalog:8081".
func NewClient(baseURL string, httpClient HTTPGetter) *Client {
	return &Client{
		baseURL: baseURL,
		http:    httpClient,
	}
}

type productResponse struct {
	Data *domain.Product `json:"data"`
}

// ProductByID fetches a product by its ID.
func (c *Client) ProductByID(ctx context.Context, id string) (*domain.Product, error) {
	return c.fetch(ctx, fmt.Sprintf("%s/api/v1/products/%s", c.baseURL, url.PathEscape(id)), id)
}

// ProductBySlug fetches a product by its URL slug.
func (c *Client) ProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	return c.fetch(ctx, fmt.Sprintf("%s/api/v1/products/slug/%s", c.baseURL, url.PathEscape(slug)), slug)
}

func (c *Client) fetch(ctx context.Context, fullURL, ref string) (*domain.Product, error) {
	resp, err := c.http.Get(ctx, fullURL)
	if err != nil {
		return nil, fmt.Errorf("call catalog service: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return nil, apperrors.NotFound("product", ref)
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		return nil, fmt.Errorf("catalog returned status %d: %s", resp.StatusCode, string(body))
	}

	var pr productResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return nil, fmt.Errorf("decode catalog response: %w", err)
	}
	if pr.Data == nil {
		return nil, fmt.Errorf("catalog response missing product data")
	}
	return pr.Data, nil
}
