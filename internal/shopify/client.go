package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is an authenticated Admin GraphQL transport for one shop. It only
// moves queries and raw responses; query construction and result mapping
// belong to the callers (see products.go).
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
}

// Gateway creates per-shop clients from app-level credentials. The admin
// token and API version are configuration; the shop arrives per request
// from the session middleware.
type Gateway struct {
	adminToken string
	apiVersion string
	httpClient *http.Client
}

func NewGateway(adminToken, apiVersion string) *Gateway {
	return &Gateway{
		adminToken: adminToken,
		apiVersion: apiVersion,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// ForShop returns a transport bound to the shop's Admin GraphQL endpoint.
func (g *Gateway) ForShop(shop string) *Client {
	return &Client{
		endpoint:   fmt.Sprintf("https://%s/admin/api/%s/graphql.json", shop, g.apiVersion),
		token:      g.adminToken,
		httpClient: g.httpClient,
	}
}

// NewClientWithEndpoint builds a client against an explicit endpoint.
// Used by tests to point at a stub server.
func NewClientWithEndpoint(endpoint, token string) *Client {
	return &Client{
		endpoint:   endpoint,
		token:      token,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type graphqlError struct {
	Message string `json:"message"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphqlError  `json:"errors"`
}

// Query posts a GraphQL document and unmarshals the data payload into out.
// GraphQL-level errors are returned as a single error; partial data with
// no errors is passed through as-is.
func (c *Client) Query(ctx context.Context, query string, variables map[string]interface{}, out interface{}) error {
	body, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("failed to encode graphql request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build graphql request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", c.token)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("graphql request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return fmt.Errorf("graphql request returned status %d: %s", res.StatusCode, string(snippet))
	}

	var envelope graphqlResponse
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode graphql response: %w", err)
	}

	if len(envelope.Errors) > 0 {
		return fmt.Errorf("graphql error: %s", envelope.Errors[0].Message)
	}

	if out != nil && envelope.Data != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("failed to decode graphql data: %w", err)
		}
	}

	return nil
}
