package shopify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAdminAPI answers the product nodes query with one resolvable product
// per id in `known`, a null node for anything else.
func stubAdminAPI(t *testing.T, known map[string]bool, gotIDs *[]string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-token", r.Header.Get("X-Shopify-Access-Token"))

		var req struct {
			Variables struct {
				IDs []string `json:"ids"`
			} `json:"variables"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		*gotIDs = req.Variables.IDs

		nodes := make([]interface{}, 0, len(req.Variables.IDs))
		for _, id := range req.Variables.IDs {
			if !known[id] {
				nodes = append(nodes, nil)
				continue
			}
			nodes = append(nodes, map[string]interface{}{
				"id":     id,
				"title":  "Product " + id,
				"handle": "handle-" + id,
				"featuredImage": map[string]string{
					"url": "https://cdn.shopify.com/" + id + ".jpg",
				},
				"variants": map[string]interface{}{
					"edges": []interface{}{
						map[string]interface{}{
							"node": map[string]string{"price": "19.99"},
						},
					},
				},
			})
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"data": map[string]interface{}{"nodes": nodes},
		})
	}))
}

func TestLookupProducts_BatchesAndDedups(t *testing.T) {
	var gotIDs []string
	server := stubAdminAPI(t, map[string]bool{
		"gid://shopify/Product/1": true,
		"gid://shopify/Product/2": true,
	}, &gotIDs)
	defer server.Close()

	client := NewClientWithEndpoint(server.URL, "test-token")
	products, err := client.LookupProducts(context.Background(), []string{
		"gid://shopify/Product/1",
		"gid://shopify/Product/2",
		"gid://shopify/Product/1", // duplicate
		"",                        // empty ids are dropped
	})
	require.NoError(t, err)

	// One batched call, deduplicated ids
	assert.Equal(t, []string{"gid://shopify/Product/1", "gid://shopify/Product/2"}, gotIDs)

	require.Len(t, products, 2)
	p := products["gid://shopify/Product/1"]
	assert.Equal(t, "Product gid://shopify/Product/1", p.Title)
	assert.Equal(t, "handle-gid://shopify/Product/1", p.Handle)
	assert.Equal(t, "https://cdn.shopify.com/gid://shopify/Product/1.jpg", p.ImageURL)
	assert.Equal(t, "19.99", p.Price)
}

func TestLookupProducts_SkipsUnresolvableIDs(t *testing.T) {
	var gotIDs []string
	server := stubAdminAPI(t, map[string]bool{
		"gid://shopify/Product/1": true,
	}, &gotIDs)
	defer server.Close()

	client := NewClientWithEndpoint(server.URL, "test-token")
	products, err := client.LookupProducts(context.Background(), []string{
		"gid://shopify/Product/1",
		"gid://shopify/Product/999", // deleted on the platform side
	})
	require.NoError(t, err)

	// A deleted product is simply absent, not an error
	assert.Len(t, products, 1)
	_, found := products["gid://shopify/Product/999"]
	assert.False(t, found)
}

func TestLookupProducts_EmptyInput(t *testing.T) {
	client := NewClientWithEndpoint("http://127.0.0.1:1", "test-token")
	products, err := client.LookupProducts(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestQuery_GraphQLErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"errors":[{"message":"Invalid API key or access token"}]}`)
	}))
	defer server.Close()

	client := NewClientWithEndpoint(server.URL, "bad-token")
	_, err := client.LookupProducts(context.Background(), []string{"gid://shopify/Product/1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid API key or access token")
}

func TestQuery_HTTPFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClientWithEndpoint(server.URL, "test-token")
	_, err := client.LookupProducts(context.Background(), []string{"gid://shopify/Product/1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
