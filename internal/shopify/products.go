package shopify

import (
	"context"
)

// Product is the display metadata of a tagged product. Fetched live on
// every page; only the handle is ever persisted (denormalized on the tag).
type Product struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Handle   string `json:"handle"`
	ImageURL string `json:"imageUrl"`
	Price    string `json:"price"` // price of the first variant
}

const productNodesQuery = `query getProducts($ids: [ID!]!) {
  nodes(ids: $ids) {
    ... on Product {
      id
      title
      handle
      featuredImage {
        url
      }
      variants(first: 1) {
        edges {
          node {
            price
          }
        }
      }
    }
  }
}`

type productNode struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Handle        string `json:"handle"`
	FeaturedImage *struct {
		URL string `json:"url"`
	} `json:"featuredImage"`
	Variants struct {
		Edges []struct {
			Node struct {
				Price string `json:"price"`
			} `json:"node"`
		} `json:"edges"`
	} `json:"variants"`
}

// LookupProducts resolves product ids to display metadata in a single
// batched call. Ids are deduplicated first. Ids the platform cannot
// resolve are simply absent from the result; callers treat a missing
// entry as "unavailable", never as an error.
func (c *Client) LookupProducts(ctx context.Context, ids []string) (map[string]Product, error) {
	products := make(map[string]Product)
	if len(ids) == 0 {
		return products, nil
	}

	seen := make(map[string]bool, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		unique = append(unique, id)
	}

	var data struct {
		Nodes []*productNode `json:"nodes"`
	}
	err := c.Query(ctx, productNodesQuery, map[string]interface{}{"ids": unique}, &data)
	if err != nil {
		return nil, err
	}

	for _, node := range data.Nodes {
		// Unresolvable ids come back as null nodes
		if node == nil || node.ID == "" {
			continue
		}
		p := Product{
			ID:     node.ID,
			Title:  node.Title,
			Handle: node.Handle,
		}
		if node.FeaturedImage != nil {
			p.ImageURL = node.FeaturedImage.URL
		}
		if len(node.Variants.Edges) > 0 {
			p.Price = node.Variants.Edges[0].Node.Price
		}
		products[p.ID] = p
	}

	return products, nil
}
