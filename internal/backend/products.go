package backend

import (
	"context"
	"net/http"

	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/catalog"
)

// FetchProducts returns the full catalog snapshot.
func (c *Client) FetchProducts(ctx context.Context) ([]catalog.Product, error) {
	var out []catalog.Product
	if err := c.do(ctx, "fetch_products", http.MethodGet, "/api/products/products/", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []catalog.Product{}
	}
	return out, nil
}

func (c *Client) FetchProduct(ctx context.Context, id int64) (catalog.Product, error) {
	var out catalog.Product
	err := c.do(ctx, "fetch_product", http.MethodGet, "/api/products/"+idPath(id)+"/", nil, &out)
	return out, err
}
