package ioproduct

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/safebite/safebite/pkg/product"
)

// offResponse is the OpenFoodFacts v0 product envelope. Status 1 means
// found; anything else means the barcode is unknown.
type offResponse struct {
	Status  int             `json:"status"`
	Product product.Product `json:"product"`
}

type offClient struct {
	client  *resty.Client
	baseURL string
}

func newOFFClient(client *resty.Client, baseURL string) *offClient {
	return &offClient{client: client, baseURL: baseURL}
}

func (c *offClient) lookup(ctx context.Context, barcode string) (*product.Product, error) {
	var out offResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&out).
		Get(fmt.Sprintf("%s/product/%s.json", c.baseURL, barcode))
	if err != nil {
		return nil, fmt.Errorf("openfoodfacts request failed: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("openfoodfacts returned status %d", resp.StatusCode())
	}
	if out.Status != 1 {
		return nil, product.ErrNotFound
	}

	p := out.Product
	if p.Barcode == "" {
		p.Barcode = barcode
	}
	return &p, nil
}
