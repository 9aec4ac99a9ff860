package apiclient

import (
	"context"

	"github.com/playops/orderdesk/internal/domain"
)

const stocksBase = "/api/v1/stocks"

type StockSearchParams struct {
	ProductID   string
	QuantityMin string
	QuantityMax string
	Status      string
	DeleteFlag  *bool
	PageNum     int
	PageSize    int
	SortBy      string
	SortOrder   string
}

// CreateStockInput is the registration body; the backend assigns the stockId.
type CreateStockInput struct {
	ProductID string             `json:"productId"`
	Quantity  int                `json:"quantity"`
	Status    domain.StockStatus `json:"status"`
}

// SearchStocks runs a paged stock search. Soft-deleted rows are excluded
// unless DeleteFlag is set explicitly.
func (c *Client) SearchStocks(ctx context.Context, p StockSearchParams) (domain.Page[domain.Stock], error) {
	df := false
	if p.DeleteFlag != nil {
		df = *p.DeleteFlag
	}
	q := Query{
		"productId":   p.ProductID,
		"quantityMin": p.QuantityMin,
		"quantityMax": p.QuantityMax,
		"status":      p.Status,
		"deleteFlag":  Bool(df),
		"pageNum":     Int(defaultInt(p.PageNum, 1)),
		"pageSize":    Int(defaultInt(p.PageSize, 10)),
		"sortBy":      defaultStr(p.SortBy, "updateDate"),
		"sortOrder":   defaultStr(p.SortOrder, "desc"),
	}

	var page domain.Page[domain.Stock]
	err := c.Get(ctx, stocksBase+"/search", q, &page)
	return page, err
}

func (c *Client) CreateStock(ctx context.Context, in CreateStockInput) error {
	return c.Post(ctx, stocksBase, in, nil)
}

func (c *Client) UpdateStock(ctx context.Context, s domain.Stock) error {
	return c.Put(ctx, stocksBase+"/updateStock", s, nil)
}

// DeleteStock soft-deletes a stock row; the backend keeps the record flagged.
func (c *Client) DeleteStock(ctx context.Context, stockID string) error {
	return c.Delete(ctx, stocksBase+"/deleteStock/"+stockID, nil)
}
