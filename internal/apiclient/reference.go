package apiclient

import (
	"context"

	"github.com/playops/orderdesk/internal/domain"
)

const (
	customersBase = "/api/v1/customers"
	productsBase  = "/api/v1/products"
)

type CustomerSearchParams struct {
	CustomerNumber string
	CustomerName   string
	PageNum        int
	PageSize       int
	SortBy         string
	SortOrder      string
}

type ProductSearchParams struct {
	ProductNumber string
	ProductName   string
	PageNum       int
	PageSize      int
	SortBy        string
	SortOrder     string
}

// SearchCustomers lists customers for the filter dropdowns. Soft-deleted
// customers are always excluded.
func (c *Client) SearchCustomers(ctx context.Context, p CustomerSearchParams) (domain.Page[domain.Customer], error) {
	q := Query{
		"customerNumber": p.CustomerNumber,
		"customerName":   p.CustomerName,
		"deleteFlag":     Bool(false),
		"pageNum":        Int(defaultInt(p.PageNum, 1)),
		"pageSize":       Int(defaultInt(p.PageSize, 100)),
		"sortBy":         defaultStr(p.SortBy, "updateDate"),
		"sortOrder":      defaultStr(p.SortOrder, "desc"),
	}

	var page domain.Page[domain.Customer]
	err := c.Get(ctx, customersBase+"/search", q, &page)
	return page, err
}

// SearchProducts lists products for the stocks screen dropdown.
func (c *Client) SearchProducts(ctx context.Context, p ProductSearchParams) (domain.Page[domain.Product], error) {
	q := Query{
		"productNumber": p.ProductNumber,
		"productName":   p.ProductName,
		"deleteFlag":    Bool(false),
		"pageNum":       Int(defaultInt(p.PageNum, 1)),
		"pageSize":      Int(defaultInt(p.PageSize, 100)),
		"sortBy":        defaultStr(p.SortBy, "updateDate"),
		"sortOrder":     defaultStr(p.SortOrder, "desc"),
	}

	var page domain.Page[domain.Product]
	err := c.Get(ctx, productsBase+"/search", q, &page)
	return page, err
}
