package apiclient

import (
	"context"

	"github.com/playops/orderdesk/internal/domain"
)

const ordersBase = "/api/v1/orders"

// OrderSearchParams maps onto GET /api/v1/orders/search. String fields left
// empty are omitted from the query; zero PageNum/PageSize pick the defaults.
type OrderSearchParams struct {
	OrderID       string
	CustomerID    string
	OrderDateFrom string
	OrderDateTo   string
	Status        string
	DeleteFlag    *bool
	PageNum       int
	PageSize      int
	SortBy        string
	SortOrder     string
}

// SearchOrders runs a paged order search, newest orders first by default.
func (c *Client) SearchOrders(ctx context.Context, p OrderSearchParams) (domain.Page[domain.Order], error) {
	q := Query{
		"orderId":       p.OrderID,
		"customerId":    p.CustomerID,
		"orderDateFrom": p.OrderDateFrom,
		"orderDateTo":   p.OrderDateTo,
		"status":        p.Status,
		"pageNum":       Int(defaultInt(p.PageNum, 1)),
		"pageSize":      Int(defaultInt(p.PageSize, 10)),
		"sortBy":        defaultStr(p.SortBy, "orderDate"),
		"sortOrder":     defaultStr(p.SortOrder, "desc"),
	}
	if p.DeleteFlag != nil {
		q["deleteFlag"] = Bool(*p.DeleteFlag)
	}

	var page domain.Page[domain.Order]
	err := c.Get(ctx, ordersBase+"/search", q, &page)
	return page, err
}

// ConfirmOrder moves a provisional order to confirmed.
func (c *Client) ConfirmOrder(ctx context.Context, orderID string) error {
	return c.Put(ctx, ordersBase+"/"+orderID+"/confirm", nil, nil)
}

// CancelOrder cancels an existing order.
func (c *Client) CancelOrder(ctx context.Context, orderID string) error {
	return c.Put(ctx, ordersBase+"/"+orderID+"/cancel", nil, nil)
}
