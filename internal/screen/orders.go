package screen

import (
	"context"
	"sync"

	"github.com/playops/orderdesk/internal/apiclient"
	"github.com/playops/orderdesk/internal/domain"
)

// OrdersScreen drives the order management screen: a paged order list plus a
// read-only customer reference list for the filter dropdown.
type OrdersScreen struct {
	api  *apiclient.Client
	list *List[domain.Order, domain.OrderCriteria]

	mu        sync.Mutex
	customers []domain.Customer
	activated bool
}

func NewOrdersScreen(api *apiclient.Client) *OrdersScreen {
	s := &OrdersScreen{api: api}
	s.list = NewList(s.fetchPage, "failed to load orders")
	return s
}

func (s *OrdersScreen) fetchPage(ctx context.Context, pageNum int, c domain.OrderCriteria) (domain.Page[domain.Order], error) {
	return s.api.SearchOrders(ctx, apiclient.OrderSearchParams{
		CustomerID:    c.CustomerID,
		OrderDateFrom: c.OrderDateFrom,
		OrderDateTo:   c.OrderDateTo,
		Status:        c.Status,
		PageNum:       pageNum,
		PageSize:      10,
		SortBy:        "orderDate",
		SortOrder:     "desc",
	})
}

// Activate runs the screen's initial load once: page 1 with empty criteria,
// then the customer reference list. A reference failure surfaces as the
// screen error but does not block the order list.
func (s *OrdersScreen) Activate(ctx context.Context) {
	s.mu.Lock()
	if s.activated {
		s.mu.Unlock()
		return
	}
	s.activated = true
	s.mu.Unlock()

	s.list.InitialLoad(ctx)

	res, err := s.api.SearchCustomers(ctx, apiclient.CustomerSearchParams{PageSize: 500})
	if err != nil {
		s.list.SetError(ErrorMessage(err, "failed to load customers"))
		return
	}
	s.mu.Lock()
	s.customers = res.Records
	s.mu.Unlock()
}

func (s *OrdersScreen) Search(ctx context.Context, c domain.OrderCriteria) {
	s.list.Search(ctx, c)
}

func (s *OrdersScreen) Prev(ctx context.Context) { s.list.Prev(ctx) }
func (s *OrdersScreen) Next(ctx context.Context) { s.list.Next(ctx) }

// Confirm confirms a provisional order, then refetches the current page so
// the row shows its new status. On failure the rows and page stay put.
func (s *OrdersScreen) Confirm(ctx context.Context, orderID string) {
	if err := s.api.ConfirmOrder(ctx, orderID); err != nil {
		s.list.SetError(ErrorMessage(err, "failed to confirm order"))
		return
	}
	s.list.Refresh(ctx)
}

// Cancel cancels an order, with the same refresh contract as Confirm.
func (s *OrdersScreen) Cancel(ctx context.Context, orderID string) {
	if err := s.api.CancelOrder(ctx, orderID); err != nil {
		s.list.SetError(ErrorMessage(err, "failed to cancel order"))
		return
	}
	s.list.Refresh(ctx)
}

func (s *OrdersScreen) State() State[domain.Order] {
	return s.list.State()
}

// Customers returns the reference list loaded on activation.
func (s *OrdersScreen) Customers() []domain.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Customer, len(s.customers))
	copy(out, s.customers)
	return out
}
