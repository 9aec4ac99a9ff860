package screen

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playops/orderdesk/internal/apiclient"
	"github.com/playops/orderdesk/internal/domain"
)

// backendStub fakes the REST backend behind the console.
type backendStub struct {
	mu            sync.Mutex
	orderSearches []url.Values
	stockSearches []url.Values
	confirms      int
	deletes       int

	orderPage   domain.Page[domain.Order]
	stockPage   domain.Page[domain.Stock]
	customers   []domain.Customer
	confirmFail *struct {
		status int
		body   string
	}
}

func (b *backendStub) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		switch {
		case r.URL.Path == "/api/v1/orders/search":
			b.orderSearches = append(b.orderSearches, r.URL.Query())
			json.NewEncoder(w).Encode(b.orderPage)
		case r.URL.Path == "/api/v1/stocks/search":
			b.stockSearches = append(b.stockSearches, r.URL.Query())
			json.NewEncoder(w).Encode(b.stockPage)
		case r.URL.Path == "/api/v1/customers/search":
			json.NewEncoder(w).Encode(domain.Page[domain.Customer]{Records: b.customers, Pages: 1})
		case r.URL.Path == "/api/v1/products/search":
			json.NewEncoder(w).Encode(domain.Page[domain.Product]{Pages: 1})
		case strings.HasSuffix(r.URL.Path, "/confirm"):
			b.confirms++
			if b.confirmFail != nil {
				w.WriteHeader(b.confirmFail.status)
				w.Write([]byte(b.confirmFail.body))
			}
		case r.Method == http.MethodDelete:
			b.deletes++
		}
	})
}

func (b *backendStub) orderSearchCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.orderSearches)
}

func (b *backendStub) lastOrderSearch() url.Values {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.orderSearches[len(b.orderSearches)-1]
}

func newOrdersFixture(t *testing.T, b *backendStub) *OrdersScreen {
	t.Helper()
	srv := httptest.NewServer(b.handler())
	t.Cleanup(srv.Close)
	return NewOrdersScreen(apiclient.New(srv.URL))
}

func TestOrdersActivateLoadsListAndCustomers(t *testing.T) {
	b := &backendStub{
		orderPage: domain.Page[domain.Order]{
			Records: []domain.Order{{OrderID: "o1", CustomerID: "c1", Status: domain.OrderProvisional}},
			Pages:   2,
		},
		customers: []domain.Customer{{CustomerID: "c1", CustomerNumber: "C001", CustomerName: "Acme"}},
	}
	s := newOrdersFixture(t, b)

	s.Activate(context.Background())

	st := s.State()
	assert.Len(t, st.Rows, 1)
	assert.Equal(t, 1, st.Page)
	assert.Equal(t, 2, st.TotalPages)
	assert.Empty(t, st.Error)
	assert.Equal(t, "C001 Acme", s.Customers()[0].Display())

	// activation is one-shot
	s.Activate(context.Background())
	assert.Equal(t, 1, b.orderSearchCount())
}

func TestConfirmFailureShowsMessageWithoutRefetch(t *testing.T) {
	b := &backendStub{
		orderPage: domain.Page[domain.Order]{
			Records: []domain.Order{{OrderID: "o1"}},
			Pages:   1,
		},
		confirmFail: &struct {
			status int
			body   string
		}{status: http.StatusNotFound, body: `{"message":"order not found"}`},
	}
	s := newOrdersFixture(t, b)
	s.Activate(context.Background())
	require.Equal(t, 1, b.orderSearchCount())

	s.Confirm(context.Background(), "o1")

	st := s.State()
	assert.Equal(t, "order not found", st.Error)
	assert.Len(t, st.Rows, 1)
	assert.Equal(t, 1, b.orderSearchCount(), "failed mutation must not refetch")
}

func TestConfirmSuccessRefetchesCurrentPage(t *testing.T) {
	b := &backendStub{
		orderPage: domain.Page[domain.Order]{
			Records: []domain.Order{{OrderID: "o1"}},
			Pages:   3,
		},
	}
	s := newOrdersFixture(t, b)
	s.Activate(context.Background())
	s.Search(context.Background(), domain.OrderCriteria{CustomerID: "c7"})
	s.Next(context.Background())
	require.Equal(t, "2", b.lastOrderSearch().Get("pageNum"))

	s.Confirm(context.Background(), "o1")

	b.mu.Lock()
	confirms := b.confirms
	b.mu.Unlock()
	assert.Equal(t, 1, confirms)

	q := b.lastOrderSearch()
	assert.Equal(t, "2", q.Get("pageNum"), "page position preserved across mutation")
	assert.Equal(t, "c7", q.Get("customerId"), "criteria preserved across mutation")
	assert.Equal(t, 2, s.State().Page)
}

func TestOrdersCriteriaReachTheWire(t *testing.T) {
	b := &backendStub{orderPage: domain.Page[domain.Order]{Pages: 1}}
	s := newOrdersFixture(t, b)

	s.Search(context.Background(), domain.OrderCriteria{
		CustomerID:    "c1",
		OrderDateFrom: "2026-01-01",
		Status:        "1",
	})

	q := b.lastOrderSearch()
	assert.Equal(t, "c1", q.Get("customerId"))
	assert.Equal(t, "2026-01-01", q.Get("orderDateFrom"))
	assert.Equal(t, "1", q.Get("status"))
	assert.False(t, q.Has("orderDateTo"))
}

func TestStocksScreenDefaults(t *testing.T) {
	b := &backendStub{stockPage: domain.Page[domain.Stock]{Pages: 1}}
	srv := httptest.NewServer(b.handler())
	t.Cleanup(srv.Close)
	s := NewStocksScreen(apiclient.New(srv.URL))

	s.Search(context.Background(), domain.StockCriteria{ProductID: "p111", QuantityMin: "5"})

	b.mu.Lock()
	q := b.stockSearches[len(b.stockSearches)-1]
	b.mu.Unlock()
	assert.Equal(t, "p111", q.Get("productId"))
	assert.Equal(t, "5", q.Get("quantityMin"))
	assert.Equal(t, "false", q.Get("deleteFlag"))
	assert.Equal(t, "updateDate", q.Get("sortBy"))
	assert.False(t, q.Has("quantityMax"))
}

func TestReferenceFailureDoesNotBlockList(t *testing.T) {
	var orderSearches int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/orders/search":
			orderSearches++
			json.NewEncoder(w).Encode(domain.Page[domain.Order]{
				Records: []domain.Order{{OrderID: "o1"}},
				Pages:   1,
			})
		case "/api/v1/customers/search":
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message":"customers unavailable"}`))
		}
	}))
	t.Cleanup(srv.Close)
	s := NewOrdersScreen(apiclient.New(srv.URL))

	s.Activate(context.Background())

	st := s.State()
	assert.Equal(t, 1, orderSearches)
	assert.Len(t, st.Rows, 1, "list load proceeds despite reference failure")
	assert.Equal(t, "customers unavailable", st.Error)
	assert.Empty(t, s.Customers())
}
