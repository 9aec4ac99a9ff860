package screen

import (
	"context"
	"sync"

	"github.com/playops/orderdesk/internal/apiclient"
	"github.com/playops/orderdesk/internal/domain"
)

// StocksScreen drives the inventory screen: a paged stock list, the product
// reference dropdown, and the register/update/delete mutations.
type StocksScreen struct {
	api  *apiclient.Client
	list *List[domain.Stock, domain.StockCriteria]

	mu        sync.Mutex
	products  []domain.Product
	activated bool
}

func NewStocksScreen(api *apiclient.Client) *StocksScreen {
	s := &StocksScreen{api: api}
	s.list = NewList(s.fetchPage, "failed to load stocks")
	return s
}

func (s *StocksScreen) fetchPage(ctx context.Context, pageNum int, c domain.StockCriteria) (domain.Page[domain.Stock], error) {
	return s.api.SearchStocks(ctx, apiclient.StockSearchParams{
		ProductID:   c.ProductID,
		QuantityMin: c.QuantityMin,
		QuantityMax: c.QuantityMax,
		Status:      c.Status,
		PageNum:     pageNum,
		PageSize:    10,
		SortBy:      "updateDate",
		SortOrder:   "desc",
	})
}

func (s *StocksScreen) Activate(ctx context.Context) {
	s.mu.Lock()
	if s.activated {
		s.mu.Unlock()
		return
	}
	s.activated = true
	s.mu.Unlock()

	s.list.InitialLoad(ctx)

	res, err := s.api.SearchProducts(ctx, apiclient.ProductSearchParams{PageSize: 500})
	if err != nil {
		s.list.SetError(ErrorMessage(err, "failed to load products"))
		return
	}
	s.mu.Lock()
	s.products = res.Records
	s.mu.Unlock()
}

func (s *StocksScreen) Search(ctx context.Context, c domain.StockCriteria) {
	s.list.Search(ctx, c)
}

func (s *StocksScreen) Prev(ctx context.Context) { s.list.Prev(ctx) }
func (s *StocksScreen) Next(ctx context.Context) { s.list.Next(ctx) }

// Create registers a new stock row; the backend assigns the id. The current
// page is refetched on success so the new row can appear in place.
func (s *StocksScreen) Create(ctx context.Context, in apiclient.CreateStockInput) {
	if err := s.api.CreateStock(ctx, in); err != nil {
		s.list.SetError(ErrorMessage(err, "failed to create stock"))
		return
	}
	s.list.Refresh(ctx)
}

func (s *StocksScreen) Update(ctx context.Context, stock domain.Stock) {
	if err := s.api.UpdateStock(ctx, stock); err != nil {
		s.list.SetError(ErrorMessage(err, "failed to update stock"))
		return
	}
	s.list.Refresh(ctx)
}

// Delete soft-deletes a stock row. Callers must have collected an explicit
// confirmation from the user before reaching this.
func (s *StocksScreen) Delete(ctx context.Context, stockID string) {
	if err := s.api.DeleteStock(ctx, stockID); err != nil {
		s.list.SetError(ErrorMessage(err, "failed to delete stock"))
		return
	}
	s.list.Refresh(ctx)
}

func (s *StocksScreen) State() State[domain.Stock] {
	return s.list.State()
}

func (s *StocksScreen) Products() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}
