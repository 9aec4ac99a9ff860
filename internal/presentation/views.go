package presentation

import (
	"github.com/playops/orderdesk/internal/domain"
	"github.com/playops/orderdesk/internal/screen"
)

// OptionView is one dropdown entry built from a reference entity.
type OptionView struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// OrderRowView is a display-ready order row: status resolved to a label and
// the row actions the current status allows.
type OrderRowView struct {
	OrderID     string `json:"orderId"`
	Customer    string `json:"customer"`
	OrderDate   string `json:"orderDate"`
	Status      int    `json:"status"`
	StatusLabel string `json:"statusLabel"`
	CanConfirm  bool   `json:"canConfirm"`
	CanCancel   bool   `json:"canCancel"`
}

type StockRowView struct {
	StockID     string `json:"stockId"`
	Product     string `json:"product"`
	Quantity    int    `json:"quantity"`
	Status      int    `json:"status"`
	StatusLabel string `json:"statusLabel"`
	UpdateDate  string `json:"updateDate"`
}

// OrdersView is the orders screen snapshot sent to the browser shell.
type OrdersView struct {
	Rows       []OrderRowView `json:"rows"`
	Page       int            `json:"page"`
	TotalPages int            `json:"totalPages"`
	Loading    bool           `json:"loading"`
	Error      string         `json:"error"`
	Customers  []OptionView   `json:"customers"`
}

type StocksView struct {
	Rows       []StockRowView `json:"rows"`
	Page       int            `json:"page"`
	TotalPages int            `json:"totalPages"`
	Loading    bool           `json:"loading"`
	Error      string         `json:"error"`
	Products   []OptionView   `json:"products"`
}

func ordersView(sc *screen.OrdersScreen) OrdersView {
	st := sc.State()
	customers := sc.Customers()

	byID := make(map[string]domain.Customer, len(customers))
	opts := make([]OptionView, 0, len(customers))
	for _, c := range customers {
		byID[c.CustomerID] = c
		opts = append(opts, OptionView{Value: c.CustomerID, Label: c.Display()})
	}

	rows := make([]OrderRowView, 0, len(st.Rows))
	for _, o := range st.Rows {
		display := o.CustomerID
		if c, ok := byID[o.CustomerID]; ok {
			display = c.Display()
		}
		rows = append(rows, OrderRowView{
			OrderID:     o.OrderID,
			Customer:    display,
			OrderDate:   o.OrderDate,
			Status:      int(o.Status),
			StatusLabel: o.Status.Label(),
			CanConfirm:  o.Status.CanConfirm(),
			CanCancel:   o.Status.CanCancel(),
		})
	}

	return OrdersView{
		Rows:       rows,
		Page:       st.Page,
		TotalPages: st.TotalPages,
		Loading:    st.Loading,
		Error:      st.Error,
		Customers:  opts,
	}
}

func stocksView(sc *screen.StocksScreen) StocksView {
	st := sc.State()
	products := sc.Products()

	byID := make(map[string]domain.Product, len(products))
	opts := make([]OptionView, 0, len(products))
	for _, p := range products {
		byID[p.ProductID] = p
		opts = append(opts, OptionView{Value: p.ProductID, Label: p.Display()})
	}

	rows := make([]StockRowView, 0, len(st.Rows))
	for _, s := range st.Rows {
		display := s.ProductID
		if p, ok := byID[s.ProductID]; ok {
			display = p.Display()
		}
		rows = append(rows, StockRowView{
			StockID:     s.StockID,
			Product:     display,
			Quantity:    s.Quantity,
			Status:      int(s.Status),
			StatusLabel: s.Status.Label(),
			UpdateDate:  s.UpdateDate,
		})
	}

	return StocksView{
		Rows:       rows,
		Page:       st.Page,
		TotalPages: st.TotalPages,
		Loading:    st.Loading,
		Error:      st.Error,
		Products:   opts,
	}
}
