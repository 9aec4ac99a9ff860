package presentation

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/playops/orderdesk/internal/apiclient"
	"github.com/playops/orderdesk/internal/domain"
	"github.com/playops/orderdesk/internal/presentation/helpers"
)

const sessionCookie = "orderdesk_session"

// ConsoleHandler exposes the screen controllers to the browser shell. Every
// route resolves the caller's session, applies one screen action and answers
// with the screen's fresh snapshot.
type ConsoleHandler struct {
	sessions *Sessions
}

func NewConsoleHandler(sessions *Sessions) *ConsoleHandler {
	return &ConsoleHandler{sessions: sessions}
}

func (h *ConsoleHandler) Register(r chi.Router) {
	r.Route("/screens", func(r chi.Router) {
		r.Get("/orders", h.GetOrders)
		r.Post("/orders/search", h.SearchOrders)
		r.Post("/orders/page/prev", h.OrdersPrev)
		r.Post("/orders/page/next", h.OrdersNext)
		r.Post("/orders/{orderId}/confirm", h.ConfirmOrder)
		r.Post("/orders/{orderId}/cancel", h.CancelOrder)

		r.Get("/stocks", h.GetStocks)
		r.Post("/stocks/search", h.SearchStocks)
		r.Post("/stocks/page/prev", h.StocksPrev)
		r.Post("/stocks/page/next", h.StocksNext)
		r.Post("/stocks", h.CreateStock)
		r.Put("/stocks", h.UpdateStock)
		r.Post("/stocks/{stockId}/delete", h.DeleteStock)
	})
}

// session resolves the caller's session from the cookie, minting a new one
// (and the cookie) when missing or expired.
func (h *ConsoleHandler) session(w http.ResponseWriter, r *http.Request) *Session {
	if c, err := r.Cookie(sessionCookie); err == nil {
		if sess := h.sessions.Get(c.Value); sess != nil {
			return sess
		}
	}
	sess := h.sessions.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sess
}

func (h *ConsoleHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	sess.Orders.Activate(r.Context())
	helpers.WriteJSON(w, http.StatusOK, ordersView(sess.Orders))
}

func (h *ConsoleHandler) SearchOrders(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	var crit domain.OrderCriteria
	if err := helpers.DecodeJSON(r.Body, &crit); err != nil {
		helpers.HttpError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	sess.Orders.Search(r.Context(), crit)
	helpers.WriteJSON(w, http.StatusOK, ordersView(sess.Orders))
}

func (h *ConsoleHandler) OrdersPrev(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	sess.Orders.Prev(r.Context())
	helpers.WriteJSON(w, http.StatusOK, ordersView(sess.Orders))
}

func (h *ConsoleHandler) OrdersNext(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	sess.Orders.Next(r.Context())
	helpers.WriteJSON(w, http.StatusOK, ordersView(sess.Orders))
}

func (h *ConsoleHandler) ConfirmOrder(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	orderID := chi.URLParam(r, "orderId")
	if orderID == "" {
		helpers.HttpError(w, http.StatusBadRequest, "orderId is empty")
		return
	}
	sess.Orders.Confirm(r.Context(), orderID)
	helpers.WriteJSON(w, http.StatusOK, ordersView(sess.Orders))
}

func (h *ConsoleHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	orderID := chi.URLParam(r, "orderId")
	if orderID == "" {
		helpers.HttpError(w, http.StatusBadRequest, "orderId is empty")
		return
	}
	sess.Orders.Cancel(r.Context(), orderID)
	helpers.WriteJSON(w, http.StatusOK, ordersView(sess.Orders))
}

func (h *ConsoleHandler) GetStocks(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	sess.Stocks.Activate(r.Context())
	helpers.WriteJSON(w, http.StatusOK, stocksView(sess.Stocks))
}

func (h *ConsoleHandler) SearchStocks(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	var crit domain.StockCriteria
	if err := helpers.DecodeJSON(r.Body, &crit); err != nil {
		helpers.HttpError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	sess.Stocks.Search(r.Context(), crit)
	helpers.WriteJSON(w, http.StatusOK, stocksView(sess.Stocks))
}

func (h *ConsoleHandler) StocksPrev(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	sess.Stocks.Prev(r.Context())
	helpers.WriteJSON(w, http.StatusOK, stocksView(sess.Stocks))
}

func (h *ConsoleHandler) StocksNext(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	sess.Stocks.Next(r.Context())
	helpers.WriteJSON(w, http.StatusOK, stocksView(sess.Stocks))
}

func (h *ConsoleHandler) CreateStock(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	var in apiclient.CreateStockInput
	if err := helpers.DecodeJSON(r.Body, &in); err != nil {
		helpers.HttpError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	sess.Stocks.Create(r.Context(), in)
	helpers.WriteJSON(w, http.StatusOK, stocksView(sess.Stocks))
}

func (h *ConsoleHandler) UpdateStock(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	var stock domain.Stock
	if err := helpers.DecodeJSON(r.Body, &stock); err != nil {
		helpers.HttpError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	sess.Stocks.Update(r.Context(), stock)
	helpers.WriteJSON(w, http.StatusOK, stocksView(sess.Stocks))
}

type deleteStockRequest struct {
	Confirmed bool `json:"confirmed"`
}

// DeleteStock soft-deletes a stock row. The shell sends confirmed=true only
// after the user accepted the confirmation dialog; without it no request
// goes upstream.
func (h *ConsoleHandler) DeleteStock(w http.ResponseWriter, r *http.Request) {
	sess := h.session(w, r)
	stockID := chi.URLParam(r, "stockId")
	if stockID == "" {
		helpers.HttpError(w, http.StatusBadRequest, "stockId is empty")
		return
	}
	var req deleteStockRequest
	if err := helpers.DecodeJSON(r.Body, &req); err != nil {
		helpers.HttpError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if !req.Confirmed {
		helpers.HttpError(w, http.StatusBadRequest, "delete not confirmed")
		return
	}
	sess.Stocks.Delete(r.Context(), stockID)
	helpers.WriteJSON(w, http.StatusOK, stocksView(sess.Stocks))
}
