// Package screen holds the per-screen list controllers: search criteria,
// current page, loaded rows, loading and error flags, and the fetch
// sequencing between them.
package screen

import (
	"context"
	"errors"
	"sync"

	"github.com/playops/orderdesk/internal/apiclient"
	"github.com/playops/orderdesk/internal/domain"
)

// FetchFunc loads one page of rows for the given criteria.
type FetchFunc[R, C any] func(ctx context.Context, pageNum int, crit C) (domain.Page[R], error)

// List is the shared list-screen state machine. criteria always holds the
// last-submitted criteria; page navigation and post-mutation refreshes reuse
// it rather than any in-progress draft.
type List[R, C any] struct {
	fetch    FetchFunc[R, C]
	fallback string

	mu         sync.Mutex
	criteria   C
	page       int
	totalPages int
	rows       []R
	loading    bool
	errMsg     string
	seq        uint64
}

// State is a render-ready copy of the list state.
type State[R any] struct {
	Rows       []R
	Page       int
	TotalPages int
	Loading    bool
	Error      string
}

func NewList[R, C any](fetch FetchFunc[R, C], fallback string) *List[R, C] {
	return &List[R, C]{
		fetch:      fetch,
		fallback:   fallback,
		page:       1,
		totalPages: 1,
		rows:       []R{},
	}
}

// InitialLoad fetches page 1 with empty criteria.
func (l *List[R, C]) InitialLoad(ctx context.Context) {
	var zero C
	l.load(ctx, 1, zero)
}

// Search fetches page 1 with the submitted criteria, resetting the page
// position whatever it was.
func (l *List[R, C]) Search(ctx context.Context, crit C) {
	l.load(ctx, 1, crit)
}

// Prev fetches the previous page with the last-submitted criteria. No-op on
// the first page.
func (l *List[R, C]) Prev(ctx context.Context) {
	l.mu.Lock()
	if l.page <= 1 {
		l.mu.Unlock()
		return
	}
	pageNum, crit := l.page-1, l.criteria
	l.mu.Unlock()
	l.load(ctx, pageNum, crit)
}

// Next fetches the following page with the last-submitted criteria. No-op on
// the last page.
func (l *List[R, C]) Next(ctx context.Context) {
	l.mu.Lock()
	if l.page >= l.totalPages {
		l.mu.Unlock()
		return
	}
	pageNum, crit := l.page+1, l.criteria
	l.mu.Unlock()
	l.load(ctx, pageNum, crit)
}

// Refresh refetches the current page with the last-submitted criteria, used
// after a row mutation so the list reflects it in place.
func (l *List[R, C]) Refresh(ctx context.Context) {
	l.mu.Lock()
	pageNum, crit := l.page, l.criteria
	l.mu.Unlock()
	l.load(ctx, pageNum, crit)
}

// SetError surfaces a failure that happened outside a list fetch (reference
// list loads, mutations). Rows and page position stay as they are.
func (l *List[R, C]) SetError(msg string) {
	l.mu.Lock()
	l.errMsg = msg
	l.mu.Unlock()
}

func (l *List[R, C]) State() State[R] {
	l.mu.Lock()
	defer l.mu.Unlock()
	rows := make([]R, len(l.rows))
	copy(rows, l.rows)
	return State[R]{
		Rows:       rows,
		Page:       l.page,
		TotalPages: l.totalPages,
		Loading:    l.loading,
		Error:      l.errMsg,
	}
}

func (l *List[R, C]) load(ctx context.Context, pageNum int, crit C) {
	l.mu.Lock()
	l.seq++
	id := l.seq
	l.loading = true
	l.errMsg = ""
	l.mu.Unlock()

	page, err := l.fetch(ctx, pageNum, crit)

	l.mu.Lock()
	defer l.mu.Unlock()
	if id != l.seq {
		// Superseded by a newer fetch; that one owns the state now.
		return
	}
	l.loading = false
	if err != nil {
		l.errMsg = ErrorMessage(err, l.fallback)
		return
	}
	rows := page.Records
	if rows == nil {
		rows = []R{}
	}
	l.rows = rows
	l.totalPages = max(1, page.Pages)
	l.page = pageNum
	l.criteria = crit
}

// ErrorMessage picks the user-visible message for a failure: the backend's
// message when the error is an API error, else the per-action fallback.
func ErrorMessage(err error, fallback string) string {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
