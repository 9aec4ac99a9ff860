package presentation

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/playops/orderdesk/internal/apiclient"
	"github.com/playops/orderdesk/internal/logger"
	"github.com/playops/orderdesk/internal/screen"
)

// Session is one browser's console state: its own orders and stocks screens.
// Screens are never shared across sessions.
type Session struct {
	ID     string
	Orders *screen.OrdersScreen
	Stocks *screen.StocksScreen

	lastSeen time.Time
}

// Sessions holds live console sessions keyed by cookie id, expiring idle
// ones after the configured TTL.
type Sessions struct {
	api *apiclient.Client
	ttl time.Duration

	mu   sync.Mutex
	byID map[string]*Session
}

func NewSessions(api *apiclient.Client, ttl time.Duration) *Sessions {
	return &Sessions{
		api:  api,
		ttl:  ttl,
		byID: make(map[string]*Session),
	}
}

// Get returns the session for id and marks it used, or nil when unknown or
// already expired.
func (s *Sessions) Get(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.byID[id]
	if !ok {
		return nil
	}
	if time.Since(sess.lastSeen) > s.ttl {
		delete(s.byID, id)
		return nil
	}
	sess.lastSeen = time.Now()
	return sess
}

func (s *Sessions) Create() *Session {
	sess := &Session{
		ID:       uuid.NewString(),
		Orders:   screen.NewOrdersScreen(s.api),
		Stocks:   screen.NewStocksScreen(s.api),
		lastSeen: time.Now(),
	}
	s.mu.Lock()
	s.byID[sess.ID] = sess
	s.mu.Unlock()
	return sess
}

// StartSweeper purges expired sessions in the background until ctx is done.
func (s *Sessions) StartSweeper(ctx context.Context) {
	go func() {
		t := time.NewTicker(s.ttl / 2)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				s.sweep()
			}
		}
	}()
}

func (s *Sessions) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sess := range s.byID {
		if time.Since(sess.lastSeen) > s.ttl {
			delete(s.byID, id)
		}
	}
	logger.Info("session sweep done", "live", len(s.byID))
}
