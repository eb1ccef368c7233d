package sessions

import (
	"sync"
	"time"

	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/cart"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/catalog"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/checkout"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/orders"
	"github.com/Ainkaran01/Thusha-Shop-sub001/pkg/view"
)

const maxNotices = 20

// Session is the per-browser state: one cart, one checkout wizard and one
// catalog view. Board is only populated for staff sessions.
type Session struct {
	ID       string
	Cart     *cart.Store
	Checkout *checkout.Flow
	Catalog  *catalog.View

	mu       sync.Mutex
	board    *orders.Board
	notices  []view.Notice
	lastSeen time.Time
}

// Notify queues a notice for the next Drain. Oldest notices are dropped
// once the queue is full.
func (s *Session) Notify(n view.Notice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notices = append(s.notices, n)
	if len(s.notices) > maxNotices {
		s.notices = s.notices[len(s.notices)-maxNotices:]
	}
}

func (s *Session) Drain() []view.Notice {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.notices
	s.notices = nil
	if out == nil {
		out = []view.Notice{}
	}
	return out
}

// Board returns the session's staff order board, creating it on first use.
func (s *Session) Board(api orders.StaffAPI, newBoard func(orders.StaffAPI) *orders.Board) *orders.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.board == nil {
		s.board = newBoard(api)
	}
	return s.board
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

var _ checkout.Notifier = (*Session)(nil)
