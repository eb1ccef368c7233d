package sessions

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/cart"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/catalog"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/checkout"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/orders"
)

var ErrNoSessionID = errors.New("session id required")

type Options struct {
	// Repo persists cart snapshots across restarts. Nil keeps carts in memory only.
	Repo cart.Repo
	// Idle is how long an untouched session survives a Sweep.
	Idle        time.Duration
	FlowOptions []checkout.Option
	Staff       orders.StaffAPI
	Logger      *slog.Logger
}

// Registry owns every live session.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session

	repo     cart.Repo
	idle     time.Duration
	flowOpts []checkout.Option
	staff    orders.StaffAPI
	log      *slog.Logger
	now      func() time.Time
}

func NewRegistry(o Options) *Registry {
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.Idle <= 0 {
		o.Idle = 24 * time.Hour
	}
	return &Registry{
		sessions: make(map[string]*Session),
		repo:     o.Repo,
		idle:     o.Idle,
		flowOpts: o.FlowOptions,
		staff:    o.Staff,
		log:      o.Logger,
		now:      time.Now,
	}
}

// Open returns the session for id, creating it when absent. A new session
// restores its cart from the repo when a snapshot exists.
func (r *Registry) Open(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, ErrNoSessionID
	}

	r.mu.Lock()
	s, ok := r.sessions[id]
	if !ok {
		s = r.newSession(id)
		r.sessions[id] = s
	}
	r.mu.Unlock()

	s.touch(r.now())
	if ok || r.repo == nil {
		return s, nil
	}

	snap, err := r.repo.Load(ctx, id)
	switch {
	case errors.Is(err, cart.ErrSnapshotNotFound):
	case err != nil:
		r.log.Warn("cart_restore_failed", "session_id", id, "err", err)
	default:
		s.Cart.Restore(snap)
	}
	return s, nil
}

func (r *Registry) newSession(id string) *Session {
	s := &Session{
		ID:      id,
		Cart:    cart.NewStore(),
		Catalog: catalog.NewView(),
	}
	opts := make([]checkout.Option, 0, len(r.flowOpts)+2)
	opts = append(opts, r.flowOpts...)
	opts = append(opts, checkout.WithNotifier(s), checkout.WithLogger(r.log.With("session_id", id)))
	s.Checkout = checkout.NewFlow(s.Cart, opts...)
	return s
}

// Save persists the session's cart. An empty cart removes the snapshot.
func (r *Registry) Save(ctx context.Context, s *Session) error {
	if r.repo == nil {
		return nil
	}
	if s.Cart.IsEmpty() {
		return r.repo.Delete(ctx, s.ID)
	}
	return r.repo.Save(ctx, s.ID, s.Cart.Snapshot())
}

// Board is the staff order board bound to the session.
func (r *Registry) Board(s *Session) *orders.Board {
	return s.Board(r.staff, func(api orders.StaffAPI) *orders.Board {
		return orders.NewBoard(api, r.log.With("session_id", s.ID))
	})
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep drops sessions idle longer than the configured window. Persisted
// carts stay in the repo and come back on the next Open.
func (r *Registry) Sweep() int {
	now := r.now()
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, s := range r.sessions {
		if s.idleSince(now) > r.idle {
			delete(r.sessions, id)
			n++
		}
	}
	return n
}

// Run sweeps on every tick until ctx is done.
func (r *Registry) Run(ctx context.Context, every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := r.Sweep(); n > 0 {
				r.log.Info("sessions_swept", "count", n, "live", r.Len())
			}
		}
	}
}
