package cart

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repo persists cart snapshots per session so a cart survives a restart.
type Repo interface {
	Load(ctx context.Context, sessionID string) (Snapshot, error)
	Save(ctx context.Context, sessionID string, snap Snapshot) error
	Delete(ctx context.Context, sessionID string) error
}

// SessionCart is one session's cart snapshot row.
type SessionCart struct {
	ID        string         `gorm:"type:char(36);primaryKey"`
	SessionID string         `gorm:"type:varchar(64);uniqueIndex;not null"`
	Items     datatypes.JSON `gorm:"type:json;not null"`
	UpdatedAt time.Time
	CreatedAt time.Time
}

func (SessionCart) TableName() string { return "session_carts" }

type GormRepo struct {
	db       *gorm.DB
	attempts int
}

func NewGormRepo(db *gorm.DB) *GormRepo { return &GormRepo{db: db, attempts: 3} }

func (r *GormRepo) Load(ctx context.Context, sessionID string) (Snapshot, error) {
	var row SessionCart
	err := r.db.WithContext(ctx).First(&row, "session_id = ?", sessionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Snapshot{}, ErrSnapshotNotFound
	}
	if err != nil {
		return Snapshot{}, err
	}
	var snap Snapshot
	if err := json.Unmarshal(row.Items, &snap); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

func (r *GormRepo) Save(ctx context.Context, sessionID string, snap Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	now := time.Now()
	row := SessionCart{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Items:     datatypes.JSON(raw),
		CreatedAt: now,
		UpdatedAt: now,
	}
	return withTxRetry(ctx, r.db, r.attempts, func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"items", "updated_at"}),
		}).Create(&row).Error
	})
}

func (r *GormRepo) Delete(ctx context.Context, sessionID string) error {
	return withTxRetry(ctx, r.db, r.attempts, func(tx *gorm.DB) error {
		return tx.Where("session_id = ?", sessionID).Delete(&SessionCart{}).Error
	})
}

// withTxRetry retries fn on deadlock (1213) or lock wait timeout (1205).
func withTxRetry(ctx context.Context, db *gorm.DB, attempts int, fn func(tx *gorm.DB) error) error {
	if attempts < 1 {
		attempts = 1
	}
	var lastErr error
	for i := 0; i < attempts; i++ {
		err := db.WithContext(ctx).Transaction(fn)
		if err == nil {
			return nil
		}
		lastErr = err
		if isRetryableMySQLError(err) && i < attempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(time.Duration(50*(i+1)) * time.Millisecond):
			}
			continue
		}
		return err
	}
	return lastErr
}

func isRetryableMySQLError(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		// 1213: deadlock found; 1205: lock wait timeout
		return me.Number == 1213 || me.Number == 1205
	}
	return false
}

// MemoryRepo keeps snapshots in process; used without a database and in tests.
type MemoryRepo struct {
	mu    sync.RWMutex
	snaps map[string][]byte
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{snaps: make(map[string][]byte)}
}

func (r *MemoryRepo) Load(_ context.Context, sessionID string) (Snapshot, error) {
	r.mu.RLock()
	raw, ok := r.snaps[sessionID]
	r.mu.RUnlock()
	if !ok {
		return Snapshot{}, ErrSnapshotNotFound
	}
	var snap Snapshot
	err := json.Unmarshal(raw, &snap)
	return snap, err
}

func (r *MemoryRepo) Save(_ context.Context, sessionID string, snap Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snaps[sessionID] = raw
	return nil
}

func (r *MemoryRepo) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.snaps, sessionID)
	return nil
}
