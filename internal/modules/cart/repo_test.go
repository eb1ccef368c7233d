package cart

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepoRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo()

	_, err := repo.Load(ctx, "s1")
	assert.ErrorIs(t, err, ErrSnapshotNotFound)

	s := NewStore()
	s.AddToCart(product(1, "4000.50", "Eyeglasses"))
	s.UpdateLensOption(1, &LensOption{Type: LensPrescription, Option: "Basic Powered", Price: dec("100"), PrescriptionID: "7"})
	require.NoError(t, repo.Save(ctx, "s1", s.Snapshot()))

	snap, err := repo.Load(ctx, "s1")
	require.NoError(t, err)
	restored := NewStore()
	restored.Restore(snap)
	assert.True(t, restored.CartTotal().Equal(dec("4000.50")))
	assert.True(t, restored.HasPrescriptionLenses())
	assert.Equal(t, "7", restored.Items()[0].LensOption.PrescriptionID)

	require.NoError(t, repo.Delete(ctx, "s1"))
	_, err = repo.Load(ctx, "s1")
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestIsRetryableMySQLError(t *testing.T) {
	assert.True(t, isRetryableMySQLError(&mysql.MySQLError{Number: 1213}))
	assert.True(t, isRetryableMySQLError(fmt.Errorf("save: %w", &mysql.MySQLError{Number: 1205})))
	assert.False(t, isRetryableMySQLError(&mysql.MySQLError{Number: 1062}))
	assert.False(t, isRetryableMySQLError(errors.New("boom")))
}

func TestSessionCartTableName(t *testing.T) {
	assert.Equal(t, "session_carts", SessionCart{}.TableName())
}
