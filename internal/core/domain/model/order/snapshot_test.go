package order_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/offer"
	"marketplace/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func standardPackage(t *testing.T) *offer.Package {
	t.Helper()

	pkg, err := offer.NewPackage(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"Logo design", "Three logo concepts",
		offer.TierStandard,
		decimal.NewFromInt(100),
		2, 5,
		[]string{"3 concepts", "Source files"},
	)
	require.NoError(t, err)
	return pkg
}

func TestSnapshotFromPackage(t *testing.T) {
	t.Run("should copy all purchasable terms", func(t *testing.T) {
		pkg := standardPackage(t)

		snapshot, err := order.SnapshotFromPackage(pkg)

		require.NoError(t, err)
		require.NoError(t, snapshot.Validate())
		assert.Equal(t, "Logo design", snapshot.Title())
		assert.Equal(t, "Three logo concepts", snapshot.Description())
		assert.Equal(t, offer.TierStandard, snapshot.Tier())
		assert.True(t, snapshot.Price().Equal(decimal.NewFromInt(100)))
		assert.Equal(t, 2, snapshot.Revisions())
		assert.Equal(t, 5, snapshot.DeliveryDays())
		assert.Equal(t, []string{"3 concepts", "Source files"}, snapshot.Features())
	})

	t.Run("should reject zero value package", func(t *testing.T) {
		var pkg offer.Package
		_, err := order.SnapshotFromPackage(&pkg)
		require.ErrorIs(t, err, offer.ErrPackageIsNotConstructed)
	})

	t.Run("should not alias the source feature list", func(t *testing.T) {
		pkg := standardPackage(t)
		snapshot, err := order.SnapshotFromPackage(pkg)
		require.NoError(t, err)

		// Mutating what the snapshot handed out must not leak back in.
		leaked := snapshot.Features()
		leaked[0] = "mutated"

		assert.Equal(t, []string{"3 concepts", "Source files"}, snapshot.Features())
	})
}

func TestRestoreSnapshot(t *testing.T) {
	t.Run("should rebuild an equal snapshot", func(t *testing.T) {
		pkg := standardPackage(t)
		original, err := order.SnapshotFromPackage(pkg)
		require.NoError(t, err)

		restored, err := order.RestoreSnapshot(
			original.Title(), original.Description(), original.Tier(),
			original.Price(), original.Revisions(), original.DeliveryDays(),
			original.Features(),
		)

		require.NoError(t, err)
		assert.True(t, original.IsEqual(restored))
	})

	t.Run("should copy the caller's feature slice", func(t *testing.T) {
		features := []string{"a", "b"}
		snapshot, err := order.RestoreSnapshot("t", "", offer.TierBasic, decimal.NewFromInt(1), 0, 1, features)
		require.NoError(t, err)

		features[0] = "mutated"

		assert.Equal(t, []string{"a", "b"}, snapshot.Features())
	})

	t.Run("should reject invalid tier", func(t *testing.T) {
		_, err := order.RestoreSnapshot("t", "", offer.TierUnknown, decimal.NewFromInt(1), 0, 1, nil)
		require.Error(t, err)
	})
}

func TestPackageSnapshot_Validate(t *testing.T) {
	t.Run("zero value snapshot fails validation", func(t *testing.T) {
		var snapshot order.PackageSnapshot
		require.ErrorIs(t, snapshot.Validate(), order.ErrSnapshotIsNotConstructed)
	})
}

func TestPackageSnapshot_IsEqual(t *testing.T) {
	pkg := standardPackage(t)
	a, err := order.SnapshotFromPackage(pkg)
	require.NoError(t, err)

	t.Run("equal to itself", func(t *testing.T) {
		assert.True(t, a.IsEqual(a))
	})

	t.Run("differs on price", func(t *testing.T) {
		b, restoreErr := order.RestoreSnapshot(
			a.Title(), a.Description(), a.Tier(),
			decimal.NewFromInt(200), a.Revisions(), a.DeliveryDays(), a.Features(),
		)
		require.NoError(t, restoreErr)
		assert.False(t, a.IsEqual(b))
	})

	t.Run("differs on feature order", func(t *testing.T) {
		b, restoreErr := order.RestoreSnapshot(
			a.Title(), a.Description(), a.Tier(),
			a.Price(), a.Revisions(), a.DeliveryDays(),
			[]string{"Source files", "3 concepts"},
		)
		require.NoError(t, restoreErr)
		assert.False(t, a.IsEqual(b))
	})
}
