package offer_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/offer"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPackage(t *testing.T) *offer.Package {
	t.Helper()

	pkg, err := offer.NewPackage(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"Logo design", "Three logo concepts with source files",
		offer.TierStandard,
		decimal.NewFromInt(100),
		2, 5,
		[]string{"3 concepts", "Source files"},
	)
	require.NoError(t, err)
	return pkg
}

func TestNewPackage(t *testing.T) {
	t.Run("should create package with valid parameters", func(t *testing.T) {
		pkg := validPackage(t)

		require.NoError(t, pkg.Validate())
		assert.Equal(t, "Logo design", pkg.Title())
		assert.Equal(t, offer.TierStandard, pkg.Tier())
		assert.True(t, pkg.Price().Equal(decimal.NewFromInt(100)))
		assert.Equal(t, 2, pkg.Revisions())
		assert.Equal(t, 5, pkg.DeliveryDays())
		assert.Equal(t, []string{"3 concepts", "Source files"}, pkg.Features())
	})

	t.Run("should allow unlimited revisions sentinel", func(t *testing.T) {
		pkg, err := offer.NewPackage(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"Premium design", "",
			offer.TierPremium,
			decimal.NewFromInt(500),
			offer.UnlimitedRevisions, 10,
			nil,
		)

		require.NoError(t, err)
		assert.Equal(t, offer.UnlimitedRevisions, pkg.Revisions())
	})

	t.Run("should reject invalid parameters", func(t *testing.T) {
		id := kernel.NewUUID()
		price := decimal.NewFromInt(10)

		testCases := []struct {
			name  string
			build func() (*offer.Package, error)
		}{
			{
				name: "zero package id",
				build: func() (*offer.Package, error) {
					return offer.NewPackage(kernel.UUID{}, id, id, "t", "", offer.TierBasic, price, 0, 1, nil)
				},
			},
			{
				name: "empty title",
				build: func() (*offer.Package, error) {
					return offer.NewPackage(id, id, id, "", "", offer.TierBasic, price, 0, 1, nil)
				},
			},
			{
				name: "invalid tier",
				build: func() (*offer.Package, error) {
					return offer.NewPackage(id, id, id, "t", "", offer.TierUnknown, price, 0, 1, nil)
				},
			},
			{
				name: "negative price",
				build: func() (*offer.Package, error) {
					return offer.NewPackage(id, id, id, "t", "", offer.TierBasic, decimal.NewFromInt(-1), 0, 1, nil)
				},
			},
			{
				name: "revisions below sentinel",
				build: func() (*offer.Package, error) {
					return offer.NewPackage(id, id, id, "t", "", offer.TierBasic, price, -2, 1, nil)
				},
			},
			{
				name: "zero delivery days",
				build: func() (*offer.Package, error) {
					return offer.NewPackage(id, id, id, "t", "", offer.TierBasic, price, 0, 0, nil)
				},
			},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := tc.build()
				require.Error(t, err)
			})
		}
	})
}

func TestPackage_Features_ReturnsCopy(t *testing.T) {
	pkg := validPackage(t)

	features := pkg.Features()
	features[0] = "mutated"

	assert.Equal(t, []string{"3 concepts", "Source files"}, pkg.Features())
}

func TestPackage_Validate(t *testing.T) {
	t.Run("zero value package fails validation", func(t *testing.T) {
		var pkg offer.Package
		require.ErrorIs(t, pkg.Validate(), offer.ErrPackageIsNotConstructed)
	})

	t.Run("nil package fails validation", func(t *testing.T) {
		var pkg *offer.Package
		require.ErrorIs(t, pkg.Validate(), offer.ErrPackageIsNotConstructed)
	})
}
