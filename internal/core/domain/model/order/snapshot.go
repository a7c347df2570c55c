package order

import (
	"errors"

	"marketplace/internal/core/domain/model/offer"
	"marketplace/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrSnapshotIsNotConstructed is returned when a PackageSnapshot instance was
	// not created through SnapshotFromPackage or RestoreSnapshot.
	ErrSnapshotIsNotConstructed = errors.New(
		"PackageSnapshot must be created via SnapshotFromPackage or RestoreSnapshot",
	)
)

// PackageSnapshot is an immutable copy of the purchasable terms of an offer
// package, taken at the moment an order is placed.
//
// The snapshot is a deep, defensive copy of its source: no later mutation of
// the source package — price change, feature edit, deletion — is observable
// through it. Once attached to an order it never changes for the lifetime of
// that order.
//
// PackageSnapshot does not re-validate business rules of the catalog (price
// bounds, tier membership); those are owned by the authoring component and
// were enforced when the source package was created.
type PackageSnapshot struct {
	title        string
	description  string
	tier         offer.Tier
	price        decimal.Decimal
	revisions    int
	deliveryDays int
	features     []string

	guard guard.ConstructorGuard
}

// SnapshotFromPackage builds a PackageSnapshot from a validated package source.
//
// The feature list is copied, not aliased, so the caller keeps no handle into
// the snapshot's state. Returns an error only if the source itself was not
// properly constructed.
func SnapshotFromPackage(pkg *offer.Package) (PackageSnapshot, error) {
	if err := pkg.Validate(); err != nil {
		return PackageSnapshot{}, err
	}

	return PackageSnapshot{
		title:        pkg.Title(),
		description:  pkg.Description(),
		tier:         pkg.Tier(),
		price:        pkg.Price(),
		revisions:    pkg.Revisions(),
		deliveryDays: pkg.DeliveryDays(),
		features:     pkg.Features(),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// RestoreSnapshot reconstructs a PackageSnapshot from persistence.
// The feature list is copied so the caller's slice stays independent.
func RestoreSnapshot(
	title, description string,
	tier offer.Tier,
	price decimal.Decimal,
	revisions, deliveryDays int,
	features []string,
) (PackageSnapshot, error) {
	if err := tier.Validate(); err != nil {
		return PackageSnapshot{}, err
	}

	copied := make([]string, len(features))
	copy(copied, features)

	return PackageSnapshot{
		title:        title,
		description:  description,
		tier:         tier,
		price:        price,
		revisions:    revisions,
		deliveryDays: deliveryDays,
		features:     copied,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the snapshot was created through a factory method.
func (s PackageSnapshot) Validate() error {
	return s.guard.Validate(ErrSnapshotIsNotConstructed)
}

// Title returns the frozen package title.
func (s PackageSnapshot) Title() string {
	return s.title
}

// Description returns the frozen package description.
func (s PackageSnapshot) Description() string {
	return s.description
}

// Tier returns the frozen package tier.
func (s PackageSnapshot) Tier() offer.Tier {
	return s.tier
}

// Price returns the frozen package price.
func (s PackageSnapshot) Price() decimal.Decimal {
	return s.price
}

// Revisions returns the frozen number of included revisions.
// offer.UnlimitedRevisions (-1) means unlimited.
func (s PackageSnapshot) Revisions() int {
	return s.revisions
}

// DeliveryDays returns the frozen delivery time in days.
func (s PackageSnapshot) DeliveryDays() int {
	return s.deliveryDays
}

// Features returns a copy of the frozen, ordered feature list.
// Mutating the returned slice does not affect the snapshot.
func (s PackageSnapshot) Features() []string {
	out := make([]string, len(s.features))
	copy(out, s.features)
	return out
}

// IsEqual compares two snapshots field by field, including feature order.
func (s PackageSnapshot) IsEqual(other PackageSnapshot) bool {
	if s.title != other.title ||
		s.description != other.description ||
		s.tier != other.tier ||
		!s.price.Equal(other.price) ||
		s.revisions != other.revisions ||
		s.deliveryDays != other.deliveryDays ||
		len(s.features) != len(other.features) {
		return false
	}
	for i := range s.features {
		if s.features[i] != other.features[i] {
			return false
		}
	}
	return true
}
