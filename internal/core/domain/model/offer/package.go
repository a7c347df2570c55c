package offer

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// UnlimitedRevisions is the sentinel revisions value meaning the business
// offers an unlimited number of revisions for the package.
const UnlimitedRevisions = -1

var (
	// ErrPackageIsNotConstructed is returned when a Package instance was not created
	// through the NewPackage or RestorePackage factory methods.
	ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage or RestorePackage")
)

// Package represents a purchasable tier of an offer as authored by a business
// user. It is the source from which order snapshots are taken.
//
// Package follows these invariants:
//   - Must have valid unique, offer and business identifiers
//   - Title must not be empty
//   - Price must not be negative
//   - Delivery time must be positive
//   - Revisions must be UnlimitedRevisions (-1) or non-negative
//   - Tier must be one of the closed tier set
//
// The struct uses private fields to ensure encapsulation; the feature list is
// copied on both construction and access so callers can never mutate it in place.
type Package struct {
	// id is the unique identifier of the package row
	id kernel.UUID

	// offerID is the offer this package belongs to
	offerID kernel.UUID

	// businessID is the business user who authored the offer
	businessID kernel.UUID

	// title is the short name of the package
	title string

	// description is the long-form description of the offered service
	description string

	// tier is the package level within the offer
	tier Tier

	// price is the agreed price for the package
	price decimal.Decimal

	// revisions is the number of included revisions (-1 = unlimited)
	revisions int

	// deliveryDays is the promised delivery time in days
	deliveryDays int

	// features is the ordered list of included features
	features []string

	// isConstructed ensures the package was created via a factory method
	isConstructed bool
}

// NewPackage creates a new Package instance with validation. This is the only
// way (besides RestorePackage) to obtain a valid Package.
func NewPackage(
	id, offerID, businessID kernel.UUID,
	title, description string,
	tier Tier,
	price decimal.Decimal,
	revisions, deliveryDays int,
	features []string,
) (*Package, error) {
	pkg := &Package{
		description:   description,
		isConstructed: true,
	}

	if err := errors.Join(
		pkg.setIDs(id, offerID, businessID),
		pkg.setTitle(title),
		pkg.setTier(tier),
		pkg.setPrice(price),
		pkg.setRevisions(revisions),
		pkg.setDeliveryDays(deliveryDays),
	); err != nil {
		return nil, err
	}

	pkg.features = copyFeatures(features)
	return pkg, nil
}

// RestorePackage reconstructs a Package from persistence.
// It applies the same validation rules as NewPackage.
func RestorePackage(
	id, offerID, businessID kernel.UUID,
	title, description string,
	tier Tier,
	price decimal.Decimal,
	revisions, deliveryDays int,
	features []string,
) (*Package, error) {
	return NewPackage(id, offerID, businessID, title, description, tier, price, revisions, deliveryDays, features)
}

// Validate ensures the Package instance was properly constructed through a factory method.
func (p *Package) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPackageIsNotConstructed
	}
	return nil
}

// ID returns the package's unique identifier.
func (p *Package) ID() kernel.UUID {
	return p.id
}

// OfferID returns the identifier of the offer this package belongs to.
func (p *Package) OfferID() kernel.UUID {
	return p.offerID
}

// BusinessID returns the identifier of the business user who authored the offer.
func (p *Package) BusinessID() kernel.UUID {
	return p.businessID
}

// Title returns the package title.
func (p *Package) Title() string {
	return p.title
}

// Description returns the package description.
func (p *Package) Description() string {
	return p.description
}

// Tier returns the package tier.
func (p *Package) Tier() Tier {
	return p.tier
}

// Price returns the package price.
func (p *Package) Price() decimal.Decimal {
	return p.price
}

// Revisions returns the number of included revisions.
// UnlimitedRevisions (-1) means the revision count is not limited.
func (p *Package) Revisions() int {
	return p.revisions
}

// DeliveryDays returns the promised delivery time in days.
func (p *Package) DeliveryDays() int {
	return p.deliveryDays
}

// Features returns a copy of the ordered feature list.
// Mutating the returned slice does not affect the package.
func (p *Package) Features() []string {
	return copyFeatures(p.features)
}

func (p *Package) setIDs(id, offerID, businessID kernel.UUID) error {
	if err := errors.Join(id.Validate(), offerID.Validate(), businessID.Validate()); err != nil {
		return err
	}
	p.id = id
	p.offerID = offerID
	p.businessID = businessID
	return nil
}

func (p *Package) setTitle(title string) error {
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	p.title = title
	return nil
}

func (p *Package) setTier(tier Tier) error {
	if err := tier.Validate(); err != nil {
		return err
	}
	p.tier = tier
	return nil
}

func (p *Package) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price))
	}
	p.price = price
	return nil
}

func (p *Package) setRevisions(revisions int) error {
	if revisions < UnlimitedRevisions {
		return errs.NewValueIsInvalidErrorWithCause("revisions",
			fmt.Errorf("%d is below the unlimited sentinel %d", revisions, UnlimitedRevisions))
	}
	p.revisions = revisions
	return nil
}

func (p *Package) setDeliveryDays(deliveryDays int) error {
	if deliveryDays <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("deliveryDays",
			fmt.Errorf("%d is not greater than 0", deliveryDays))
	}
	p.deliveryDays = deliveryDays
	return nil
}

func copyFeatures(features []string) []string {
	if features == nil {
		return nil
	}
	out := make([]string, len(features))
	copy(out, features)
	return out
}
