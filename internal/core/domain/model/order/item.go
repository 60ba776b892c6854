package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// the NewItem constructor.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is an order line supplied by the ordering pipeline: a product
// reference, the quantity the packer must physically verify, and the code
// the scanner will read. Products without a printed barcode are matched by
// their manually-keyed internal product code instead.
type Item struct {
	id               kernel.UUID
	productCode      string
	barcode          string
	requiredQuantity int

	guard guard.ConstructorGuard
}

// NewItem creates an order item. The product code is mandatory; the barcode
// may be empty when the product carries no physical barcode.
func NewItem(id kernel.UUID, productCode, barcode string, requiredQuantity int) (*Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if productCode == "" {
		return nil, errs.NewValueIsRequiredError("productCode")
	}
	if requiredQuantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"requiredQuantity",
			fmt.Errorf("%d is not greater than 0", requiredQuantity),
		)
	}

	return &Item{
		id:               id,
		productCode:      productCode,
		barcode:          barcode,
		requiredQuantity: requiredQuantity,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the item was created through NewItem.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// ProductCode returns the internal product code.
func (i *Item) ProductCode() string {
	return i.productCode
}

// Barcode returns the physical barcode, or "" when the product has none.
func (i *Item) Barcode() string {
	return i.barcode
}

// RequiredQuantity returns how many physical units must be scanned.
func (i *Item) RequiredQuantity() int {
	return i.requiredQuantity
}

// Matches reports whether a scanned code resolves to this item. The real
// barcode wins; the internal product code is only consulted when the item
// has no barcode.
func (i *Item) Matches(code string) bool {
	if i.barcode != "" {
		return i.barcode == code
	}
	return i.productCode == code
}
