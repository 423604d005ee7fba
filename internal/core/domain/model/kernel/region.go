package kernel

import (
	"errors"
	"fmt"

	"ownplate/internal/pkg/errs"
	"ownplate/internal/pkg/guard"
)

// ErrRegionIsNotConstructed is returned when a Region instance was not
// created through the NewRegion constructor.
var ErrRegionIsNotConstructed = errors.New("Region must be created via NewRegion constructor")

// Allowed minor-unit scaling factors: 100 for two-decimal currencies (USD),
// 1 for zero-decimal currencies (JPY).
const (
	TwoDecimalMultiple  = 100
	ZeroDecimalMultiple = 1
)

// Region is a value object describing the payment region the deployment
// serves. It carries the currency's minor-unit scaling factor used for tip
// rounding and the default locale for customer notifications.
//
// The region is resolved from deployment configuration, never from request
// input: a client-supplied multiple is not trusted.
type Region struct {
	multiple      int
	defaultLocale string

	guard guard.ConstructorGuard
}

// NewRegion creates a Region with validation.
//
// The multiple must be either TwoDecimalMultiple (100) or
// ZeroDecimalMultiple (1); the default locale must not be empty.
func NewRegion(multiple int, defaultLocale string) (Region, error) {
	if multiple != TwoDecimalMultiple && multiple != ZeroDecimalMultiple {
		return Region{}, errs.NewValueIsInvalidErrorWithCause(
			"multiple",
			fmt.Errorf("%d is not a supported minor-unit multiple", multiple),
		)
	}
	if defaultLocale == "" {
		return Region{}, errs.NewValueIsRequiredError("defaultLocale")
	}

	return Region{
		multiple:      multiple,
		defaultLocale: defaultLocale,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Region was created through the constructor.
func (r Region) Validate() error {
	return r.guard.Validate(ErrRegionIsNotConstructed)
}

// Multiple returns the currency's minor-unit scaling factor.
func (r Region) Multiple() int {
	return r.multiple
}

// DefaultLocale returns the locale used for notifications when the request
// does not carry a locale hint.
func (r Region) DefaultLocale() string {
	return r.defaultLocale
}
