package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// UnsupportedPlatformError is returned when no calculator is registered for
// a platform name.
type UnsupportedPlatformError struct {
	Name string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("unsupported platform: %s", e.Name)
}

// UnsupportedAdTypeError is returned when a platform does not serve the
// requested ad type.
type UnsupportedAdTypeError struct {
	Platform Platform
	AdType   AdType
}

func (e *UnsupportedAdTypeError) Error() string {
	return fmt.Sprintf("unsupported ad type %q for platform %s", e.AdType, e.Platform)
}

// RateNotFoundError is returned when the rate card has no CPM for a
// (platform, ad type) pair.
type RateNotFoundError struct {
	Platform Platform
	AdType   AdType
}

func (e *RateNotFoundError) Error() string {
	return fmt.Sprintf("no rate for %s/%s", e.Platform, e.AdType)
}

// DuplicateRateError is returned when a rate card lists the same
// (platform, ad type) pair more than once.
type DuplicateRateError struct {
	Platform Platform
	AdType   AdType
}

func (e *DuplicateRateError) Error() string {
	return fmt.Sprintf("duplicate rate for %s/%s", e.Platform, e.AdType)
}

// InvalidRateError is returned for a negative CPM.
type InvalidRateError struct {
	Platform Platform
	AdType   AdType
	CPM      decimal.Decimal
}

func (e *InvalidRateError) Error() string {
	return fmt.Sprintf("invalid cpm %s for %s/%s", e.CPM, e.Platform, e.AdType)
}

// InvalidImpressionsError is returned for a negative impression count.
type InvalidImpressionsError struct {
	Impressions int64
}

func (e *InvalidImpressionsError) Error() string {
	return fmt.Sprintf("invalid impressions: %d", e.Impressions)
}

// RecordError ties a failure to the position of the offending record in a
// batch.
type RecordError struct {
	Index  int
	Record AdRecord
	Err    error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d: %v", e.Index, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
