package pricing

import (
	"slices"

	"github.com/shopspring/decimal"

	"adspend/internal/core/domain"
)

type rateKey struct {
	platform domain.Platform
	adType   domain.AdType
}

// RateCard maps (platform, ad type) pairs to CPM rates. It is immutable
// after construction and safe for concurrent use.
type RateCard struct {
	entries []domain.RateEntry
	rates   map[rateKey]decimal.Decimal
}

// NewRateCard builds a rate card from an ordered list of entries. A pair
// listed twice yields a DuplicateRateError and a negative CPM yields an
// InvalidRateError.
func NewRateCard(entries []domain.RateEntry) (*RateCard, error) {
	card := &RateCard{
		entries: slices.Clone(entries),
		rates:   make(map[rateKey]decimal.Decimal, len(entries)),
	}
	for _, e := range entries {
		if e.CPM.IsNegative() {
			return nil, &domain.InvalidRateError{Platform: e.Platform, AdType: e.AdType, CPM: e.CPM}
		}
		k := rateKey{platform: e.Platform, adType: e.AdType}
		if _, ok := card.rates[k]; ok {
			return nil, &domain.DuplicateRateError{Platform: e.Platform, AdType: e.AdType}
		}
		card.rates[k] = e.CPM
	}
	return card, nil
}

// Rate returns the CPM for the pair or a RateNotFoundError.
func (c *RateCard) Rate(platform domain.Platform, adType domain.AdType) (decimal.Decimal, error) {
	cpm, ok := c.rates[rateKey{platform: platform, adType: adType}]
	if !ok {
		return decimal.Zero, &domain.RateNotFoundError{Platform: platform, AdType: adType}
	}
	return cpm, nil
}

// Entries returns a copy of the entries in construction order.
func (c *RateCard) Entries() []domain.RateEntry {
	return slices.Clone(c.entries)
}

// Len reports the number of rates on the card.
func (c *RateCard) Len() int {
	return len(c.rates)
}

// DefaultRates is the reference rate card used when no rate card file is
// configured.
func DefaultRates() []domain.RateEntry {
	return []domain.RateEntry{
		{Platform: domain.PlatformInstagram, AdType: domain.AdTypeImage, CPM: decimal.NewFromInt(5)},
		{Platform: domain.PlatformInstagram, AdType: domain.AdTypeVideo, CPM: decimal.NewFromInt(10)},
		{Platform: domain.PlatformFacebook, AdType: domain.AdTypeImage, CPM: decimal.NewFromInt(4)},
		{Platform: domain.PlatformFacebook, AdType: domain.AdTypeVideo, CPM: decimal.NewFromInt(8)},
		{Platform: domain.PlatformLinkedIn, AdType: domain.AdTypeImage, CPM: decimal.NewFromInt(6)},
		{Platform: domain.PlatformLinkedIn, AdType: domain.AdTypeText, CPM: decimal.NewFromInt(2)},
	}
}
