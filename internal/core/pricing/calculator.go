package pricing

import (
	"slices"

	"github.com/shopspring/decimal"

	"adspend/internal/core/domain"
)

var mille = decimal.NewFromInt(1000)

// Calculator computes the expenditure of a single ad record on one platform.
type Calculator interface {
	// Platform returns the platform this calculator prices.
	Platform() domain.Platform
	// Supports reports whether the platform serves the ad type.
	Supports(adType domain.AdType) bool
	// ComputeExpenditure returns impressions * CPM / 1000 for the record.
	// It fails with UnsupportedAdTypeError when the ad type is not served
	// and propagates RateNotFoundError from the rate card.
	ComputeExpenditure(record domain.AdRecord) (decimal.Decimal, error)
}

// baseCalculator holds what every platform shares: its name, the ad types
// it serves and the rate card.
type baseCalculator struct {
	platform domain.Platform
	adTypes  []domain.AdType
	card     *RateCard
}

func (b *baseCalculator) Platform() domain.Platform {
	return b.platform
}

func (b *baseCalculator) Supports(adType domain.AdType) bool {
	return slices.Contains(b.adTypes, adType)
}

func (b *baseCalculator) ComputeExpenditure(record domain.AdRecord) (decimal.Decimal, error) {
	if !b.Supports(record.AdType) {
		return decimal.Zero, &domain.UnsupportedAdTypeError{Platform: b.platform, AdType: record.AdType}
	}
	if record.Impressions < 0 {
		return decimal.Zero, &domain.InvalidImpressionsError{Impressions: record.Impressions}
	}
	cpm, err := b.card.Rate(b.platform, record.AdType)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromInt(record.Impressions).Mul(cpm).Div(mille), nil
}

// Instagram serves image and video ads.
type Instagram struct{ baseCalculator }

// NewInstagram returns the Instagram calculator.
func NewInstagram(card *RateCard) *Instagram {
	return &Instagram{baseCalculator{
		platform: domain.PlatformInstagram,
		adTypes:  []domain.AdType{domain.AdTypeImage, domain.AdTypeVideo},
		card:     card,
	}}
}

// Facebook serves image and video ads.
type Facebook struct{ baseCalculator }

// NewFacebook returns the Facebook calculator.
func NewFacebook(card *RateCard) *Facebook {
	return &Facebook{baseCalculator{
		platform: domain.PlatformFacebook,
		adTypes:  []domain.AdType{domain.AdTypeImage, domain.AdTypeVideo},
		card:     card,
	}}
}

// LinkedIn serves image and text ads.
type LinkedIn struct{ baseCalculator }

// NewLinkedIn returns the LinkedIn calculator.
func NewLinkedIn(card *RateCard) *LinkedIn {
	return &LinkedIn{baseCalculator{
		platform: domain.PlatformLinkedIn,
		adTypes:  []domain.AdType{domain.AdTypeImage, domain.AdTypeText},
		card:     card,
	}}
}
