package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adspend/internal/core/domain"
)

func newTestService(t *testing.T) *ExpenditureService {
	t.Helper()
	card, err := NewRateCard(DefaultRates())
	require.NoError(t, err)
	return NewExpenditureService(NewRegistry(card))
}

func rec(p domain.Platform, a domain.AdType, imp int64) domain.AdRecord {
	return domain.AdRecord{Platform: p, AdType: a, Impressions: imp}
}

func TestRateCard(t *testing.T) {
	card, err := NewRateCard(DefaultRates())
	require.NoError(t, err)
	assert.Equal(t, 6, card.Len())

	cpm, err := card.Rate(domain.PlatformLinkedIn, domain.AdTypeText)
	require.NoError(t, err)
	assert.True(t, cpm.Equal(decimal.NewFromInt(2)))

	_, err = card.Rate(domain.PlatformLinkedIn, domain.AdTypeVideo)
	var notFound *domain.RateNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, domain.PlatformLinkedIn, notFound.Platform)
	assert.Equal(t, domain.AdTypeVideo, notFound.AdType)
}

func TestRateCardRejectsDuplicates(t *testing.T) {
	entries := append(DefaultRates(), domain.RateEntry{
		Platform: domain.PlatformInstagram, AdType: domain.AdTypeImage, CPM: decimal.NewFromInt(7),
	})
	_, err := NewRateCard(entries)
	var dup *domain.DuplicateRateError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, domain.PlatformInstagram, dup.Platform)
}

func TestRateCardRejectsNegativeCPM(t *testing.T) {
	_, err := NewRateCard([]domain.RateEntry{
		{Platform: domain.PlatformFacebook, AdType: domain.AdTypeImage, CPM: decimal.NewFromInt(-1)},
	})
	var invalid *domain.InvalidRateError
	require.ErrorAs(t, err, &invalid)
}

func TestRateCardEntriesAreCopied(t *testing.T) {
	entries := DefaultRates()
	card, err := NewRateCard(entries)
	require.NoError(t, err)

	entries[0].CPM = decimal.NewFromInt(999)
	got := card.Entries()
	got[1].CPM = decimal.NewFromInt(999)

	cpm, err := card.Rate(domain.PlatformInstagram, domain.AdTypeImage)
	require.NoError(t, err)
	assert.True(t, cpm.Equal(decimal.NewFromInt(5)))
	assert.True(t, card.Entries()[1].CPM.Equal(decimal.NewFromInt(10)))
}

func TestRegistryResolve(t *testing.T) {
	card, err := NewRateCard(DefaultRates())
	require.NoError(t, err)
	reg := NewRegistry(card)

	tests := []struct {
		name        string
		supported   []domain.AdType
		unsupported domain.AdType
	}{
		{"Instagram", []domain.AdType{domain.AdTypeImage, domain.AdTypeVideo}, domain.AdTypeText},
		{"Facebook", []domain.AdType{domain.AdTypeImage, domain.AdTypeVideo}, domain.AdTypeText},
		{"LinkedIn", []domain.AdType{domain.AdTypeImage, domain.AdTypeText}, domain.AdTypeVideo},
	}
	seen := make(map[Calculator]bool)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc, err := reg.Resolve(tt.name)
			require.NoError(t, err)
			assert.Equal(t, domain.Platform(tt.name), calc.Platform())
			for _, a := range tt.supported {
				assert.True(t, calc.Supports(a))
			}
			assert.False(t, calc.Supports(tt.unsupported))

			_, err = calc.ComputeExpenditure(domain.AdRecord{Platform: calc.Platform(), AdType: tt.unsupported, Impressions: 10})
			var unsupported *domain.UnsupportedAdTypeError
			require.ErrorAs(t, err, &unsupported)
			assert.Equal(t, tt.unsupported, unsupported.AdType)

			assert.False(t, seen[calc])
			seen[calc] = true
		})
	}

	_, err = reg.Resolve("TikTok")
	var platformErr *domain.UnsupportedPlatformError
	require.ErrorAs(t, err, &platformErr)
	assert.Equal(t, "TikTok", platformErr.Name)

	_, err = reg.Resolve("instagram")
	assert.ErrorAs(t, err, &platformErr)

	assert.Equal(t, []domain.Platform{domain.PlatformInstagram, domain.PlatformFacebook, domain.PlatformLinkedIn}, reg.Platforms())
}

func TestCalculatorMissingRate(t *testing.T) {
	card, err := NewRateCard([]domain.RateEntry{
		{Platform: domain.PlatformInstagram, AdType: domain.AdTypeImage, CPM: decimal.NewFromInt(5)},
	})
	require.NoError(t, err)

	_, err = NewInstagram(card).ComputeExpenditure(rec(domain.PlatformInstagram, domain.AdTypeVideo, 1000))
	var notFound *domain.RateNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, domain.AdTypeVideo, notFound.AdType)
}

func TestCalculatorZeroImpressions(t *testing.T) {
	card, err := NewRateCard(DefaultRates())
	require.NoError(t, err)

	for _, calc := range []Calculator{NewInstagram(card), NewFacebook(card), NewLinkedIn(card)} {
		got, err := calc.ComputeExpenditure(rec(calc.Platform(), domain.AdTypeImage, 0))
		require.NoError(t, err)
		assert.True(t, got.IsZero(), "%s: %s", calc.Platform(), got)
	}
}

func TestCalculatorNegativeImpressions(t *testing.T) {
	card, err := NewRateCard(DefaultRates())
	require.NoError(t, err)

	_, err = NewFacebook(card).ComputeExpenditure(rec(domain.PlatformFacebook, domain.AdTypeVideo, -5))
	var invalid *domain.InvalidImpressionsError
	require.ErrorAs(t, err, &invalid)
	assert.EqualValues(t, -5, invalid.Impressions)
}

func TestCalculatorExactArithmetic(t *testing.T) {
	card, err := NewRateCard([]domain.RateEntry{
		{Platform: domain.PlatformFacebook, AdType: domain.AdTypeVideo, CPM: decimal.RequireFromString("7.35")},
	})
	require.NoError(t, err)

	got, err := NewFacebook(card).ComputeExpenditure(rec(domain.PlatformFacebook, domain.AdTypeVideo, 333))
	require.NoError(t, err)
	assert.Equal(t, "2.44755", got.String())
}

func TestComputeAll(t *testing.T) {
	svc := newTestService(t)
	records := []domain.AdRecord{
		rec(domain.PlatformInstagram, domain.AdTypeImage, 10000),
		rec(domain.PlatformInstagram, domain.AdTypeVideo, 20000),
		rec(domain.PlatformFacebook, domain.AdTypeImage, 12500),
		rec(domain.PlatformLinkedIn, domain.AdTypeText, 500000),
		rec(domain.PlatformLinkedIn, domain.AdTypeImage, 91000),
	}
	input := make([]domain.AdRecord, len(records))
	copy(input, records)

	results, err := svc.ComputeAll(input)
	require.NoError(t, err)
	require.Len(t, results, len(records))

	want := []int64{50, 200, 50, 1000, 546}
	for i, r := range results {
		assert.Equal(t, records[i], r.AdRecord, "order preserved at %d", i)
		assert.True(t, r.Expenditure.Equal(decimal.NewFromInt(want[i])), "record %d: got %s", i, r.Expenditure)
	}
	assert.Equal(t, records, input)

	sum := Summarize(results)
	assert.Equal(t, "1846", sum.Total.String())
	assert.EqualValues(t, 633500, sum.Impressions)
	assert.Equal(t, "250", sum.ByPlatform[domain.PlatformInstagram].String())
	assert.Equal(t, "50", sum.ByPlatform[domain.PlatformFacebook].String())
	assert.Equal(t, "1546", sum.ByPlatform[domain.PlatformLinkedIn].String())
}

func TestComputeAllEmpty(t *testing.T) {
	results, err := newTestService(t).ComputeAll(nil)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.True(t, Summarize(results).Total.IsZero())
}

func TestComputeAllFailFast(t *testing.T) {
	svc := newTestService(t)

	t.Run("unsupported ad type", func(t *testing.T) {
		results, err := svc.ComputeAll([]domain.AdRecord{
			rec(domain.PlatformInstagram, domain.AdTypeImage, 10),
			rec(domain.PlatformLinkedIn, domain.AdTypeVideo, 1000),
		})
		assert.Nil(t, results)

		var recErr *domain.RecordError
		require.ErrorAs(t, err, &recErr)
		assert.Equal(t, 1, recErr.Index)

		var adTypeErr *domain.UnsupportedAdTypeError
		require.ErrorAs(t, err, &adTypeErr)
		assert.Equal(t, domain.PlatformLinkedIn, adTypeErr.Platform)
		assert.Equal(t, domain.AdTypeVideo, adTypeErr.AdType)
	})

	t.Run("unsupported platform", func(t *testing.T) {
		results, err := svc.ComputeAll([]domain.AdRecord{
			rec("TikTok", domain.AdTypeImage, 1000),
			rec(domain.PlatformFacebook, domain.AdTypeImage, 1000),
		})
		assert.Nil(t, results)

		var platformErr *domain.UnsupportedPlatformError
		require.ErrorAs(t, err, &platformErr)
		assert.Equal(t, "TikTok", platformErr.Name)
	})
}
