package file

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adspend/internal/core/domain"
	"adspend/internal/core/pricing"
)

const rateYAML = `rates:
  - platform: Instagram
    ad_type: image
    cpm: 5
  - platform: LinkedIn
    ad_type: text
    cpm: 2.5
`

func TestDecodeRateCard(t *testing.T) {
	card, err := DecodeRateCard(strings.NewReader(rateYAML))
	require.NoError(t, err)
	assert.Equal(t, 2, card.Len())

	cpm, err := card.Rate(domain.PlatformLinkedIn, domain.AdTypeText)
	require.NoError(t, err)
	assert.True(t, cpm.Equal(decimal.RequireFromString("2.5")))
}

func TestDecodeRateCardDuplicate(t *testing.T) {
	doc := rateYAML + `  - platform: Instagram
    ad_type: image
    cpm: 6
`
	_, err := DecodeRateCard(strings.NewReader(doc))
	var dup *domain.DuplicateRateError
	assert.ErrorAs(t, err, &dup)
}

func TestDecodeRateCardUnknownField(t *testing.T) {
	_, err := DecodeRateCard(strings.NewReader("rates:\n  - platform: Facebook\n    kind: image\n    cpm: 4\n"))
	assert.Error(t, err)
}

func TestLoadRateCard(t *testing.T) {
	card, err := LoadRateCard("")
	require.NoError(t, err)
	assert.Equal(t, 6, card.Len())

	path := filepath.Join(t.TempDir(), "rates.yaml")
	var buf bytes.Buffer
	require.NoError(t, EncodeRateCard(&buf, pricing.DefaultRates()))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	loaded, err := LoadRateCard(path)
	require.NoError(t, err)
	assert.Equal(t, card.Len(), loaded.Len())
	for _, e := range card.Entries() {
		cpm, err := loaded.Rate(e.Platform, e.AdType)
		require.NoError(t, err)
		assert.True(t, e.CPM.Equal(cpm), "%s/%s", e.Platform, e.AdType)
	}

	_, err = LoadRateCard(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadRecords(t *testing.T) {
	in := `ad_type,platform,impressions
image,Instagram,10000
text, LinkedIn,
video,Facebook,20000
`
	records, err := ReadRecords(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []domain.AdRecord{
		{Platform: domain.PlatformInstagram, AdType: domain.AdTypeImage, Impressions: 10000},
		{Platform: domain.PlatformLinkedIn, AdType: domain.AdTypeText, Impressions: 0},
		{Platform: domain.PlatformFacebook, AdType: domain.AdTypeVideo, Impressions: 20000},
	}, records)
}

func TestReadRecordsErrors(t *testing.T) {
	_, err := ReadRecords(strings.NewReader("type,impressions\nimage,10\n"))
	assert.ErrorIs(t, err, ErrMissingColumn)

	_, err = ReadRecords(strings.NewReader("platform,type,impressions\nInstagram,image,lots\n"))
	assert.ErrorContains(t, err, "line 2")

	records, err := ReadRecords(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestWriteResults(t *testing.T) {
	var buf bytes.Buffer
	err := WriteResults(&buf, []domain.ExpenditureResult{
		{AdRecord: domain.AdRecord{Platform: domain.PlatformLinkedIn, AdType: domain.AdTypeImage, Impressions: 91000}, Expenditure: decimal.NewFromInt(546)},
		{AdRecord: domain.AdRecord{Platform: domain.PlatformFacebook, AdType: domain.AdTypeVideo, Impressions: 333}, Expenditure: decimal.RequireFromString("2.664")},
	})
	require.NoError(t, err)
	assert.Equal(t, "platform,type,impressions,expenditure\nLinkedIn,image,91000,546\nFacebook,video,333,2.664\n", buf.String())
}

func TestEncodeRateCardNumbers(t *testing.T) {
	var buf bytes.Buffer
	err := EncodeRateCard(&buf, []domain.RateEntry{
		{Platform: domain.PlatformInstagram, AdType: domain.AdTypeImage, CPM: decimal.NewFromInt(5)},
		{Platform: domain.PlatformLinkedIn, AdType: domain.AdTypeText, CPM: decimal.RequireFromString("2.5")},
	})
	require.NoError(t, err)
	assert.Equal(t, rateYAML, buf.String())
}
