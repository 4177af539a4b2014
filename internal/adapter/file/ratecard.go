package file

import (
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"adspend/internal/core/domain"
	"adspend/internal/core/pricing"
)

// rateCardDoc is the on-disk layout of a rate card:
//
//	rates:
//	  - platform: Instagram
//	    ad_type: image
//	    cpm: 5
type rateCardDoc struct {
	Rates []domain.RateEntry `yaml:"rates"`
}

// DecodeRateCard parses a YAML rate card and validates it.
func DecodeRateCard(r io.Reader) (*pricing.RateCard, error) {
	var doc rateCardDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode rate card: %w", err)
	}
	return pricing.NewRateCard(doc.Rates)
}

// LoadRateCard reads the rate card at path. An empty path returns the
// built-in reference card.
func LoadRateCard(path string) (*pricing.RateCard, error) {
	if path == "" {
		return pricing.NewRateCard(pricing.DefaultRates())
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	card, err := DecodeRateCard(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return card, nil
}

// cpmValue emits a CPM as a plain YAML number instead of the quoted
// string decimal's MarshalText would produce.
type cpmValue decimal.Decimal

func (v cpmValue) MarshalYAML() (any, error) {
	d := decimal.Decimal(v)
	tag := "!!float"
	if d.IsInteger() {
		tag = "!!int"
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: d.String()}, nil
}

type rateLine struct {
	Platform domain.Platform `yaml:"platform"`
	AdType   domain.AdType   `yaml:"ad_type"`
	CPM      cpmValue        `yaml:"cpm"`
}

// EncodeRateCard writes entries in the layout DecodeRateCard accepts.
func EncodeRateCard(w io.Writer, entries []domain.RateEntry) error {
	lines := make([]rateLine, len(entries))
	for i, e := range entries {
		lines[i] = rateLine{Platform: e.Platform, AdType: e.AdType, CPM: cpmValue(e.CPM)}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(struct {
		Rates []rateLine `yaml:"rates"`
	}{Rates: lines}); err != nil {
		return err
	}
	return enc.Close()
}
