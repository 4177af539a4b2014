package domain

import "github.com/shopspring/decimal"

// RateEntry is a single rate card line: the CPM charged for one ad type on
// one platform. CPM is the cost per thousand impressions.
type RateEntry struct {
	Platform Platform        `json:"platform" yaml:"platform"`
	AdType   AdType          `json:"ad_type" yaml:"ad_type"`
	CPM      decimal.Decimal `json:"cpm" yaml:"cpm"`
}
