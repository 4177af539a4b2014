package file

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"adspend/internal/core/domain"
)

// ErrMissingColumn is returned when a records file lacks a required column.
var ErrMissingColumn = errors.New("missing column")

// ReadRecords parses ad records from CSV. The first row is a header naming
// at least "platform" and "type" (or "ad_type"); "impressions" is optional
// and blank cells count as zero. Column order is free.
func ReadRecords(r io.Reader) ([]domain.AdRecord, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	cols := map[string]int{}
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	platformCol, ok := cols["platform"]
	if !ok {
		return nil, fmt.Errorf("%w: platform", ErrMissingColumn)
	}
	typeCol, ok := cols["type"]
	if !ok {
		if typeCol, ok = cols["ad_type"]; !ok {
			return nil, fmt.Errorf("%w: type", ErrMissingColumn)
		}
	}
	impCol, hasImp := cols["impressions"]

	var records []domain.AdRecord
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		rec := domain.AdRecord{
			Platform: domain.Platform(strings.TrimSpace(row[platformCol])),
			AdType:   domain.AdType(strings.TrimSpace(row[typeCol])),
		}
		if hasImp {
			if v := strings.TrimSpace(row[impCol]); v != "" {
				line, _ := cr.FieldPos(impCol)
				rec.Impressions, err = strconv.ParseInt(v, 10, 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: impressions %q: %w", line, v, err)
				}
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// WriteResults writes results as CSV with an expenditure column appended.
func WriteResults(w io.Writer, results []domain.ExpenditureResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"platform", "type", "impressions", "expenditure"}); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{
			string(r.Platform),
			string(r.AdType),
			strconv.FormatInt(r.Impressions, 10),
			r.Expenditure.String(),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
