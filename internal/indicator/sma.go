// Package indicator computes rolling statistics over a generated price path.
package indicator

import "github.com/zappabad/goldencross/internal/market"

// Window lengths for the fast and slow averages the strategy trades on.
const (
	FastWindow = 7
	SlowWindow = 30
)

// Annotate fills SMA7 and SMA30 on every record with enough trailing days
// and returns the same slice. Ownership of the slice transfers to Annotate;
// callers must not hold aliases across the call. A record's average is
// present (OK flag set) exactly when the full window fits, so the first 6
// and 29 records respectively stay absent.
func Annotate(records []market.PriceRecord) []market.PriceRecord {
	for i := range records {
		if v, ok := trailingMean(records, i, FastWindow); ok {
			records[i].SMA7 = v
			records[i].SMA7OK = true
		}
		if v, ok := trailingMean(records, i, SlowWindow); ok {
			records[i].SMA30 = v
			records[i].SMA30OK = true
		}
	}
	return records
}

// trailingMean averages the window ending at i, inclusive. Each window is
// summed independently; the paths are short enough that a running sum would
// only add floating-point drift for nothing.
func trailingMean(records []market.PriceRecord, i, window int) (float64, bool) {
	if i < window-1 {
		return 0, false
	}
	var sum float64
	for j := i - window + 1; j <= i; j++ {
		sum += records[j].Price
	}
	return sum / float64(window), true
}
