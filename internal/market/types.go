package market

// PriceRecord is one simulated day. Days are 1-based and contiguous.
//
// SMA7/SMA30 are filled in by the indicator package once the path has been
// generated; the OK flags mark whether enough trailing days exist for the
// window. Records are passed by value everywhere downstream of annotation.
type PriceRecord struct {
	Day     int
	Price   float64
	SMA7    float64
	SMA7OK  bool
	SMA30   float64
	SMA30OK bool
}
