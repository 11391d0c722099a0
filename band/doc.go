// Package band maps a rho value onto one of five ordered risk bands:
// Green < Yellow < Orange < Red < Black.
//
// A Scale holds four strictly ascending, inclusive upper bounds. A value v
// belongs to the first band whose bound satisfies v <= bound; anything above
// the last bound is Black. The default graph scale is
//
//	Green  <= 0.10
//	Yellow <= 0.30
//	Orange <= 0.50
//	Red    <= 0.7419   (critical rho)
//	Black   > 0.7419
//
// Classification is total: negative and NaN inputs land in Green.
//
// A Bander is immutable after NewBander and safe for concurrent use.
package band
