package pricing

import "strings"

// Coupon codes and their discount fractions. Expiry and per-user usage
// limits are handled upstream of this engine, not here.
var coupons = map[string]float64{
	"SAVE10":    0.10,
	"WELCOME15": 0.15,
	"SPRING20":  0.20,
}

// LookupCoupon returns the discount fraction for a code. Codes are
// matched case-insensitively after trimming whitespace.
func LookupCoupon(code string) (float64, bool) {
	frac, ok := coupons[strings.ToUpper(strings.TrimSpace(code))]
	return frac, ok
}

// CanonicalCoupon normalizes a code to its table form, reporting
// whether the code exists.
func CanonicalCoupon(code string) (string, bool) {
	canonical := strings.ToUpper(strings.TrimSpace(code))
	_, ok := coupons[canonical]
	return canonical, ok
}
