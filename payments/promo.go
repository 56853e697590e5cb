package payments

import "strings"

// There is a single promo token. It zeroes the order out entirely, there is
// no partial discount, expiry or usage limit.
const freeCheckoutCode = "free"

// ResolvePromo reports whether the entered code unlocks the free checkout
// path. Matching is case-insensitive and exact.
func ResolvePromo(code string) bool {
	return strings.EqualFold(code, freeCheckoutCode)
}
