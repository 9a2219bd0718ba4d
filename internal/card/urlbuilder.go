package card

import (
	"fmt"
	"strings"
)

// BuildVerificationURL derives the public verification URL embedded in the
// card's QR code. The origin keeps whatever scheme/host it was configured
// with; only a trailing slash is trimmed.
func BuildVerificationURL(origin, vin string) (string, error) {
	if vin == "" {
		return "", fmt.Errorf("vin is required")
	}
	return strings.TrimSuffix(origin, "/") + "/verify/" + vin, nil
}

// CardID derives the display card identifier from the application reference.
func CardID(applicationRef string) string {
	return "VC-" + applicationRef
}
