package card

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

// encodeVerificationQR renders the verification URL as a PNG QR code.
// qrcode.Highest (level H) tolerates roughly 30% damage, which matters for a
// printed card that gets laminated, folded and scuffed.
func encodeVerificationQR(url string, size int) ([]byte, error) {
	if url == "" {
		return nil, fmt.Errorf("url cannot be empty")
	}
	if size <= 0 {
		return nil, fmt.Errorf("invalid size: must be > 0")
	}

	png, err := qrcode.Encode(url, qrcode.Highest, size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}
	return png, nil
}
