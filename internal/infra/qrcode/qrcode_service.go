package qrcode

import (
	"net/url"

	"houses/internal/domain/service"
	"houses/internal/errors"

	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

// recoveryLevels maps the configured L/M/Q/H letter to the encoder level.
var recoveryLevels = map[string]qrcode.RecoveryLevel{
	"L": qrcode.Low,
	"M": qrcode.Medium,
	"Q": qrcode.High,
	"H": qrcode.Highest,
}

type listingQRCode struct {
	size  int
	level qrcode.RecoveryLevel
}

// NewQRCodeService renders listing links as square PNGs of size pixels.
// Unknown levels fall back to M.
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	level, ok := recoveryLevels[errorCorrectionLevel]
	if !ok {
		level = qrcode.Medium
	}
	if size <= 0 {
		size = defaultSize
	}

	return &listingQRCode{size: size, level: level}
}

// GenerateListingQR only encodes absolute http(s) links so a scanned code
// always opens a page.
func (s *listingQRCode) GenerateListingQR(listingURL string) ([]byte, error) {
	parsed, err := url.Parse(listingURL)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, errors.Errorf("invalid listing URL %q", listingURL)
	}

	png, err := qrcode.Encode(parsed.String(), s.level, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode listing QR code")
	}

	return png, nil
}
