package service

// QRCodeService renders QR codes for sharing listings
type QRCodeService interface {
	// GenerateListingQR returns a PNG QR code encoding the listing URL
	GenerateListingQR(listingURL string) ([]byte, error)
}
