// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/paulmach/orb"
)

// House is a listed dwelling. Ownership is fixed to the identity that created it.
type House struct {
	ID        int64     // Store-assigned identifier, immutable after creation.
	UserID    string    // Verified identity of the creator.
	Address   string    // Free-text street address.
	Latitude  float64   // Geographic latitude in degrees.
	Longitude float64   // Geographic longitude in degrees.
	Image     string    // URL or storage key of the uploaded photo.
	Bedrooms  int       // Number of bedrooms.
	CreatedAt time.Time // Timestamp of when the listing was stored.
}

// Point returns the house location as an orb point (longitude, latitude).
func (h *House) Point() orb.Point {
	return orb.Point{h.Longitude, h.Latitude}
}

// PublicID returns the trailing path segment of the image reference, which the
// image CDN uses to address the cached photo.
func PublicID(image string) string {
	if idx := strings.LastIndex(image, "/"); idx >= 0 {
		return image[idx+1:]
	}

	return image
}
