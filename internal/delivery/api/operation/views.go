package operation

import (
	"strconv"
	"time"

	"houses/internal/domain/entity"
)

// HouseView is the wire form of a house.
type HouseView struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Address   string    `json:"address"`
	Image     string    `json:"image"`
	PublicID  string    `json:"publicId"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Bedrooms  int       `json:"bedrooms"`
	CreatedAt time.Time `json:"createdAt"`
}

// HouseWithNearbyView is returned when the caller selects the nearby field.
type HouseWithNearbyView struct {
	*HouseView
	Nearby []*HouseView `json:"nearby"`
}

// ImageSignatureView is the wire form of an upload authorization.
type ImageSignatureView struct {
	Signature string `json:"signature"`
	Timestamp int64  `json:"timestamp"`
	APIKey    string `json:"apiKey"`
	CloudName string `json:"cloudName"`
	UploadURL string `json:"uploadUrl"`
	Folder    string `json:"folder,omitempty"`
}

func toHouseView(house *entity.House) *HouseView {
	return &HouseView{
		ID:        strconv.FormatInt(house.ID, 10),
		UserID:    house.UserID,
		Address:   house.Address,
		Image:     house.Image,
		PublicID:  entity.PublicID(house.Image),
		Latitude:  house.Latitude,
		Longitude: house.Longitude,
		Bedrooms:  house.Bedrooms,
		CreatedAt: house.CreatedAt,
	}
}

func toHouseViews(houses []*entity.House) []*HouseView {
	views := make([]*HouseView, 0, len(houses))
	for _, house := range houses {
		views = append(views, toHouseView(house))
	}

	return views
}

func toImageSignatureView(sig *entity.ImageSignature) *ImageSignatureView {
	return &ImageSignatureView{
		Signature: sig.Signature,
		Timestamp: sig.Timestamp,
		APIKey:    sig.APIKey,
		CloudName: sig.CloudName,
		UploadURL: sig.UploadURL,
		Folder:    sig.Folder,
	}
}
