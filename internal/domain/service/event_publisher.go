package service

import (
	"context"
	"time"
)

// HouseEvent represents a change to the listing set, consumed asynchronously
// (search indexing, notifications).
type HouseEvent struct {
	RequestID string    `json:"request_id,omitempty"` // For distributed tracing
	EventID   string    `json:"event_id"`
	Type      string    `json:"type"`
	HouseID   int64     `json:"house_id"`
	UserID    string    `json:"user_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Address   string    `json:"address"`
	Bedrooms  int       `json:"bedrooms"`
	CreatedAt time.Time `json:"created_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishHouseEvent publishes a house event for async processing
	PublishHouseEvent(ctx context.Context, event *HouseEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
