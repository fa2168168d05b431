package pubsub

import (
	"encoding/json"
	"strconv"

	"houses/internal/domain/service"
	"houses/internal/errors"
)

// message is a house event in the shape both transports send: a JSON payload
// plus the attributes subscribers filter on without decoding it.
type message struct {
	id         string
	data       []byte
	attributes map[string]string
}

func encodeEvent(event *service.HouseEvent) (*message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode house event")
	}

	attributes := map[string]string{
		"event_id":   event.EventID,
		"event_type": event.Type,
		"house_id":   strconv.FormatInt(event.HouseID, 10),
		"user_id":    event.UserID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return &message{id: event.EventID, data: data, attributes: attributes}, nil
}
