package notifications

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidKind    = errors.New("invalid notification kind")
	ErrInvalidPayload = errors.New("invalid notification payload")
)

func (k Kind) IsValid() bool {
	switch k {
	case KindSuccess, KindError, KindInfo:
		return true
	default:
		return false
	}
}

// Validate performs the minimal checks a toast needs to be rendered.
func Validate(n Notification) error {
	if !n.Kind.IsValid() {
		return ErrInvalidKind
	}
	if strings.TrimSpace(n.VisitorID) == "" || strings.TrimSpace(n.Message) == "" {
		return ErrInvalidPayload
	}
	if n.DurationMs < 0 {
		return ErrInvalidPayload
	}
	return nil
}

// Encode is the pub/sub wire form of a notification.
func Encode(n Notification) ([]byte, error) {
	if err := Validate(n); err != nil {
		return nil, err
	}

	b, err := json.Marshal(n)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return b, nil
}

func Decode(b []byte) (Notification, error) {
	return DecodeFor("", b)
}

// DecodeFor is Decode with a fallback recipient, used when the payload
// omits visitorId and the visitor is known from the channel name.
func DecodeFor(visitorID string, b []byte) (Notification, error) {
	if len(b) == 0 {
		return Notification{}, ErrInvalidPayload
	}

	var n Notification
	if err := json.Unmarshal(b, &n); err != nil {
		return Notification{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if n.VisitorID == "" {
		n.VisitorID = visitorID
	}
	if err := Validate(n); err != nil {
		return Notification{}, err
	}
	return n, nil
}
