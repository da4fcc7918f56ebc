package app

import (
	"context"
	"errors"
)

// ErrSlotEmpty reports that the slot holds no value yet.
var ErrSlotEmpty = errors.New("slot is empty")

// Slot is a single named entry in a durable key-value store. The cart is
// serialized into it whole; there is no partial update and no versioning.
type Slot interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
}
