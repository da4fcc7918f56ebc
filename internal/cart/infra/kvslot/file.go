package kvslot

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/furnistore/storefront/internal/cart/app"
)

// FileSlot stores the cart as a JSON file in a state directory, the durable
// local store when no redis is around.
type FileSlot struct {
	path string
}

func NewFileSlot(dir string) (*FileSlot, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cart state dir: %w", err)
	}
	return &FileSlot{path: filepath.Join(dir, slotKey+".json")}, nil
}

func (s *FileSlot) Read(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, app.ErrSlotEmpty
		}
		return nil, fmt.Errorf("slot read: %w", err)
	}
	return data, nil
}

func (s *FileSlot) Write(_ context.Context, data []byte) error {
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("slot write: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("slot write: %w", err)
	}
	return nil
}
