package geonorm

import (
	"fmt"

	"github.com/anthonynsimon/bild/imgio"
)

// decodable reports whether path holds an image we can actually decode.
func decodable(path string) error {
	if _, err := imgio.Open(path); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}
