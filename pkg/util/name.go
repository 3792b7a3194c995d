package util

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// OutputName derives a sibling path for a transform result:
// ("dir/picture.png", "grayscale") -> "dir/picture.grayscale.png".
func OutputName(src, op string) string {
	ext := filepath.Ext(src)
	base := strings.TrimSuffix(src, ext)
	return fmt.Sprintf("%s.%s%s", base, op, ext)
}

// UniqueOutputName is OutputName, falling back to a uuid-suffixed path
// when the derived one already exists on disk.
func UniqueOutputName(src, op string) string {
	name := OutputName(src, op)
	if _, err := os.Stat(name); os.IsNotExist(err) {
		return name
	}
	ext := filepath.Ext(src)
	base := strings.TrimSuffix(src, ext)
	return fmt.Sprintf("%s.%s.%s%s", base, op, uuid.NewString()[:8], ext)
}
