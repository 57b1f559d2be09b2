// Package filex reads local files that are attached to listings.
package filex

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
)

// MaxImageSize is the upload limit for a single listing image.
const MaxImageSize = 5 << 20

var (
	ErrTooLarge    = errors.New("file too large")
	ErrNotAnImage  = errors.New("not an image")
	imageExtension = map[string]struct{}{
		".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {}, ".webp": {},
	}
)

// IsImage reports whether name has an image extension the API accepts.
func IsImage(name string) bool {
	_, ok := imageExtension[strings.ToLower(filepath.Ext(name))]
	return ok
}

// ReadImage reads the image at path and returns its base name and contents.
// Files over max bytes or without an image extension are rejected.
func ReadImage(path string, max int64) (string, []byte, error) {
	name := filepath.Base(path)
	if !IsImage(name) {
		return "", nil, fmt.Errorf("%s: %w", name, ErrNotAnImage)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, max+1))
	if err != nil {
		return "", nil, fmt.Errorf("read %s: %w", path, err)
	}
	if int64(len(data)) > max {
		return "", nil, fmt.Errorf("%s exceeds %s: %w", name, humanize.IBytes(uint64(max)), ErrTooLarge)
	}
	return name, data, nil
}
