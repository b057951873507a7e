// Package image provides utilities for locating and decoding photos.
package image

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"io"
	"math/big"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	_ "github.com/gen2brain/avif" // Register AVIF format
	_ "golang.org/x/image/bmp"    // Register BMP format
	_ "golang.org/x/image/tiff"   // Register TIFF format
	_ "golang.org/x/image/webp"   // Register WebP format
)

// ErrDecodeFailure is returned when a file cannot be read or decoded as an image.
var ErrDecodeFailure = errors.New("image decode failed")

// maxPixels caps the decoded size of an image, guarding against files whose
// small encoded size expands to an enormous bitmap.
var maxPixels = 100_000_000

// FileLoader loads images from the local filesystem.
type FileLoader struct{}

// NewFileLoader creates a new FileLoader instance.
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// Load loads an image from a file path.
// Supported formats: JPEG, PNG, GIF, WebP, BMP, TIFF, AVIF.
// Every failure wraps ErrDecodeFailure.
func (l *FileLoader) Load(path string) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: image path cannot be empty", ErrDecodeFailure)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: image file not found: %s", ErrDecodeFailure, path)
		}
		return nil, fmt.Errorf("%w: failed to stat image file: %w", ErrDecodeFailure, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: path is a directory, not a file: %s", ErrDecodeFailure, path)
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecodeFailure, path, err)
	}
	if !strings.HasPrefix(mtype.String(), "image/") {
		return nil, fmt.Errorf("%w: %s is %s, not an image", ErrDecodeFailure, path, mtype.String())
	}

	file, err := os.Open(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open image file: %w", ErrDecodeFailure, err)
	}
	defer file.Close()

	cfg, format, err := image.DecodeConfig(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecodeFailure, path, err)
	}
	if cfg.Width*cfg.Height > maxPixels {
		return nil, fmt.Errorf("%w: %s image %dx%d exceeds %d pixels", ErrDecodeFailure, format, cfg.Width, cfg.Height, maxPixels)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind image file: %w", err)
	}

	img, _, err := Decode(file)
	return img, err
}

// Decode decodes an image from r, returning the format name.
// Any failure wraps ErrDecodeFailure.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, format, fmt.Errorf("%w (format: %s): %w", ErrDecodeFailure, format, err)
	}
	return img, format, nil
}

// ValidateImagePath checks that path is a directory or a file whose header
// decodes as a supported image. Failures on a file wrap ErrDecodeFailure.
func ValidateImagePath(path string) error {
	info, err := os.Stat(path)
	switch {
	case err != nil:
		return fmt.Errorf("%w: %w", ErrDecodeFailure, err)
	case info.IsDir():
		return nil
	}

	file, err := os.Open(path) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecodeFailure, err)
	}
	defer file.Close()

	if _, format, err := image.DecodeConfig(file); err != nil {
		return fmt.Errorf("%w: %s: unsupported or invalid image header (format: %q): %w", ErrDecodeFailure, path, format, err)
	}
	return nil
}

// SupportedImageExtensions returns a list of supported image file extensions.
func SupportedImageExtensions() []string {
	return []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp", ".tif", ".tiff", ".avif"}
}

// isImageFile checks if a file has a supported image extension.
func isImageFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return slices.Contains(SupportedImageExtensions(), ext)
}

// ScanDirectoryForImages scans a directory and returns all valid image files.
// It does not recurse into subdirectories, but follows symlinks.
func ScanDirectoryForImages(dirPath string) ([]string, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var imageFiles []string
	for _, entry := range entries {
		fullPath := filepath.Join(dirPath, entry.Name())

		// Skip entries we can't stat (broken symlinks, permission issues).
		info, err := os.Stat(fullPath)
		if err != nil || info.IsDir() {
			continue
		}

		if isImageFile(entry.Name()) {
			imageFiles = append(imageFiles, fullPath)
		}
	}

	if len(imageFiles) == 0 {
		return nil, fmt.Errorf("no supported image files found in directory: %s", dirPath)
	}

	return imageFiles, nil
}

// SelectRandomImage selects a random image from a list of image paths.
// Uses crypto/rand for cryptographically secure randomness.
func SelectRandomImage(imagePaths []string) (string, error) {
	if len(imagePaths) == 0 {
		return "", fmt.Errorf("image path list is empty")
	}

	maxIndex := big.NewInt(int64(len(imagePaths)))
	randomIndex, err := rand.Int(rand.Reader, maxIndex)
	if err != nil {
		// Fallback to using binary random bytes if crypto/rand.Int fails.
		var buf [8]byte
		if _, err := rand.Read(buf[:]); err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		index := int(binary.LittleEndian.Uint64(buf[:]) % uint64(len(imagePaths)))
		return imagePaths[index], nil
	}

	return imagePaths[randomIndex.Int64()], nil
}

// ResolveImagePath resolves a path that could be a file or directory.
// A directory resolves to a random image inside it; a file resolves to itself
// once its header is known to decode.
func ResolveImagePath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("image path cannot be empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("failed to access path: %w", err)
	}

	if !info.IsDir() {
		if err := ValidateImagePath(path); err != nil {
			return "", err
		}
		return path, nil
	}

	imageFiles, err := ScanDirectoryForImages(path)
	if err != nil {
		return "", err
	}

	return SelectRandomImage(imageFiles)
}
