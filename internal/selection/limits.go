package selection

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

const (
	DefaultMaxFiles    = 10
	DefaultMaxFileSize = 10 * 1024 * 1024
)

// DefaultAllowedTypes is the PDF/JPEG allow-list. image/jpg is not a
// registered type but some platforms report it, so it is accepted as well.
var DefaultAllowedTypes = []string{"application/pdf", "image/jpeg", "image/jpg"}

// Limits bounds what a selection may hold.
type Limits struct {
	MaxFiles     int
	MaxFileSize  int64
	AllowedTypes []string
}

func DefaultLimits() Limits {
	return Limits{
		MaxFiles:     DefaultMaxFiles,
		MaxFileSize:  DefaultMaxFileSize,
		AllowedTypes: slices.Clone(DefaultAllowedTypes),
	}
}

func (l Limits) Validate() error {
	var errs []error
	if l.MaxFiles <= 0 {
		errs = append(errs, fmt.Errorf("max files must be positive, got %d", l.MaxFiles))
	}
	if l.MaxFileSize <= 0 {
		errs = append(errs, fmt.Errorf("max file size must be positive, got %d", l.MaxFileSize))
	}
	if len(l.AllowedTypes) == 0 {
		errs = append(errs, errors.New("allowed types must not be empty"))
	}
	for _, t := range l.AllowedTypes {
		if strings.TrimSpace(t) == "" || !strings.Contains(t, "/") {
			errs = append(errs, fmt.Errorf("invalid mime type %q", t))
		}
	}
	return errors.Join(errs...)
}

// Allows reports whether mimeType is on the allow-list. The comparison is
// exact, matching what the platform reported for the file.
func (l Limits) Allows(mimeType string) bool {
	return slices.Contains(l.AllowedTypes, mimeType)
}

// MaxFileSizeMB is the byte limit expressed in binary megabytes.
func (l Limits) MaxFileSizeMB() float64 {
	return float64(l.MaxFileSize) / 1024 / 1024
}

func (l Limits) maxFileSizeLabel() string {
	return strconv.FormatFloat(l.MaxFileSizeMB(), 'f', -1, 64) + "MB"
}

// TypeLabels returns display names for the allow-list in order, with
// aliases collapsed (image/jpeg and image/jpg both read "JPEG").
func (l Limits) TypeLabels() []string {
	out := make([]string, 0, len(l.AllowedTypes))
	for _, t := range l.AllowedTypes {
		label := typeLabel(t)
		if label == "" || slices.Contains(out, label) {
			continue
		}
		out = append(out, label)
	}
	return out
}

func typeLabel(mimeType string) string {
	_, sub, ok := strings.Cut(strings.TrimSpace(mimeType), "/")
	if !ok || sub == "" {
		return ""
	}
	if i := strings.IndexAny(sub, ";+"); i >= 0 {
		sub = sub[:i]
	}
	sub = strings.ToUpper(sub)
	switch sub {
	case "JPG":
		return "JPEG"
	case "TIF":
		return "TIFF"
	}
	return sub
}

func joinLabels(labels []string) string {
	switch len(labels) {
	case 0:
		return ""
	case 1:
		return labels[0]
	case 2:
		return labels[0] + " and " + labels[1]
	}
	return strings.Join(labels[:len(labels)-1], ", ") + " and " + labels[len(labels)-1]
}
