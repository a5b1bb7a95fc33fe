// Package source lists local files and describes them for selection. It is
// the terminal stand-in for a platform file dialog: it reports name, size
// and content type, and leaves reading the bytes to whoever receives the
// final selection.
package source

import (
	"cmp"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/jask/filepanel/internal/selection"
)

const fallbackMIMEType = "application/octet-stream"

type Entry struct {
	Name     string
	Path     string
	IsDir    bool
	Size     int64
	MIMEType string
}

// File converts a file entry into a selection candidate.
func (e Entry) File() selection.File {
	return selection.File{Name: e.Name, Size: e.Size, MIMEType: e.MIMEType, Path: e.Path}
}

type Scanner struct {
	ShowHidden bool
}

// Scan lists dir with directories first, each group sorted by name without
// regard to case. Content types are sniffed from the file header.
func (s Scanner) Scan(ctx context.Context, dir string) ([]Entry, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", dir, err)
	}
	dirents, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", abs, err)
	}
	out := make([]Entry, 0, len(dirents))
	for _, de := range dirents {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !s.ShowHidden && strings.HasPrefix(de.Name(), ".") {
			continue
		}
		entry, ok := describeDirEntry(abs, de)
		if !ok {
			continue
		}
		out = append(out, entry)
	}
	slices.SortStableFunc(out, func(a, b Entry) int {
		if a.IsDir != b.IsDir {
			if a.IsDir {
				return -1
			}
			return 1
		}
		return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
	return out, nil
}

func describeDirEntry(dir string, de fs.DirEntry) (Entry, bool) {
	path := filepath.Join(dir, de.Name())
	info, err := de.Info()
	if err != nil {
		return Entry{}, false
	}
	if info.Mode()&fs.ModeSymlink != 0 {
		// follow links so a linked directory can be browsed
		if info, err = os.Stat(path); err != nil {
			return Entry{}, false
		}
	}
	if info.IsDir() {
		return Entry{Name: de.Name(), Path: path, IsDir: true}, true
	}
	if !info.Mode().IsRegular() {
		return Entry{}, false
	}
	return Entry{Name: de.Name(), Path: path, Size: info.Size(), MIMEType: DetectType(path)}, true
}

// Describe builds a selection candidate for a single regular file.
func Describe(path string) (selection.File, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return selection.File{}, fmt.Errorf("resolve %s: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return selection.File{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return selection.File{}, fmt.Errorf("%s is not a regular file", path)
	}
	return selection.File{
		Name:     filepath.Base(abs),
		Size:     info.Size(),
		MIMEType: DetectType(abs),
		Path:     abs,
	}, nil
}

// DetectType sniffs the media type of the file at path, without parameters
// such as charset. Unreadable files report application/octet-stream.
func DetectType(path string) string {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return fallbackMIMEType
	}
	base, _, _ := strings.Cut(mt.String(), ";")
	if base = strings.TrimSpace(base); base == "" {
		return fallbackMIMEType
	}
	return base
}
