// Package handoff is the boundary between the selection panel and whatever
// performs the upload. The panel produces a validated Batch; an Uploader
// takes it from there.
package handoff

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jask/filepanel/internal/selection"
)

var ErrEmptyBatch = errors.New("batch has no files")

// Batch is one submitted selection, in selection order.
type Batch struct {
	ID        string           `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	Files     []selection.File `json:"files"`
}

// TotalSize is the sum of all file sizes in bytes.
func (b Batch) TotalSize() int64 {
	var total int64
	for _, f := range b.Files {
		total += f.Size
	}
	return total
}

func NewBatch(files []selection.File, now time.Time) (Batch, error) {
	if len(files) == 0 {
		return Batch{}, ErrEmptyBatch
	}
	return Batch{
		ID:        uuid.NewString(),
		CreatedAt: now.UTC(),
		Files:     append([]selection.File(nil), files...),
	}, nil
}

// Uploader receives a finalized batch. Transport, retries and progress
// reporting are the implementation's business.
type Uploader interface {
	Upload(ctx context.Context, b Batch) error
}

type Format string

const (
	FormatJSON  Format = "json"
	FormatPaths Format = "paths"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatPaths:
		return f, nil
	default:
		return "", fmt.Errorf("unknown handoff format %q", s)
	}
}

// ManifestWriter hands the batch to a downstream process by writing it out,
// either as an indented JSON document or as one path per line.
type ManifestWriter struct {
	W      io.Writer
	Format Format
	Log    logrus.FieldLogger
}

func (m ManifestWriter) Upload(ctx context.Context, b Batch) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(b.Files) == 0 {
		return ErrEmptyBatch
	}
	var err error
	switch m.Format {
	case FormatPaths:
		err = writePaths(m.W, b)
	case FormatJSON, "":
		enc := json.NewEncoder(m.W)
		enc.SetIndent("", "  ")
		err = enc.Encode(b)
	default:
		err = fmt.Errorf("unknown handoff format %q", m.Format)
	}
	if err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	if m.Log != nil {
		m.Log.WithFields(logrus.Fields{
			"batch":  b.ID,
			"files":  len(b.Files),
			"bytes":  b.TotalSize(),
			"format": string(m.Format),
		}).Info("selection handed off")
	}
	return nil
}

func writePaths(w io.Writer, b Batch) error {
	bw := bufio.NewWriter(w)
	for _, f := range b.Files {
		line := f.Path
		if line == "" {
			line = f.Name
		}
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
