package selection

import (
	"errors"
	"fmt"
)

// Kind classifies why a selection attempt was rejected.
type Kind int

const (
	KindCountExceeded Kind = iota + 1
	KindSizeExceeded
	KindTypeNotAllowed
)

func (k Kind) String() string {
	switch k {
	case KindCountExceeded:
		return "count_exceeded"
	case KindSizeExceeded:
		return "size_exceeded"
	case KindTypeNotAllowed:
		return "type_not_allowed"
	default:
		return "unknown"
	}
}

var (
	ErrCountExceeded   = errors.New("too many files")
	ErrSizeExceeded    = errors.New("file too large")
	ErrTypeNotAllowed  = errors.New("file type not allowed")
	ErrNothingToSubmit = errors.New("no files selected")
)

// ValidationError is the rejection of one submit attempt. Message is the
// text shown to the user; Files names the offending candidates (empty for
// count rejections, which concern the whole batch).
type ValidationError struct {
	Kind    Kind
	Message string
	Files   []string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	switch e.Kind {
	case KindCountExceeded:
		return target == ErrCountExceeded
	case KindSizeExceeded:
		return target == ErrSizeExceeded
	case KindTypeNotAllowed:
		return target == ErrTypeNotAllowed
	}
	return false
}

func countExceeded(l Limits) *ValidationError {
	return &ValidationError{
		Kind:    KindCountExceeded,
		Message: fmt.Sprintf("You can only upload a maximum of %d files.", l.MaxFiles),
	}
}

func sizeExceeded(l Limits, names []string) *ValidationError {
	return &ValidationError{
		Kind:    KindSizeExceeded,
		Message: fmt.Sprintf("File must not exceed %s in size.", l.maxFileSizeLabel()),
		Files:   names,
	}
}

func typeNotAllowed(l Limits, names []string) *ValidationError {
	return &ValidationError{
		Kind:    KindTypeNotAllowed,
		Message: fmt.Sprintf("Only %s files are allowed.", joinLabels(l.TypeLabels())),
		Files:   names,
	}
}
