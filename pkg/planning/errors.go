package planning

import (
	"errors"
	"fmt"
	"strings"
)

// Taxonomy construction errors.
var (
	ErrEmptyRowCode     = errors.New("row code must not be empty")
	ErrUnknownRowKind   = errors.New("unknown row kind")
	ErrDuplicateRowCode = errors.New("duplicate row code")
)

// Collaborator failure kinds. internal/api maps transport errors and HTTP
// statuses onto these; the gateway passes them through unchanged so callers
// can show kind-specific messages. None of them is retried automatically.
var (
	ErrNetwork    = errors.New("backend unreachable")
	ErrAuth       = errors.New("not authorized")
	ErrNotFound   = errors.New("plan or branch not found")
	ErrValidation = errors.New("backend rejected the submitted data")
)

// Gateway state errors.
var (
	ErrSaveInProgress = errors.New("a save is already in progress")
	ErrStaleLoad      = errors.New("load result superseded by a newer load")
)

// UnmappedDataError reports item rows that carry a non-zero amount but do
// not resolve to a composite identifier. It is raised before any network
// call: a save that silently dropped such rows would lose typed data.
type UnmappedDataError struct {
	// Codes lists the offending row codes in taxonomy order.
	Codes []string
}

func (e *UnmappedDataError) Error() string {
	return fmt.Sprintf("rows without a composite identifier hold non-zero amounts: %s",
		strings.Join(e.Codes, ", "))
}
