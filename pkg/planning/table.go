package planning

import (
	"errors"
	"fmt"
)

// TableKind selects a planning table family: each kind has its own taxonomy,
// mapping seed, and endpoint payload field on the backend.
type TableKind string

// Planning table kinds.
const (
	TableCost    TableKind = "cost"
	TableEarning TableKind = "earning"
)

// ErrUnknownTableKind rejects table names outside cost/earning.
var ErrUnknownTableKind = errors.New("unknown table kind")

// ParseTableKind validates a user-supplied table name.
func ParseTableKind(s string) (TableKind, error) {
	switch TableKind(s) {
	case TableCost, TableEarning:
		return TableKind(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTableKind, s)
}
