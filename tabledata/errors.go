package tabledata

import (
	"github.com/pkg/errors"

	"github.com/dmytroxshevchuk/tdi/internal/codec"
)

// Statuses returned by record operations. Callers match them with
// errors.Is; the wrapped message carries the field context.
var (
	// ErrUnknownField indicates a field identifier that is not present in
	// the record's schema.
	ErrUnknownField = errors.New("field ID is not present in the schema")
	// ErrInactiveField indicates a field that is schema-valid but not part
	// of this record's active subset.
	ErrInactiveField = errors.New("field is not active for this record")
	// ErrTypeMismatch indicates an accessor whose kind does not match the
	// field's declared kind.
	ErrTypeMismatch = errors.New("accessor kind does not match the field's declared kind")
	// ErrValueOutOfRange indicates a scalar value that exceeds the field's
	// declared bit width.
	ErrValueOutOfRange = codec.ErrValueOutOfRange
	// ErrSizeMismatch indicates a byte buffer whose size is not the
	// ceiling-byte width of the field.
	ErrSizeMismatch = codec.ErrSizeMismatch
	// ErrNotAContainer indicates a container-only operation on a field of
	// another kind.
	ErrNotAContainer = errors.New("field is not a container")
	// ErrNotSet indicates a read of a field that was never written.
	ErrNotSet = errors.New("field has not been set")
	// ErrNoParent indicates a parent accessor called on a record with no
	// parent of that type.
	ErrNoParent = errors.New("record has no parent of the requested type")
	// ErrReleased indicates use of a record handle after the record was
	// released or consumed by an ownership transfer.
	ErrReleased = errors.New("record has been released and cannot be used")
	// ErrOwned indicates an attempt to release a record that is owned by
	// its parent record. Owned records are released with their parent.
	ErrOwned = errors.New("record is owned by its parent record")
)
