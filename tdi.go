// Package tdi provides a typed, self-describing record abstraction for
// programmable lookup tables. Callers address fields by numeric
// identifier against a runtime schema instead of a compiled-in struct
// layout, populate a record through the tabledata accessors, and hand it
// to its owning Table or Learn object.
//
// This package re-exports the field kinds and statuses of the
// sub-packages and hosts the owning collaborators that allocate and
// release records.
package tdi

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/dmytroxshevchuk/tdi/field"
	"github.com/dmytroxshevchuk/tdi/schema"
	"github.com/dmytroxshevchuk/tdi/tabledata"
)

// Kind represents the kind of value that is held in a data field.
type Kind = field.Kind

const (
	KindUnknown    = field.KindUnknown
	KindBool       = field.KindBool
	KindUint64     = field.KindUint64
	KindFloat      = field.KindFloat
	KindString     = field.KindString
	KindBytes      = field.KindBytes
	KindContainer  = field.KindContainer
	KindBoolList   = field.KindBoolList
	KindIntList    = field.KindIntList
	KindStringList = field.KindStringList
	KindUint64List = field.KindUint64List
)

// Record is a table data record.
type Record = tabledata.Record

// Schema is the field layout of a record type.
type Schema = schema.Schema

// FieldDescr describes a single field of a record.
type FieldDescr = schema.FieldDescr

// Statuses returned by record and owner operations.
var (
	ErrUnknownField    = tabledata.ErrUnknownField
	ErrInactiveField   = tabledata.ErrInactiveField
	ErrTypeMismatch    = tabledata.ErrTypeMismatch
	ErrValueOutOfRange = tabledata.ErrValueOutOfRange
	ErrSizeMismatch    = tabledata.ErrSizeMismatch
	ErrNotAContainer   = tabledata.ErrNotAContainer
	ErrNotSet          = tabledata.ErrNotSet
	ErrNoParent        = tabledata.ErrNoParent
	ErrReleased        = tabledata.ErrReleased
	ErrOwned           = tabledata.ErrOwned
)

// Table owns records for one programmable table. It allocates them,
// consumes them on commit paths outside this library, and releases them.
type Table struct {
	name      string
	sch       *schema.Schema
	actionID  uint32
	hasAction bool
	log       zerolog.Logger

	mu    sync.Mutex
	owned map[*tabledata.Record]struct{}
}

// TableOption adjusts a Table.
type TableOption func(*Table)

// WithTableLogger sets the logger used for allocation and release
// events. Defaults to a no-op logger.
func WithTableLogger(l zerolog.Logger) TableOption {
	return func(t *Table) {
		t.log = l
	}
}

// WithTableAction marks the table as action-parameterized. Records it
// allocates carry the action identifier.
func WithTableAction(id uint32) TableOption {
	return func(t *Table) {
		t.actionID = id
		t.hasAction = true
	}
}

// NewTable creates a table owner for sch.
func NewTable(name string, sch *schema.Schema, opts ...TableOption) *Table {
	t := &Table{
		name:  name,
		sch:   sch,
		log:   zerolog.Nop(),
		owned: map[*tabledata.Record]struct{}{},
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Name returns the table name.
func (t *Table) Name() string {
	return t.name
}

// Schema returns the table's record layout.
func (t *Table) Schema() *schema.Schema {
	return t.sch
}

// AllocateData allocates a record owned by this table. With no field
// identifiers the record covers the full field set; otherwise only the
// listed subset is active.
func (t *Table) AllocateData(fieldIDs ...uint32) (*tabledata.Record, error) {
	opts := []tabledata.Option{tabledata.WithParentTable(t)}
	if len(fieldIDs) > 0 {
		opts = append(opts, tabledata.WithFields(fieldIDs...))
	}
	if t.hasAction {
		opts = append(opts, tabledata.WithActionID(t.actionID))
	}
	r, err := tabledata.New(t.sch, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "table %q", t.name)
	}

	t.mu.Lock()
	t.owned[r] = struct{}{}
	t.mu.Unlock()

	t.log.Debug().Str("table", t.name).Int("fields", len(fieldIDs)).Msg("allocated table data record")
	return r, nil
}

// Release destroys a record this table allocated, recursively releasing
// its container children.
func (t *Table) Release(r *tabledata.Record) error {
	t.mu.Lock()
	_, ok := t.owned[r]
	delete(t.owned, r)
	t.mu.Unlock()

	if !ok {
		return errors.Errorf("record was not allocated by table %q", t.name)
	}
	if err := r.Release(); err != nil {
		return errors.Wrapf(err, "table %q", t.name)
	}
	t.log.Debug().Str("table", t.name).Msg("released table data record")
	return nil
}

// Learn owns records produced for learned-event notifications.
type Learn struct {
	name string
	sch  *schema.Schema
	log  zerolog.Logger

	mu    sync.Mutex
	owned map[*tabledata.Record]struct{}
}

// LearnOption adjusts a Learn.
type LearnOption func(*Learn)

// WithLearnLogger sets the logger used for allocation and release
// events. Defaults to a no-op logger.
func WithLearnLogger(l zerolog.Logger) LearnOption {
	return func(lr *Learn) {
		lr.log = l
	}
}

// NewLearn creates a learn owner for sch.
func NewLearn(name string, sch *schema.Schema, opts ...LearnOption) *Learn {
	lr := &Learn{
		name:  name,
		sch:   sch,
		log:   zerolog.Nop(),
		owned: map[*tabledata.Record]struct{}{},
	}
	for _, o := range opts {
		o(lr)
	}
	return lr
}

// Name returns the learn object name.
func (l *Learn) Name() string {
	return l.name
}

// Schema returns the learn object's record layout.
func (l *Learn) Schema() *schema.Schema {
	return l.sch
}

// AllocateData allocates a record owned by this learn object.
func (l *Learn) AllocateData(fieldIDs ...uint32) (*tabledata.Record, error) {
	opts := []tabledata.Option{tabledata.WithParentLearn(l)}
	if len(fieldIDs) > 0 {
		opts = append(opts, tabledata.WithFields(fieldIDs...))
	}
	r, err := tabledata.New(l.sch, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "learn %q", l.name)
	}

	l.mu.Lock()
	l.owned[r] = struct{}{}
	l.mu.Unlock()

	l.log.Debug().Str("learn", l.name).Int("fields", len(fieldIDs)).Msg("allocated learn data record")
	return r, nil
}

// Release destroys a record this learn object allocated.
func (l *Learn) Release(r *tabledata.Record) error {
	l.mu.Lock()
	_, ok := l.owned[r]
	delete(l.owned, r)
	l.mu.Unlock()

	if !ok {
		return errors.Errorf("record was not allocated by learn %q", l.name)
	}
	if err := r.Release(); err != nil {
		return errors.Wrapf(err, "learn %q", l.name)
	}
	l.log.Debug().Str("learn", l.name).Msg("released learn data record")
	return nil
}
