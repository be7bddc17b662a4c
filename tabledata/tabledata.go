// Package tabledata implements the typed, self-describing record object
// used to carry per-entry field values to and from a programmable lookup
// table. Fields are addressed by numeric identifier and validated against
// a runtime schema rather than a compiled-in struct layout.
//
// A Record is not internally synchronized. It is a transient argument
// object built up by one caller at a time before being handed to its
// owning table or learn object; concurrent use of one instance must be
// serialized by the caller. Distinct instances are independent.
package tabledata

import (
	"github.com/pkg/errors"

	"github.com/dmytroxshevchuk/tdi/field"
	"github.com/dmytroxshevchuk/tdi/schema"
)

// TableRef is a non-owning view of the table that allocated a record.
type TableRef interface {
	// Name returns the table name.
	Name() string
}

// LearnRef is a non-owning view of the learn object that allocated a
// record.
type LearnRef interface {
	// Name returns the learn object name.
	Name() string
}

// slot holds the current value of one active field, tagged by the kind
// declared in the schema. Only the member matching the kind is valid.
type slot struct {
	kind field.Kind

	raw   []byte // KindUint64 and KindBytes, network order
	b     bool
	f     float32
	str   string
	ints  []uint32
	bools []bool
	strs  []string
	u64s  []uint64
	recs  []*Record // KindContainer, owned by this record
}

// Record holds field values for one table entry or learned event.
// Created through an owning Table/Learn allocation or through
// AllocateContainer on a parent record.
type Record struct {
	schema *schema.Schema

	slots map[uint32]*slot

	// allocated is the field subset this record was created for. Fixed at
	// allocation time.
	allocated map[uint32]struct{}
	full      bool

	// oneofActive maps a oneof group to its single active member, present
	// only once some member of the group has been written.
	oneofActive map[uint32]uint32

	actionID  uint32
	hasAction bool

	parentTable TableRef
	parentLearn LearnRef

	// owner is the parent record for container children handed over with
	// SetContainers. nil while the caller still owns the record.
	owner *Record

	released bool
}

// Option adjusts how a Record is allocated.
type Option func(*Record) error

// WithFields allocates the record for only the listed field subset. All
// other schema fields reject access with ErrInactiveField.
func WithFields(ids ...uint32) Option {
	return func(r *Record) error {
		r.full = false
		r.allocated = make(map[uint32]struct{}, len(ids))
		for _, id := range ids {
			if r.schema.FieldByID(id) == nil {
				return errors.Wrapf(ErrUnknownField, "field %d is not in schema %q", id, r.schema.Name)
			}
			r.allocated[id] = struct{}{}
		}
		return nil
	}
}

// WithActionID tags the record with the action it parameterizes.
func WithActionID(id uint32) Option {
	return func(r *Record) error {
		r.actionID = id
		r.hasAction = true
		return nil
	}
}

// WithParentTable records the owning table. Mutually exclusive with
// WithParentLearn.
func WithParentTable(t TableRef) Option {
	return func(r *Record) error {
		if r.parentLearn != nil {
			return errors.New("record cannot have both a parent table and a parent learn")
		}
		r.parentTable = t
		return nil
	}
}

// WithParentLearn records the owning learn object. Mutually exclusive
// with WithParentTable.
func WithParentLearn(l LearnRef) Option {
	return func(r *Record) error {
		if r.parentTable != nil {
			return errors.New("record cannot have both a parent table and a parent learn")
		}
		r.parentLearn = l
		return nil
	}
}

// New allocates a record for sch. Without options the record covers the
// full field set.
func New(sch *schema.Schema, opts ...Option) (*Record, error) {
	if sch == nil {
		return nil, errors.New("schema must not be nil")
	}
	r := &Record{
		schema:      sch,
		slots:       map[uint32]*slot{},
		full:        true,
		oneofActive: map[uint32]uint32{},
	}
	for _, o := range opts {
		if err := o(r); err != nil {
			return nil, err
		}
	}
	if r.full {
		r.allocated = make(map[uint32]struct{}, len(sch.Fields))
		for _, f := range sch.Fields {
			r.allocated[f.ID] = struct{}{}
		}
	}
	return r, nil
}

// Schema returns the schema this record was allocated against.
func (r *Record) Schema() *schema.Schema {
	return r.schema
}

// IsActive reports whether a field is part of this record's active
// subset. A field knocked out by a oneof sibling reports false. Fails
// only if the field identifier is not in the schema.
func (r *Record) IsActive(id uint32) (bool, error) {
	if r.released {
		return false, errors.Wrap(ErrReleased, "IsActive")
	}
	fd := r.schema.FieldByID(id)
	if fd == nil {
		return false, errors.Wrapf(ErrUnknownField, "field %d is not in schema %q", id, r.schema.Name)
	}
	if _, ok := r.allocated[id]; !ok {
		return false, nil
	}
	return !r.oneofSuppressed(fd), nil
}

// ActionID returns the action identifier this record parameterizes.
// Records of tables without actions return ErrNotSet.
func (r *Record) ActionID() (uint32, error) {
	if r.released {
		return 0, errors.Wrap(ErrReleased, "ActionID")
	}
	if !r.hasAction {
		return 0, errors.Wrapf(ErrNotSet, "record of %q carries no action ID", r.schema.Name)
	}
	return r.actionID, nil
}

// ParentTable returns the owning table. The view is non-owning; the
// record must not outlive the table. Returns ErrNoParent if the record
// is owned by a learn object or by nothing.
func (r *Record) ParentTable() (TableRef, error) {
	if r.released {
		return nil, errors.Wrap(ErrReleased, "ParentTable")
	}
	if r.parentTable == nil {
		return nil, errors.Wrapf(ErrNoParent, "record of %q has no parent table", r.schema.Name)
	}
	return r.parentTable, nil
}

// ParentLearn returns the owning learn object. Returns ErrNoParent if
// the record is owned by a table or by nothing.
func (r *Record) ParentLearn() (LearnRef, error) {
	if r.released {
		return nil, errors.Wrap(ErrReleased, "ParentLearn")
	}
	if r.parentLearn == nil {
		return nil, errors.Wrapf(ErrNoParent, "record of %q has no parent learn", r.schema.Name)
	}
	return r.parentLearn, nil
}

// Release destroys the record and, recursively, every container child it
// owns. Records owned by a parent record return ErrOwned; they are
// released with their parent. Any use after Release returns ErrReleased.
func (r *Record) Release() error {
	if r.released {
		return errors.Wrap(ErrReleased, "Release")
	}
	if r.owner != nil {
		return errors.Wrapf(ErrOwned, "record of %q", r.schema.Name)
	}
	r.release()
	return nil
}

// release tears the record down without ownership checks. Used for both
// explicit Release and the consume-on-failure container contract.
func (r *Record) release() {
	if r.released {
		return
	}
	for _, s := range r.slots {
		for _, c := range s.recs {
			c.owner = nil
			c.release()
		}
	}
	r.slots = nil
	r.allocated = nil
	r.oneofActive = nil
	r.released = true
}

// checkField validates a field identifier for an operation. It enforces,
// in order: record liveness, schema membership, allocation-subset
// membership and, for reads, oneof suppression. If kinds are given the
// field's declared kind must be among them.
func (r *Record) checkField(id uint32, forWrite bool, kinds ...field.Kind) (*schema.FieldDescr, error) {
	if r.released {
		return nil, errors.Wrapf(ErrReleased, "field %d", id)
	}
	fd := r.schema.FieldByID(id)
	if fd == nil {
		return nil, errors.Wrapf(ErrUnknownField, "field %d is not in schema %q", id, r.schema.Name)
	}
	if _, ok := r.allocated[id]; !ok {
		return nil, errors.Wrapf(ErrInactiveField, "field %s(%d) is outside the allocated subset", fd.Name, id)
	}
	// A write to a oneof member that a sibling knocked out re-activates
	// it, so suppression only gates reads.
	if !forWrite && r.oneofSuppressed(fd) {
		return nil, errors.Wrapf(ErrInactiveField, "field %s(%d) was deactivated by its oneof group", fd.Name, id)
	}
	if len(kinds) == 0 {
		return fd, nil
	}
	for _, k := range kinds {
		if fd.Kind == k {
			return fd, nil
		}
	}
	return nil, errors.Wrapf(ErrTypeMismatch, "field %s(%d) is %v", fd.Name, id, fd.Kind)
}

// oneofSuppressed reports whether a sibling in fd's oneof group is the
// group's active member.
func (r *Record) oneofSuppressed(fd *schema.FieldDescr) bool {
	if fd.OneofGroup == schema.NoOneof {
		return false
	}
	m, ok := r.oneofActive[fd.OneofGroup]
	return ok && m != fd.ID
}

// commit stores a fully validated slot and applies oneof exclusion.
// Nothing before this point may mutate the record, so a failed set stays
// invisible.
func (r *Record) commit(fd *schema.FieldDescr, s *slot) {
	if fd.OneofGroup != schema.NoOneof {
		if prev, ok := r.oneofActive[fd.OneofGroup]; ok && prev != fd.ID {
			// The deactivated sibling drops its value; a later read
			// reports ErrInactiveField, never the stale value.
			r.dropSlot(prev)
		}
		r.oneofActive[fd.OneofGroup] = fd.ID
	}
	r.dropSlot(fd.ID)
	r.slots[fd.ID] = s
}

// dropSlot removes a stored value, releasing container children the slot
// owned.
func (r *Record) dropSlot(id uint32) {
	s, ok := r.slots[id]
	if !ok {
		return
	}
	for _, c := range s.recs {
		c.owner = nil
		c.release()
	}
	delete(r.slots, id)
}

// getSlot fetches the stored value for a read, enforcing the full
// validation chain plus the written-before policy.
func (r *Record) getSlot(id uint32, kinds ...field.Kind) (*schema.FieldDescr, *slot, error) {
	fd, err := r.checkField(id, false, kinds...)
	if err != nil {
		return nil, nil, err
	}
	s, ok := r.slots[id]
	if !ok {
		return nil, nil, errors.Wrapf(ErrNotSet, "field %s(%d) was never written", fd.Name, id)
	}
	return fd, s, nil
}
