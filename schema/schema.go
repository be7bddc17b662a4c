// Package schema holds the runtime field layout used to address record
// fields by numeric identifier. A Schema is built once, validated, and is
// read-only afterwards; record instances only ever query it.
package schema

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/dmytroxshevchuk/tdi/field"
	"github.com/dmytroxshevchuk/tdi/internal/codec"
)

// NoOneof marks a field that does not belong to any oneof group.
const NoOneof uint32 = 0

// FieldDescr describes a single field of a record.
type FieldDescr struct {
	// ID is the field identifier, unique within its Schema.
	ID uint32
	// Name is the human readable field name.
	Name string
	// Kind is the kind of value the field holds.
	Kind field.Kind
	// Width is the field size in bits. Required for uint64 and bytes
	// kinds, ignored for everything else.
	Width int
	// OneofGroup identifies the oneof group the field belongs to.
	// NoOneof means the field is not part of any group.
	OneofGroup uint32
	// Container describes the child record layout. Set if and only if
	// Kind == KindContainer.
	Container *Schema
}

// Validate checks that the descriptor is internally consistent.
func (f *FieldDescr) Validate() error {
	if f.ID == 0 {
		return errors.Errorf(".%s: field ID 0 is reserved", f.Name)
	}
	switch f.Kind {
	case field.KindUnknown:
		return errors.Errorf(".%s: kind is unknown", f.Name)
	case field.KindUint64:
		if f.Width < 1 || f.Width > codec.MaxScalarWidth {
			return errors.Errorf(".%s: uint64 field width must be 1..%d bits, had %d", f.Name, codec.MaxScalarWidth, f.Width)
		}
	case field.KindBytes:
		if f.Width < 1 {
			return errors.Errorf(".%s: bytes field width must be >= 1 bit, had %d", f.Name, f.Width)
		}
	case field.KindContainer:
		if f.Container == nil {
			return errors.Errorf(".%s: kind was %v, but had Container == nil", f.Name, f.Kind)
		}
		if err := f.Container.validate(); err != nil {
			return errors.Wrapf(err, ".%s", f.Name)
		}
	}
	if f.Kind != field.KindContainer && f.Container != nil {
		return errors.Errorf(".%s: kind was %v, but had a Container schema", f.Name, f.Kind)
	}
	return nil
}

// Schema is the full field layout for one record type.
type Schema struct {
	// Name of the record type.
	Name string
	// Fields are the descriptors for all fields, in declaration order.
	Fields []*FieldDescr

	byID map[uint32]*FieldDescr
}

// New builds a Schema from field descriptors and validates it.
func New(name string, fields ...*FieldDescr) (*Schema, error) {
	s := &Schema{
		Name:   name,
		Fields: fields,
		byID:   make(map[uint32]*FieldDescr, len(fields)),
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	for _, f := range fields {
		if _, ok := s.byID[f.ID]; ok {
			return nil, errors.Errorf("schema %q: duplicate field ID %d", name, f.ID)
		}
		s.byID[f.ID] = f
	}
	return s, nil
}

// MustNew is like New but panics on an invalid layout. Meant for
// schemas declared in code.
func MustNew(name string, fields ...*FieldDescr) *Schema {
	s, err := New(name, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Schema) validate() error {
	for _, entry := range s.Fields {
		if err := entry.Validate(); err != nil {
			return errors.Wrapf(err, "schema %q", s.Name)
		}
	}
	return nil
}

// FieldByID retrieves the FieldDescr for a field identifier. Returns nil
// if the identifier is not part of this schema.
func (s *Schema) FieldByID(id uint32) *FieldDescr {
	return s.byID[id]
}

// FieldByName retrieves the FieldDescr by name. If the name can't be
// found, it panics.
func (s *Schema) FieldByName(name string) *FieldDescr {
	for _, f := range s.Fields {
		if f.Name == name {
			return f
		}
	}
	panic("could not find name " + name)
}

// IDs returns all field identifiers in this schema, sorted.
func (s *Schema) IDs() []uint32 {
	ids := make([]uint32, 0, len(s.Fields))
	for _, f := range s.Fields {
		ids = append(ids, f.ID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// OneofMembers returns the identifiers of all fields in a oneof group,
// sorted. An unknown group returns an empty slice.
func (s *Schema) OneofMembers(group uint32) []uint32 {
	if group == NoOneof {
		return nil
	}
	var ids []uint32
	for _, f := range s.Fields {
		if f.OneofGroup == group {
			ids = append(ids, f.ID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
