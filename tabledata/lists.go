package tabledata

import (
	"github.com/dmytroxshevchuk/tdi/field"
)

// List values are copied on both set and get. The record never aliases
// caller-owned slices, so a caller mutating its slice after a set cannot
// bypass validation, and a returned slice is free for the caller to keep.

// SetIntList sets a field of kind []uint32.
func (r *Record) SetIntList(id uint32, values []uint32) error {
	fd, err := r.checkField(id, true, field.KindIntList)
	if err != nil {
		return err
	}
	cp := make([]uint32, len(values))
	copy(cp, values)
	r.commit(fd, &slot{kind: fd.Kind, ints: cp})
	return nil
}

// GetIntList gets a field of kind []uint32.
func (r *Record) GetIntList(id uint32) ([]uint32, error) {
	_, s, err := r.getSlot(id, field.KindIntList)
	if err != nil {
		return nil, err
	}
	cp := make([]uint32, len(s.ints))
	copy(cp, s.ints)
	return cp, nil
}

// SetBoolList sets a field of kind []bool.
func (r *Record) SetBoolList(id uint32, values []bool) error {
	fd, err := r.checkField(id, true, field.KindBoolList)
	if err != nil {
		return err
	}
	cp := make([]bool, len(values))
	copy(cp, values)
	r.commit(fd, &slot{kind: fd.Kind, bools: cp})
	return nil
}

// GetBoolList gets a field of kind []bool.
func (r *Record) GetBoolList(id uint32) ([]bool, error) {
	_, s, err := r.getSlot(id, field.KindBoolList)
	if err != nil {
		return nil, err
	}
	cp := make([]bool, len(s.bools))
	copy(cp, s.bools)
	return cp, nil
}

// SetStringList sets a field of kind []string.
func (r *Record) SetStringList(id uint32, values []string) error {
	fd, err := r.checkField(id, true, field.KindStringList)
	if err != nil {
		return err
	}
	cp := make([]string, len(values))
	copy(cp, values)
	r.commit(fd, &slot{kind: fd.Kind, strs: cp})
	return nil
}

// GetStringList gets a field of kind []string.
func (r *Record) GetStringList(id uint32) ([]string, error) {
	_, s, err := r.getSlot(id, field.KindStringList)
	if err != nil {
		return nil, err
	}
	cp := make([]string, len(s.strs))
	copy(cp, s.strs)
	return cp, nil
}

// SetUint64List sets a field of kind []uint64.
func (r *Record) SetUint64List(id uint32, values []uint64) error {
	fd, err := r.checkField(id, true, field.KindUint64List)
	if err != nil {
		return err
	}
	cp := make([]uint64, len(values))
	copy(cp, values)
	r.commit(fd, &slot{kind: fd.Kind, u64s: cp})
	return nil
}

// GetUint64List gets a field of kind []uint64.
func (r *Record) GetUint64List(id uint32) ([]uint64, error) {
	_, s, err := r.getSlot(id, field.KindUint64List)
	if err != nil {
		return nil, err
	}
	cp := make([]uint64, len(s.u64s))
	copy(cp, s.u64s)
	return cp, nil
}
