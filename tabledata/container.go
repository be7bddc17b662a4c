package tabledata

import (
	"github.com/pkg/errors"

	"github.com/dmytroxshevchuk/tdi/field"
)

// AllocateContainer allocates a child record for a container field. The
// child's schema is the container's child schema. The caller owns the
// returned record until it is handed back through SetContainers.
//
// With no subset the child covers the full child field set. A subset
// restricts the child to the listed identifiers, which must all belong
// to the child schema; this serves modify/patch operations that touch
// only part of the child.
func (r *Record) AllocateContainer(id uint32, subset ...uint32) (*Record, error) {
	fd, err := r.checkField(id, true)
	if err != nil {
		return nil, err
	}
	if fd.Kind != field.KindContainer {
		return nil, errors.Wrapf(ErrNotAContainer, "field %s(%d) is %v", fd.Name, id, fd.Kind)
	}
	if len(subset) == 0 {
		return New(fd.Container)
	}
	return New(fd.Container, WithFields(subset...))
}

// SetContainers hands ownership of the supplied child records to this
// record, replacing (and releasing) any children previously stored for
// the field.
//
// This is a move operation. On success the caller's handles now point at
// children owned by this record; they stay readable but can no longer be
// released independently. On failure the supplied children are released
// by this record, not handed back, and the caller must allocate fresh
// ones.
func (r *Record) SetContainers(id uint32, children []*Record) error {
	fd, err := r.checkField(id, true)
	if err != nil {
		releaseAll(children)
		return err
	}
	if fd.Kind != field.KindContainer {
		releaseAll(children)
		return errors.Wrapf(ErrNotAContainer, "field %s(%d) is %v", fd.Name, id, fd.Kind)
	}
	for i, c := range children {
		if c == nil {
			releaseAll(children)
			return errors.Wrapf(ErrTypeMismatch, "field %s(%d): child %d is nil", fd.Name, id, i)
		}
		if c.released || c.owner != nil {
			releaseAll(children)
			return errors.Wrapf(ErrReleased, "field %s(%d): child %d was already consumed", fd.Name, id, i)
		}
		if c.schema != fd.Container {
			releaseAll(children)
			return errors.Wrapf(ErrTypeMismatch, "field %s(%d): child %d has schema %q, want %q", fd.Name, id, i, c.schema.Name, fd.Container.Name)
		}
	}

	owned := make([]*Record, len(children))
	copy(owned, children)
	for _, c := range owned {
		c.owner = r
	}
	r.commit(fd, &slot{kind: fd.Kind, recs: owned})
	return nil
}

// GetContainers returns the child records stored for a container field.
// The views are borrowed: this record keeps ownership and the children
// are valid only as long as it is alive. Releasing a borrowed child
// fails with ErrOwned.
func (r *Record) GetContainers(id uint32) ([]*Record, error) {
	fd, err := r.checkField(id, false)
	if err != nil {
		return nil, err
	}
	if fd.Kind != field.KindContainer {
		return nil, errors.Wrapf(ErrNotAContainer, "field %s(%d) is %v", fd.Name, id, fd.Kind)
	}
	s, ok := r.slots[id]
	if !ok {
		return nil, errors.Wrapf(ErrNotSet, "field %s(%d) was never written", fd.Name, id)
	}
	out := make([]*Record, len(s.recs))
	copy(out, s.recs)
	return out, nil
}

// releaseAll consumes records handed into a failed ownership transfer.
func releaseAll(recs []*Record) {
	for _, c := range recs {
		if c != nil && c.owner == nil {
			c.release()
		}
	}
}
