package tabledata

import (
	"github.com/pkg/errors"

	"github.com/dmytroxshevchuk/tdi/field"
	"github.com/dmytroxshevchuk/tdi/internal/codec"
)

// SetUint64 sets a field of kind uint64. The value must fit in the
// field's declared bit width; a value that needs more bits is rejected
// with ErrValueOutOfRange, never truncated.
func (r *Record) SetUint64(id uint32, value uint64) error {
	fd, err := r.checkField(id, true, field.KindUint64)
	if err != nil {
		return err
	}
	raw, err := codec.EncodeScalar(fd.Width, value)
	if err != nil {
		return errors.Wrapf(err, "field %s(%d)", fd.Name, id)
	}
	r.commit(fd, &slot{kind: fd.Kind, raw: raw})
	return nil
}

// GetUint64 gets a field of kind uint64.
func (r *Record) GetUint64(id uint32) (uint64, error) {
	fd, s, err := r.getSlot(id, field.KindUint64)
	if err != nil {
		return 0, err
	}
	v, err := codec.DecodeScalar(fd.Width, s.raw)
	if err != nil {
		return 0, errors.Wrapf(err, "field %s(%d)", fd.Name, id)
	}
	return v, nil
}

// MustSetUint64 is like SetUint64 but panics on error.
func (r *Record) MustSetUint64(id uint32, value uint64) {
	if err := r.SetUint64(id, value); err != nil {
		panic(err)
	}
}

// MustGetUint64 is like GetUint64 but panics on error.
func (r *Record) MustGetUint64(id uint32) uint64 {
	v, err := r.GetUint64(id)
	if err != nil {
		panic(err)
	}
	return v
}

// SetBytes sets a sized field from a network-order byte buffer. Valid on
// fields of kind bytes and, for widths <= 64 bits, kind uint64 as well.
// len(value) must be exactly the ceiling-byte width of the field and the
// MSB padding bits must be zero.
func (r *Record) SetBytes(id uint32, value []byte) error {
	fd, err := r.checkField(id, true, field.KindBytes, field.KindUint64)
	if err != nil {
		return err
	}
	if err := codec.CheckBytes(fd.Width, value); err != nil {
		return errors.Wrapf(err, "field %s(%d)", fd.Name, id)
	}
	raw := make([]byte, len(value))
	copy(raw, value)
	r.commit(fd, &slot{kind: fd.Kind, raw: raw})
	return nil
}

// ReadBytes copies a sized field's network-order value into dst.
// len(dst) must be exactly the ceiling-byte width of the field, else
// ErrSizeMismatch.
func (r *Record) ReadBytes(id uint32, dst []byte) error {
	fd, s, err := r.getSlot(id, field.KindBytes, field.KindUint64)
	if err != nil {
		return err
	}
	if len(dst) != codec.ByteWidth(fd.Width) {
		return errors.Wrapf(ErrSizeMismatch, "field %s(%d): want %d bytes, got %d", fd.Name, id, codec.ByteWidth(fd.Width), len(dst))
	}
	copy(dst, s.raw)
	return nil
}

// GetBytes returns a copy of a sized field's network-order value.
func (r *Record) GetBytes(id uint32) ([]byte, error) {
	_, s, err := r.getSlot(id, field.KindBytes, field.KindUint64)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(s.raw))
	copy(out, s.raw)
	return out, nil
}

// MustSetBytes is like SetBytes but panics on error.
func (r *Record) MustSetBytes(id uint32, value []byte) {
	if err := r.SetBytes(id, value); err != nil {
		panic(err)
	}
}

// MustGetBytes is like GetBytes but panics on error.
func (r *Record) MustGetBytes(id uint32) []byte {
	b, err := r.GetBytes(id)
	if err != nil {
		panic(err)
	}
	return b
}

// SetBool sets a field of kind bool.
func (r *Record) SetBool(id uint32, value bool) error {
	fd, err := r.checkField(id, true, field.KindBool)
	if err != nil {
		return err
	}
	r.commit(fd, &slot{kind: fd.Kind, b: value})
	return nil
}

// GetBool gets a field of kind bool.
func (r *Record) GetBool(id uint32) (bool, error) {
	_, s, err := r.getSlot(id, field.KindBool)
	if err != nil {
		return false, err
	}
	return s.b, nil
}

// MustSetBool is like SetBool but panics on error.
func (r *Record) MustSetBool(id uint32, value bool) {
	if err := r.SetBool(id, value); err != nil {
		panic(err)
	}
}

// MustGetBool is like GetBool but panics on error.
func (r *Record) MustGetBool(id uint32) bool {
	b, err := r.GetBool(id)
	if err != nil {
		panic(err)
	}
	return b
}

// SetFloat sets a field of kind float32.
func (r *Record) SetFloat(id uint32, value float32) error {
	fd, err := r.checkField(id, true, field.KindFloat)
	if err != nil {
		return err
	}
	r.commit(fd, &slot{kind: fd.Kind, f: value})
	return nil
}

// GetFloat gets a field of kind float32.
func (r *Record) GetFloat(id uint32) (float32, error) {
	_, s, err := r.getSlot(id, field.KindFloat)
	if err != nil {
		return 0, err
	}
	return s.f, nil
}

// SetString sets a field of kind string.
func (r *Record) SetString(id uint32, value string) error {
	fd, err := r.checkField(id, true, field.KindString)
	if err != nil {
		return err
	}
	r.commit(fd, &slot{kind: fd.Kind, str: value})
	return nil
}

// GetString gets a field of kind string.
func (r *Record) GetString(id uint32) (string, error) {
	_, s, err := r.getSlot(id, field.KindString)
	if err != nil {
		return "", err
	}
	return s.str, nil
}
