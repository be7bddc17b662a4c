// Package codec converts between a field's declared bit width and its
// runtime representation. Values travel as network-order byte sequences
// of ceil(width/8) bytes, zero padded at the MSBs so that only the low
// "width" bits are significant.
//
// Everything in here is a pure function. The codec holds no state and can
// be fuzzed independently of any record.
package codec

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/dmytroxshevchuk/tdi/internal/bits"
)

// MaxScalarWidth is the widest field the uint64 accessors can serve.
// Wider fields must go through the byte-buffer accessors.
const MaxScalarWidth = 64

var (
	// ErrValueOutOfRange indicates a value needs more bits than the field's
	// declared width.
	ErrValueOutOfRange = errors.New("value does not fit in the field's bit width")
	// ErrSizeMismatch indicates a byte buffer whose length is not the
	// ceiling-byte width of the field.
	ErrSizeMismatch = errors.New("buffer size does not match the field's byte width")
)

// ByteWidth returns the number of bytes needed to hold width bits.
func ByteWidth(width int) int {
	return (width + 7) / 8
}

// Fits reports whether v can be represented in width bits.
func Fits(v uint64, width int) bool {
	if width >= MaxScalarWidth {
		return true
	}
	return v&^bits.Mask[uint64](0, uint64(width)) == 0
}

// EncodeScalar packs v into a fresh network-order buffer of
// ByteWidth(width) bytes.
func EncodeScalar(width int, v uint64) ([]byte, error) {
	b := make([]byte, ByteWidth(width))
	if err := PutScalar(width, v, b); err != nil {
		return nil, err
	}
	return b, nil
}

// PutScalar packs v into dst in network order. len(dst) must be exactly
// ByteWidth(width).
func PutScalar(width int, v uint64, dst []byte) error {
	if width < 1 || width > MaxScalarWidth {
		return errors.Wrapf(ErrSizeMismatch, "scalar width must be 1..%d bits, got %d", MaxScalarWidth, width)
	}
	if len(dst) != ByteWidth(width) {
		return errors.Wrapf(ErrSizeMismatch, "want %d bytes for a %d bit field, got %d", ByteWidth(width), width, len(dst))
	}
	if !Fits(v, width) {
		return errors.Wrapf(ErrValueOutOfRange, "value %d exceeds %d bits", v, width)
	}

	if width == MaxScalarWidth {
		binary.BigEndian.PutUint64(dst, v)
		return nil
	}
	for i := len(dst) - 1; i >= 0; i-- {
		dst[i] = byte(v)
		v >>= 8
	}
	return nil
}

// DecodeScalar is the inverse of EncodeScalar. len(b) must be exactly
// ByteWidth(width).
func DecodeScalar(width int, b []byte) (uint64, error) {
	if width < 1 || width > MaxScalarWidth {
		return 0, errors.Wrapf(ErrSizeMismatch, "scalar width must be 1..%d bits, got %d", MaxScalarWidth, width)
	}
	if len(b) != ByteWidth(width) {
		return 0, errors.Wrapf(ErrSizeMismatch, "want %d bytes for a %d bit field, got %d", ByteWidth(width), width, len(b))
	}

	if width == MaxScalarWidth {
		return binary.BigEndian.Uint64(b), nil
	}
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v, nil
}

// CheckBytes validates a caller-supplied network-order buffer against a
// field width of any size. The length must be ceil(width/8) and the
// padding bits in the most significant byte must be zero, otherwise the
// buffer would represent a value wider than the field.
func CheckBytes(width int, b []byte) error {
	if width < 1 {
		return errors.Wrapf(ErrSizeMismatch, "field width must be >= 1 bit, got %d", width)
	}
	if len(b) != ByteWidth(width) {
		return errors.Wrapf(ErrSizeMismatch, "want %d bytes for a %d bit field, got %d", ByteWidth(width), width, len(b))
	}
	if pad := len(b)*8 - width; pad > 0 {
		if b[0]>>(8-pad) != 0 {
			return errors.Wrapf(ErrValueOutOfRange, "MSB padding bits must be zero for a %d bit field", width)
		}
	}
	return nil
}
