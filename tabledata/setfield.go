package tabledata

import (
	"github.com/pkg/errors"
)

// SetField sets the field at id from a dynamically typed value,
// dispatching to the accessor matching the value's shape. A value whose
// shape matches no accessor, or does not match the field's declared
// kind, is rejected with ErrTypeMismatch.
func (r *Record) SetField(id uint32, value any) error {
	switch v := value.(type) {
	case uint64:
		return r.SetUint64(id, v)
	case []byte:
		return r.SetBytes(id, v)
	case bool:
		return r.SetBool(id, v)
	case float32:
		return r.SetFloat(id, v)
	case string:
		return r.SetString(id, v)
	case []uint32:
		return r.SetIntList(id, v)
	case []bool:
		return r.SetBoolList(id, v)
	case []string:
		return r.SetStringList(id, v)
	case []uint64:
		return r.SetUint64List(id, v)
	case []*Record:
		return r.SetContainers(id, v)
	default:
		return errors.Wrapf(ErrTypeMismatch, "field %d: unsupported value type %T", id, value)
	}
}
