// Package field details the value kinds a table data field can hold.
package field

//go:generate stringer -type=Kind -linecomment

// Kind represents the kind of value that is held in a data field.
type Kind uint8

const (
	KindUnknown    Kind = 0  // Unknown
	KindBool       Kind = 1  // bool
	KindUint64     Kind = 2  // uint64
	KindFloat      Kind = 3  // float32
	KindString     Kind = 4  // string
	KindBytes      Kind = 5  // bytes
	KindContainer  Kind = 6  // container
	KindBoolList   Kind = 7  // []bool
	KindIntList    Kind = 8  // []uint32
	KindStringList Kind = 9  // []string
	KindUint64List Kind = 10 // []uint64
)

// IsList determines if a Kind represents a list of entries. Container
// fields hold a list of child records, so they count as lists.
func IsList(k Kind) bool {
	switch k {
	case KindContainer, KindBoolList, KindIntList, KindStringList, KindUint64List:
		return true
	}
	return false
}

// Sized determines if a Kind carries a bit width in its schema entry.
// Only sized kinds go through the scalar/byte codec.
func Sized(k Kind) bool {
	return k == KindUint64 || k == KindBytes
}

// ListKinds is a list of field kinds that represent a list.
var ListKinds = []Kind{
	KindBoolList,
	KindIntList,
	KindStringList,
	KindUint64List,
	KindContainer,
}

// ScalarKinds is a list of field kinds that hold a single value.
var ScalarKinds = []Kind{
	KindBool,
	KindUint64,
	KindFloat,
	KindString,
	KindBytes,
}
