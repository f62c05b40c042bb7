package core

import (
	"fmt"
	"reflect"
	"strconv"
	"time"
)

// ValueKind represents the type of a Value
type ValueKind uint8

const (
	StringKind ValueKind = iota
	IntKind
	UintKind
	FloatKind
	BoolKind
	TimeKind
	DurationKind
	ErrorKind
	BytesKind
	StringerKind
	AnyKind
)

// Value holds one argument of a variadic log call
type Value struct {
	Kind  ValueKind
	Int64 int64
	Float float64
	Str   string
	Any   interface{}
}

// ValueOf encodes v without going through fmt for the common kinds
func ValueOf(v interface{}) Value {
	switch x := v.(type) {
	case string:
		return Value{Kind: StringKind, Str: x}
	case int:
		return Value{Kind: IntKind, Int64: int64(x)}
	case int8:
		return Value{Kind: IntKind, Int64: int64(x)}
	case int16:
		return Value{Kind: IntKind, Int64: int64(x)}
	case int32:
		return Value{Kind: IntKind, Int64: int64(x)}
	case int64:
		return Value{Kind: IntKind, Int64: x}
	case uint:
		return Value{Kind: UintKind, Int64: int64(x)}
	case uint8:
		return Value{Kind: UintKind, Int64: int64(x)}
	case uint16:
		return Value{Kind: UintKind, Int64: int64(x)}
	case uint32:
		return Value{Kind: UintKind, Int64: int64(x)}
	case uint64:
		return Value{Kind: UintKind, Int64: int64(x)}
	case float32:
		return Value{Kind: FloatKind, Float: float64(x)}
	case float64:
		return Value{Kind: FloatKind, Float: x}
	case bool:
		if x {
			return Value{Kind: BoolKind, Int64: 1}
		}
		return Value{Kind: BoolKind}
	case time.Time:
		return Value{Kind: TimeKind, Any: x}
	case time.Duration:
		return Value{Kind: DurationKind, Int64: int64(x)}
	case error:
		if isNilPointer(x) {
			return Value{Kind: AnyKind, Any: x}
		}
		return Value{Kind: ErrorKind, Any: x}
	case []byte:
		return Value{Kind: BytesKind, Str: string(x)}
	case fmt.Stringer:
		if isNilPointer(x) {
			return Value{Kind: AnyKind, Any: x}
		}
		return Value{Kind: StringerKind, Any: x}
	default:
		return Value{Kind: AnyKind, Any: x}
	}
}

// isNilPointer reports whether v holds a typed nil pointer. Calling a
// method on it may panic; fmt renders it as <nil>.
func isNilPointer(v interface{}) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// AppendTo appends the text representation of the value to dst
func (v Value) AppendTo(dst []byte) []byte {
	switch v.Kind {
	case StringKind, BytesKind:
		return append(dst, v.Str...)
	case IntKind:
		return strconv.AppendInt(dst, v.Int64, 10)
	case UintKind:
		return strconv.AppendUint(dst, uint64(v.Int64), 10)
	case FloatKind:
		return strconv.AppendFloat(dst, v.Float, 'g', -1, 64)
	case BoolKind:
		return strconv.AppendBool(dst, v.Int64 == 1)
	case TimeKind:
		return v.Any.(time.Time).AppendFormat(dst, time.RFC3339)
	case DurationKind:
		return append(dst, time.Duration(v.Int64).String()...)
	case ErrorKind:
		return append(dst, v.Any.(error).Error()...)
	case StringerKind:
		return append(dst, v.Any.(fmt.Stringer).String()...)
	default:
		return fmt.Append(dst, v.Any)
	}
}

// String returns the text representation of the value
func (v Value) String() string {
	if v.Kind == StringKind || v.Kind == BytesKind {
		return v.Str
	}
	return string(v.AppendTo(nil))
}
