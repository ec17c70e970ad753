// value.go — the PaneerLang runtime value model.
//
// Value is a tagged sum covering the five runtime kinds: int64, float64,
// string, bool and arrays of values. The tag determines which Go type
// Value.Data holds (see ValueTag). Every value has exactly one derived Type
// (TypeOf) and a truthiness rule (Truthy) used by conditionals.
//
// Values are never shared between scopes: bindings hand out deep copies, so
// mutating machinery elsewhere can rely on exclusive ownership.
package paneerlang

// ValueTag enumerates the runtime kinds a Value may hold.
type ValueTag int

const (
	VTInt    ValueTag = iota // int64
	VTFloat                  // float64
	VTString                 // string
	VTBool                   // bool
	VTArray                  // []Value
)

// Value is the universal runtime carrier used by the interpreter.
//
// Invariants:
//   - Data is int64 for VTInt, float64 for VTFloat, string for VTString,
//     bool for VTBool, []Value for VTArray.
type Value struct {
	Tag  ValueTag
	Data any
}

// Primitive constructors for convenience.
func Int(n int64) Value { return Value{Tag: VTInt, Data: n} }
func Float(f float64) Value { return Value{Tag: VTFloat, Data: f} }
func Str(s string) Value { return Value{Tag: VTString, Data: s} }
func Bool(b bool) Value { return Value{Tag: VTBool, Data: b} }
func Arr(xs []Value) Value { return Value{Tag: VTArray, Data: xs} }

// TypeOf derives the unique Type of a value structurally. An empty array
// has no element to infer from and defaults to array<int> — a documented,
// slightly unsound special case of the language.
func (v Value) TypeOf() Type {
	switch v.Tag {
	case VTInt:
		return IntType
	case VTFloat:
		return FloatType
	case VTString:
		return StringType
	case VTBool:
		return BoolType
	case VTArray:
		xs := v.Data.([]Value)
		if len(xs) == 0 {
			return ArrayOf(IntType)
		}
		return ArrayOf(xs[0].TypeOf())
	default:
		panic("unreachable value tag")
	}
}

// Truthy maps a value to a boolean for use in conditionals: bools are
// themselves, numeric zero is false, empty strings/arrays are false.
func (v Value) Truthy() bool {
	switch v.Tag {
	case VTBool:
		return v.Data.(bool)
	case VTInt:
		return v.Data.(int64) != 0
	case VTFloat:
		return v.Data.(float64) != 0
	case VTString:
		return v.Data.(string) != ""
	case VTArray:
		return len(v.Data.([]Value)) != 0
	default:
		panic("unreachable value tag")
	}
}

// deepEqual is structural value equality. Cross-tag comparisons are legal
// and simply false; arrays compare elementwise.
func deepEqual(a, b Value) bool {
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case VTInt:
		return a.Data.(int64) == b.Data.(int64)
	case VTFloat:
		return a.Data.(float64) == b.Data.(float64)
	case VTString:
		return a.Data.(string) == b.Data.(string)
	case VTBool:
		return a.Data.(bool) == b.Data.(bool)
	case VTArray:
		ax := a.Data.([]Value)
		bx := b.Data.([]Value)
		if len(ax) != len(bx) {
			return false
		}
		for i := range ax {
			if !deepEqual(ax[i], bx[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// deepCopy clones a value so the result shares no storage with the input.
// Scalars copy by value; arrays clone recursively.
func deepCopy(v Value) Value {
	if v.Tag != VTArray {
		return v
	}
	xs := v.Data.([]Value)
	out := make([]Value, len(xs))
	for i := range xs {
		out[i] = deepCopy(xs[i])
	}
	return Arr(out)
}
