// Package sig defines the type catalog over which functional interface
// signatures are formed, and the enumeration and filtering of those
// signatures.
package sig

import "fmt"

// Type identifies one entry in the fixed type catalog: the no-result tag,
// the generic object tag, the Java scalar kinds, and one array-segment
// variant per element kind.
type Type uint8

const (
	Void Type = iota
	Object
	Boolean
	Byte
	Char
	Double
	Float
	Int
	Long
	Short
	ObjectArray
	BooleanArray
	ByteArray
	CharArray
	DoubleArray
	FloatArray
	IntArray
	LongArray
	ShortArray

	numTypes
)

// MaxArgc is the largest argument count for which signatures are enumerated.
const MaxArgc = 4

var fragments = [numTypes]string{
	Object:       "",
	Boolean:      "Boolean",
	Byte:         "Byte",
	Char:         "Char",
	Double:       "Double",
	Float:        "Float",
	Int:          "Int",
	Long:         "Long",
	Short:        "Short",
	ObjectArray:  "ArraySegment",
	BooleanArray: "BooleanArraySegment",
	ByteArray:    "ByteArraySegment",
	CharArray:    "CharArraySegment",
	DoubleArray:  "DoubleArraySegment",
	FloatArray:   "FloatArraySegment",
	IntArray:     "IntArraySegment",
	LongArray:    "LongArraySegment",
	ShortArray:   "ShortArraySegment",
}

var keywords = [numTypes]string{
	Void:         "void",
	Object:       "Object",
	Boolean:      "boolean",
	Byte:         "byte",
	Char:         "char",
	Double:       "double",
	Float:        "float",
	Int:          "int",
	Long:         "long",
	Short:        "short",
	ObjectArray:  "Object[]",
	BooleanArray: "boolean[]",
	ByteArray:    "byte[]",
	CharArray:    "char[]",
	DoubleArray:  "double[]",
	FloatArray:   "float[]",
	IntArray:     "int[]",
	LongArray:    "long[]",
	ShortArray:   "short[]",
}

// Catalog returns the full ordered type registry. The order is fixed and is
// the enumeration order for signature candidates.
func Catalog() []Type {
	all := make([]Type, numTypes)
	for i := range all {
		all[i] = Type(i)
	}
	return all
}

// ArgTypes returns the catalog without Void, in catalog order. These are the
// types permitted in argument position.
func ArgTypes() []Type {
	return Catalog()[1:]
}

// Fragment returns the type's naming fragment, the identifier component used
// when deriving interface names. Object contributes an empty fragment. Void
// has no fragment; asking for one is a defect in the caller.
func (t Type) Fragment() string {
	if t == Void {
		panic("sig: Void has no naming fragment")
	}
	return fragments[t]
}

// Keyword returns the Java source spelling of the type, e.g. "int" or
// "long[]".
func (t Type) Keyword() string {
	return keywords[t]
}

// IsArray reports whether the type is an array-segment kind.
func (t Type) IsArray() bool {
	return t >= ObjectArray && t < numTypes
}

// Elem returns the element type of an array-segment kind. It panics if t is
// not an array-segment kind.
func (t Type) Elem() Type {
	if !t.IsArray() {
		panic(fmt.Sprintf("sig: %s is not an array-segment type", t))
	}
	return t - ObjectArray + Object
}

// Array returns the array-segment form of a non-array type, if the catalog
// has one.
func (t Type) Array() (Type, bool) {
	if t == Void || t.IsArray() {
		return 0, false
	}
	return t + ObjectArray - Object, true
}

func (t Type) String() string {
	if t >= numTypes {
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
	return keywords[t]
}
