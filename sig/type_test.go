package sig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFragments(t *testing.T) {
	assert.Equal(t, "", Object.Fragment())
	assert.Equal(t, "Int", Int.Fragment())
	assert.Equal(t, "ArraySegment", ObjectArray.Fragment())
	assert.Equal(t, "IntArraySegment", IntArray.Fragment())

	assert.Panics(t, func() { Void.Fragment() })
}

func TestKeywords(t *testing.T) {
	assert.Equal(t, "void", Void.Keyword())
	assert.Equal(t, "Object", Object.Keyword())
	assert.Equal(t, "long[]", LongArray.Keyword())
}

func TestArrayElemRoundtrip(t *testing.T) {
	for _, a := range ArgTypes() {
		if !a.IsArray() {
			arr, ok := a.Array()
			assert.True(t, ok)
			assert.Equal(t, a, arr.Elem())
			continue
		}
		arr, ok := a.Elem().Array()
		assert.True(t, ok)
		assert.Equal(t, a, arr)
	}

	_, ok := Void.Array()
	assert.False(t, ok)
	_, ok = IntArray.Array()
	assert.False(t, ok)
}

func TestCatalog(t *testing.T) {
	all := Catalog()
	assert.Len(t, all, 19)
	assert.Equal(t, Void, all[0])

	args := ArgTypes()
	assert.Len(t, args, 18)
	assert.Equal(t, Object, args[0])
	assert.Equal(t, ShortArray, args[len(args)-1])
}

func TestSignatureArgSet(t *testing.T) {
	s := Signature{Args: []Type{Int, Object, Int}, Ret: Void}
	assert.Equal(t, []Type{Object, Int}, s.ArgSet())

	u, ok := s.Uniform()
	assert.False(t, ok)
	assert.Equal(t, Type(0), u)

	u, ok = Signature{Args: []Type{Long, Long}}.Uniform()
	assert.True(t, ok)
	assert.Equal(t, Long, u)
}

func TestSignatureString(t *testing.T) {
	s := Signature{Args: []Type{Int, Int}, Ret: Boolean}
	assert.Equal(t, "(int, int) boolean", s.String())
	assert.Equal(t, "() void", Signature{}.String())
}
