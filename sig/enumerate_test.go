package sig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(argc int) []Signature {
	var out []Signature
	for s := range EnumerateArgc(argc) {
		out = append(out, s)
	}
	return out
}

func TestEnumerateArgcCounts(t *testing.T) {
	// One empty argument tuple crossed with the 19 catalog returns.
	assert.Len(t, collect(0), 19)
	// 18 argument types crossed with 19 returns.
	assert.Len(t, collect(1), 18*19)
	assert.Len(t, collect(2), 18*18*19)
}

func TestEnumerateNeverYieldsVoidArg(t *testing.T) {
	for s := range EnumerateArgc(2) {
		for _, a := range s.Args {
			require.NotEqual(t, Void, a, "signature %s has a void argument", s)
		}
	}
}

func TestEnumerateOrder(t *testing.T) {
	sigs := collect(1)

	// Returns advance fastest, then the argument positions, rightmost first.
	assert.Equal(t, Signature{Args: []Type{Object}, Ret: Void}, sigs[0])
	assert.Equal(t, Signature{Args: []Type{Object}, Ret: Object}, sigs[1])
	assert.Equal(t, Signature{Args: []Type{Boolean}, Ret: Void}, sigs[19])

	pairs := collect(2)
	assert.Equal(t, Signature{Args: []Type{Object, Object}, Ret: Void}, pairs[0])
	assert.Equal(t, Signature{Args: []Type{Object, Boolean}, Ret: Void}, pairs[19])
	assert.Equal(t, Signature{Args: []Type{Boolean, Object}, Ret: Void}, pairs[18*19])
}

func TestEnumerateRestartable(t *testing.T) {
	seq := Enumerate()

	var first []Signature
	for s := range seq {
		first = append(first, s)
		if len(first) == 100 {
			break
		}
	}

	var second []Signature
	for s := range seq {
		second = append(second, s)
		if len(second) == 100 {
			break
		}
	}

	assert.Equal(t, first, second)
}

func TestEnumerateSpansAllArgcs(t *testing.T) {
	seen := make(map[int]bool)
	for s := range Enumerate() {
		seen[s.Argc()] = true
	}
	for argc := 0; argc <= MaxArgc; argc++ {
		assert.True(t, seen[argc], "argc %d missing from enumeration", argc)
	}
	assert.Len(t, seen, MaxArgc+1)
}
