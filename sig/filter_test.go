package sig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultRules(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name  string
		s     Signature
		admit bool
	}{
		{"nullary supplier shape", Signature{Ret: Int}, true},
		{"unary any return", Signature{Args: []Type{Byte}, Ret: Char}, true},

		{"mixed primitives", Signature{Args: []Type{Int, Long}, Ret: Boolean}, false},
		{"object leading hybrid", Signature{Args: []Type{Object, Int}, Ret: Void}, true},
		{"object trailing hybrid", Signature{Args: []Type{Int, Object}, Ret: Void}, false},
		{"uniform pair", Signature{Args: []Type{Double, Double}, Ret: Double}, true},

		{"ternary primitives", Signature{Args: []Type{Int, Int, Int}, Ret: Int}, false},
		{"ternary objects", Signature{Args: []Type{Object, Object, Object}, Ret: Object}, true},
		{"quaternary objects", Signature{Args: []Type{Object, Object, Object, Object}, Ret: Boolean}, true},

		{"two array args", Signature{Args: []Type{IntArray, IntArray}, Ret: Int}, false},

		{"array return", Signature{Args: []Type{Int}, Ret: IntArray}, false},
		{"array arg index return", Signature{Args: []Type{IntArray}, Ret: Int}, true},
		{"array arg aggregate return", Signature{Args: []Type{ByteArray}, Ret: Double}, true},
		{"array arg element return", Signature{Args: []Type{ShortArray}, Ret: Short}, true},
		{"array arg foreign scalar return", Signature{Args: []Type{IntArray}, Ret: Char}, false},

		{"pair foreign return", Signature{Args: []Type{Int, Int}, Ret: Long}, false},
		{"pair matching return", Signature{Args: []Type{Int, Int}, Ret: Int}, true},
		{"object pair primitive return", Signature{Args: []Type{Object, Object}, Ret: Int}, true},
		{"object triple primitive return", Signature{Args: []Type{Object, Object, Object}, Ret: Int}, false},
		{"object triple predicate", Signature{Args: []Type{Object, Object, Object}, Ret: Boolean}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.admit, Admit(tt.s, rules), "signature %s", tt.s)
		})
	}
}

func TestRulesAreConjunctive(t *testing.T) {
	always := []Rule{
		{Name: "yes", Admit: func(Signature) bool { return true }},
		{Name: "no", Admit: func(Signature) bool { return false }},
	}
	assert.False(t, Admit(Signature{Ret: Void}, always))
	assert.True(t, Admit(Signature{Ret: Void}, always[:1]))
	assert.True(t, Admit(Signature{Ret: Void}, nil))
}
