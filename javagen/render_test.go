package javagen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkleszyk/java-function-extra/shape"
	"github.com/dkleszyk/java-function-extra/sig"
)

func renderSignature(t *testing.T, s sig.Signature) string {
	t.Helper()
	d, err := shape.Synthesize(s)
	require.NoError(t, err)
	j := &InterfaceJenny{}
	return string(renderInterface(d, j.PackageFor(d.Group), DefaultAuthor))
}

func TestRenderByteUnaryOperator(t *testing.T) {
	src := renderSignature(t, sig.Signature{Args: []sig.Type{sig.Byte}, Ret: sig.Byte})

	assert.True(t, strings.HasPrefix(src, "/*\n * The MIT License\n"))
	assert.Contains(t, src, "package me.dkleszyk.java.function.extra.primitive;\n")
	assert.Contains(t, src, "import java.util.Objects;\n")
	assert.Contains(t, src, "@FunctionalInterface\npublic interface ByteUnaryOperator\n{\n")
	assert.Contains(t, src, " * @author David Kleszyk <dkleszyk@gmail.com>\n")

	// Abstract primary method, one declared parameter per line.
	assert.Contains(t, src, "    byte applyAsByte(\n        final byte operand);\n")

	assert.Contains(t, src, "    static ByteUnaryOperator identity()\n    {\n        return x -> x;\n    }\n")
	assert.Contains(t, src, "        Objects.requireNonNull(after);\n")
	assert.Contains(t, src, "        return x -> after.applyAsByte(applyAsByte(x));\n")
	assert.Contains(t, src, "        return x -> applyAsByte(before.applyAsByte(x));\n")

	assert.True(t, strings.HasSuffix(src, "}\n"))
}

func TestRenderMethodOrder(t *testing.T) {
	src := renderSignature(t, sig.Signature{Args: []sig.Type{sig.Boolean}, Ret: sig.Boolean})

	// Statics first, then instance methods, alphabetical within each group.
	order := []string{
		"    static BooleanUnaryOperator identity()",
		"    static BooleanUnaryOperator negated()",
		"    default BooleanUnaryOperator andThen(",
		"    boolean applyAsBoolean(",
		"    default BooleanUnaryOperator compose(",
	}
	last := -1
	for _, decl := range order {
		i := strings.Index(src, decl)
		require.GreaterOrEqual(t, i, 0, "missing declaration %q", decl)
		assert.Greater(t, i, last, "declaration %q out of order", decl)
		last = i
	}
}

func TestRenderStatementLambda(t *testing.T) {
	src := renderSignature(t, sig.Signature{Args: []sig.Type{sig.Char}, Ret: sig.Void})

	assert.Contains(t, src, "public interface CharConsumer\n{\n")
	assert.Contains(t, src,
		"        return x ->\n        {\n            accept(x);\n            after.accept(x);\n        };\n")
}

func TestRenderLambdaSplit(t *testing.T) {
	src := renderSignature(t, sig.Signature{Args: []sig.Type{sig.LongArray}, Ret: sig.Boolean})

	// The predicate combinators over an expanded array argument run past
	// the split width, so the body moves to a continuation line.
	assert.Contains(t, src,
		"        return (arr, from, to) ->\n            test(arr, from, to) && other.test(arr, from, to);\n")
	assert.Contains(t, src, "        return (arr, from, to) -> !test(arr, from, to);\n")
}

func TestRenderGenerics(t *testing.T) {
	src := renderSignature(t, sig.Signature{Args: []sig.Type{sig.Object, sig.Int}, Ret: sig.Object})

	assert.Contains(t, src, "package me.dkleszyk.java.function.extra;\n")
	assert.Contains(t, src, "import java.util.function.Function;\n")
	assert.Contains(t, src, "public interface ObjIntFunction<T, R>\n{\n")
	assert.Contains(t, src, "    default <S> ObjIntFunction<T, S> andThen(\n")
	assert.Contains(t, src, "        final Function<? super R, ? extends S> after)\n")
	assert.Contains(t, src, "    R apply(\n        final T obj,\n        final int value);\n")
}

func TestRenderDeterministic(t *testing.T) {
	s := sig.Signature{Args: []sig.Type{sig.Double, sig.Double}, Ret: sig.Boolean}
	d, err := shape.Synthesize(s)
	require.NoError(t, err)

	a := renderInterface(d, "p", "a")
	b := renderInterface(d, "p", "a")
	assert.True(t, bytes.Equal(a, b))
}

func TestJennyPaths(t *testing.T) {
	j := &InterfaceJenny{}

	core, err := shape.Synthesize(sig.Signature{Args: []sig.Type{sig.Object, sig.Int}, Ret: sig.Object})
	require.NoError(t, err)
	assert.Equal(t, "me/dkleszyk/java/function/extra/ObjIntFunction.java", j.PathFor(core))

	prim, err := shape.Synthesize(sig.Signature{Args: []sig.Type{sig.Byte}, Ret: sig.Byte})
	require.NoError(t, err)
	assert.Equal(t, "me/dkleszyk/java/function/extra/primitive/ByteUnaryOperator.java", j.PathFor(prim))

	arr, err := shape.Synthesize(sig.Signature{Args: []sig.Type{sig.LongArray}, Ret: sig.Boolean})
	require.NoError(t, err)
	assert.Equal(t, "me/dkleszyk/java/function/extra/array/LongArraySegmentPredicate.java", j.PathFor(arr))

	custom := &InterfaceJenny{BasePackage: "com.example.fn"}
	assert.Equal(t, "com/example/fn/ObjIntFunction.java", custom.PathFor(core))
}

func TestJennyGenerate(t *testing.T) {
	j := &InterfaceJenny{}
	d, err := shape.Synthesize(sig.Signature{Args: []sig.Type{sig.Byte}, Ret: sig.Byte})
	require.NoError(t, err)

	fl, err := j.Generate(d)
	require.NoError(t, err)
	require.Len(t, fl, 1)
	assert.Equal(t, "me/dkleszyk/java/function/extra/primitive/ByteUnaryOperator.java", fl[0].RelativePath)
	assert.Equal(t, "JavaInterfaceJenny", fl[0].Owner())
	assert.NoError(t, fl.Validate())
}
