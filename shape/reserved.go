package shape

// builtIns lists the functional interface names already provided by
// java.util.function (plus java.lang.Runnable). A synthesized descriptor
// whose name lands in this set duplicates an existing JDK type and is
// dropped rather than emitted.
var builtIns = []string{
	"Runnable",
	"BiConsumer",
	"BiFunction",
	"BinaryOperator",
	"BiPredicate",
	"BooleanSupplier",
	"Consumer",
	"DoubleBinaryOperator",
	"DoubleConsumer",
	"DoubleFunction",
	"DoublePredicate",
	"DoubleSupplier",
	"DoubleToIntFunction",
	"DoubleToLongFunction",
	"DoubleUnaryOperator",
	"Function",
	"IntBinaryOperator",
	"IntConsumer",
	"IntFunction",
	"IntPredicate",
	"IntSupplier",
	"IntToDoubleFunction",
	"IntToLongFunction",
	"IntUnaryOperator",
	"LongBinaryOperator",
	"LongConsumer",
	"LongFunction",
	"LongPredicate",
	"LongSupplier",
	"LongToDoubleFunction",
	"LongToIntFunction",
	"LongUnaryOperator",
	"ObjDoubleConsumer",
	"ObjIntConsumer",
	"ObjLongConsumer",
	"Predicate",
	"Supplier",
	"ToDoubleBiFunction",
	"ToDoubleFunction",
	"ToIntBiFunction",
	"ToIntFunction",
	"ToLongBiFunction",
	"ToLongFunction",
	"UnaryOperator",
}

// ReservedNames returns the default reserved-name set, keyed for lookup.
// Callers may add further names before generation.
func ReservedNames() map[string]bool {
	m := make(map[string]bool, len(builtIns))
	for _, n := range builtIns {
		m[n] = true
	}
	return m
}
