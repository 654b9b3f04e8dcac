package sig

import "iter"

// Enumerate yields the complete candidate signature space: for each argument
// count from 0 through MaxArgc, the cartesian product of the non-Void
// catalog taken argc times, crossed with every catalog type (including Void)
// as the return. No filtering occurs here; this is intentionally the full
// combinatorial superset.
//
// The sequence is deterministic and restartable. Each yielded Signature owns
// its Args slice; callers may retain it.
func Enumerate() iter.Seq[Signature] {
	return func(yield func(Signature) bool) {
		for argc := 0; argc <= MaxArgc; argc++ {
			if !enumerateArgc(argc, yield) {
				return
			}
		}
	}
}

// EnumerateArgc is like Enumerate, restricted to a single argument count.
// The generation pipeline runs one stratum per argument count in parallel.
func EnumerateArgc(argc int) iter.Seq[Signature] {
	return func(yield func(Signature) bool) {
		enumerateArgc(argc, yield)
	}
}

func enumerateArgc(argc int, yield func(Signature) bool) bool {
	argTypes := ArgTypes()
	returns := Catalog()

	// Odometer over argc positions; the last position advances fastest, so
	// candidates appear in lexicographic catalog order.
	idx := make([]int, argc)
	for {
		for _, ret := range returns {
			args := make([]Type, argc)
			for i, j := range idx {
				args[i] = argTypes[j]
			}
			if !yield(Signature{Args: args, Ret: ret}) {
				return false
			}
		}

		i := argc - 1
		for i >= 0 && idx[i] == len(argTypes)-1 {
			idx[i] = 0
			i--
		}
		if i < 0 {
			return true
		}
		idx[i]++
	}
}
