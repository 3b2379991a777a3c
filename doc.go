// Package unchecked provides indexing that skips bounds validation in
// builds tagged nobounds, for hot paths where the caller can prove every
// index is in bounds (permutation application, precomputed offset tables).
//
// In the default build every access is still validated and a violation
// panics with *BoundsError, so mistakes surface during development
// without paying for the check where it matters. Wrapping a container is
// the act that transfers the proof obligation to the caller: after
//
//	u := unchecked.Of(data)
//
// every index given to u must be in bounds of data at the time of the
// access. In nobounds builds nothing enforces this; an invalid index
// reads or writes whatever memory the pointer arithmetic lands on. Test
// your code responsibly.
//
// The package adds no synchronization and no sharing rules of its own:
// a wrapper is exactly as safe to share across goroutines as the
// container it holds, with the usual one-writer-or-many-readers
// discipline on the caller's side.
package unchecked
