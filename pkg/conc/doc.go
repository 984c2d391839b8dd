// Package conc provides the small set of concurrency primitives the lessons
// are built on.
//
// Units of work are goroutines started with Spawn or Go and awaited with
// Handle.Join; a panic inside a unit is recovered and returned by Join as a
// *PanicError instead of crashing the process.
//
// Shared state is guarded by Mutex[T], which hands out access only inside
// With so the lock is released on every exit path. A holder that panics
// poisons the mutex and later acquisitions fail with ErrPoisoned.
//
// Shared[T] gives reference-counted ownership of a value across units:
// every unit Clones its own handle and Releases it when done, the value is
// released when the last handle goes.
//
// On top of those:
//   - Interleave runs a spawned loop next to a caller loop and joins it.
//   - Accumulate has N units increment one guarded counter.
//   - NewOneShot creates a channel that carries exactly one value.
//
// Loop sizes, pauses, unit counts and the logger are read from the context,
// see WithOptions.
package conc
