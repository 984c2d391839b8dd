// Package chain provides a fluent wrapper around Result[T] for multi-step
// fallible work, so each step runs only if the previous one succeeded.
//
//	res := chain.ThenTry(chain.FromValue(ctx, path), os.Open)
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or value
// - Then/ThenTry/Map: next step, switching the value type
// - Ensure/OnFailure: side effects on either track
// - Finally/Get: leave the chain
package chain
