// Package solo contains single-value, synchronous primitives that operate
// on Result[T] and Option[T]. These functions are the building blocks for
// error-aware code without channels.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Validate/AndValidate: apply validation producing failure on invalid input
// - Switch: move from Result[In] to Result[Out]
// - Map: transform successful values
// - Try: call a function (Out, error) and convert error to failure
// - Tee/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/error handlers
// - Match/MapOption: the same for Option[T]
package solo
