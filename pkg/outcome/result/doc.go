// Package result provides Result[T, E], an immutable two-variant sum
// type holding either a success value or a failure payload.
//
// Common usage:
// - Ok/Err/Try: construct a Result
// - IsOk/IsErr, Unwrap/UnwrapOr/UnwrapOrElse/Expect: inspect and extract
// - Map/MapErr/AndThen/OrElse: transform one channel, keep the other
// - And/Or, MapOr/MapOrElse, Match: combine and collapse
// - Inspect/InspectErr: side effects without changing the result
//
// Failure information flows as data: combinators never panic. Only the
// two extraction misuses do: Unwrap/Expect on Err raise
// *outcome.UnwrapFailure with the original payload attached, and
// UnwrapErr/ExpectErr on Ok raise *outcome.InvariantViolation.
//
// Chain steps keep the error type E as-is; there is no implicit error
// conversion. Use MapErr or OrElse to move to a different error type.
package result
