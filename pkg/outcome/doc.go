// Package outcome holds the failure signals shared by the result and
// option containers.
//
// Two panic kinds are part of the public contract:
// - UnwrapFailure: extraction (Unwrap/Expect) on the empty variant;
//   carries the original error payload for Result
// - InvariantViolation: wrong-variant accessor or a guarded constructor
//   fed the absence sentinel; a caller bug, never expected control flow
//
// Combinators themselves never panic; all other failure information
// flows as data through Err and None values.
package outcome
