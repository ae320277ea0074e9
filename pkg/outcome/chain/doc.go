// Package chain provides a minimal fluent Chain[T, E] for synchronous
// composition of result.Result values.
//
// It keeps the API surface very small:
// - Start/FromValue: create a Chain
// - Then/Map: compose result-returning or pure functions
// - Ensure: trigger side effects without changing the result
// - Or/And: combine alternative and required chains
// - RepeatUntil/While: loop a step over the success value
// - Finally: reduce to a concrete value via handlers
//
// Package-level Then/Map/Finally switch the value type; the methods
// keep it. Chains are values and every step returns a new one.
package chain
