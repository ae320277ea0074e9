// Package option provides Option[T], an immutable two-variant sum type
// holding either a present value or nothing.
//
// Common usage:
// - Some/None: direct constructors
// - FromPtr/FromNillable: lift nullable inputs (only nil is absence;
//   zero values are present)
// - MustSome: guarded constructor that rejects nil
// - Map/AndThen/Filter, Or/OrElse/And, MapOr/MapOrElse, Match
//
// Unwrap/Expect on None panic with *outcome.UnwrapFailure; everything
// else flows as data. Options nest inside Results freely, e.g.
// Result[Option[T], E] for a lookup that can fail or find nothing.
package option
