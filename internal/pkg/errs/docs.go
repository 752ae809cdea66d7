// Package errs provides the argument-validation error types shared by the
// warehouse engine.
//
// Each type follows the same pattern:
//   - a sentinel error variable (e.g. ErrValueIsRequired) usable with errors.Is
//   - a struct carrying the offending parameter and an optional cause
//   - constructors with and without cause
//   - Unwrap returning the sentinel
//
// Domain rule violations (hierarchy, bounds, locking) are not modelled here;
// they live next to the aggregates that enforce them.
package errs
