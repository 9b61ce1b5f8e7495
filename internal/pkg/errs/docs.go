// Package errs provides the standardized error types used throughout the
// fleet simulation service: a sentinel error per failure class plus a typed
// struct carrying the failing parameter and an optional cause.
//
// The failure classes map onto the engine's validation taxonomy:
//   - ValueIsRequiredError: a required value is missing or empty (blank
//     courier ids, empty fleets where one is needed)
//   - ValueIsInvalidError: a value failed a validation rule (unparseable
//     statuses, NaN coordinates)
//   - ValueIsOutOfRangeError: a value lies outside its allowed range
//     (latitudes beyond +/-90, negative speeds)
//   - ObjectNotFoundError: a record cannot be located by its identifier
//
// Each type follows the same pattern: a sentinel variable (e.g.
// ErrValueIsRequired) for classification via errors.Is, constructors with and
// without a cause, an Error() that renders a single-line message, and an
// Unwrap() returning the sentinel. Callers branch on the sentinel and read
// details off the typed struct via errors.As.
package errs
