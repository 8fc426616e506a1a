// Package errs holds the typed errors shared by the dispatch domain, use cases and adapters.
//
// Every type pairs a sentinel with a struct carrying the details:
//   - ObjectNotFoundError (ErrObjectNotFound): a partner, appointment, vehicle or
//     customer id that does not resolve
//   - ValueIsRequiredError (ErrValueIsRequired): a missing field
//   - ValueIsInvalidError (ErrValueIsInvalid): a value rejected by a business rule
//   - ValueIsOutOfRangeError (ErrValueIsOutOfRange): a number outside its bounds
//   - ConfigurationIsInvalidError (ErrConfigurationIsInvalid): operator-supplied
//     settings, such as pricing rules, that cannot serve a request
//   - ObjectAlreadyExistsError (ErrObjectAlreadyExists): a duplicate registration
//     number or customer email
//
// Unwrap returns the sentinel, not the cause, so errors.Is classifies a failure
// without exposing storage errors. The HTTP adapter maps the sentinels to 400, 404,
// 409 and 500 responses.
package errs
