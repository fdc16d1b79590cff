// Package errs holds the error types shared by the domain and application
// layers. Every type unwraps to one sentinel (ErrObjectNotFound,
// ErrValueIsInvalid, ErrValueIsOutOfRange, ErrValueIsRequired,
// ErrAccessDenied or ErrConflict) so adapters can classify failures with
// errors.Is, for example when choosing an HTTP status.
package errs
