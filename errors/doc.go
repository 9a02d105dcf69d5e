/*
Package errors implements custom error interfaces for the engine.

The idea is to reuse as many errors from this package as possible and define
custom package errors when absolutely necessary. All errors returned by an
operation wrap exactly one root error, registered with a unique code, so
callers can classify failures with the root error's Is method without
parsing messages.
*/
package errors
