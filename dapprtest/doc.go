/*
Package dapprtest provides mocks and helpers for testing handlers and
decorators. Instances here implement the core interfaces with
configurable results and call counters.
*/
package dapprtest
