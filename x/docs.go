/*
Package x contains some standard extensions

Extensions implement common functionality (auth, cash, escrow, multisig)
and can be combined together to construct an engine. Each extension
defines its own messages and handlers; this package holds only the
interfaces they share.
*/
package x
