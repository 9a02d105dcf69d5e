/*
Package cash keeps the per-address token balances and exposes the
custodial funds transfer controller used by the escrow and withdrawal
handlers.

Balances live in wallets keyed by address. Nothing in this package
decides who may move funds; callers own authorization and pass in the
source and destination addresses they already resolved.
*/
package cash
