/*
Package multisig implements the emergency withdrawal path of an escrow.

The creator nominates a signer group and a threshold; once enough group
members have signed, a single execution drains the remaining escrow
funds back to the creator and cancels the escrow. Signing only records
approval, it never moves funds by itself.
*/
package multisig
