/*
Package escrow implements the milestone escrow lifecycle.

An escrow pairs a creator with a recipient for a single currency. The
creator describes the work as an ordered set of milestones, a funder
locks the full amount in an escrow-held account, and funds leave that
account milestone by milestone as the work is verified and released.

The escrow account address is derived from the creator/recipient pair,
so one pair holds at most one escrow and every participant can compute
the address without asking the engine.
*/
package escrow
