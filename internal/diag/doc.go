// Package diag carries warnings and verification findings between the code
// generation layer, the driver and the CLI. Hard failures travel as error
// values; a Bag is only the side channel for diagnostics that must not abort
// generation (implicit casts, degraded cache, per-case verify results).
//
// The layer itself has no source positions: the front end owns spans and
// attaches them when it forwards diagnostics to the user.
package diag
