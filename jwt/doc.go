// Package jwt provides local, signature-free inspection of panel access
// tokens that happen to be JWTs.
//
// The panel treats its token as opaque; this package exists solely so the
// startup check can skip a network round trip for a token whose embedded
// expiry has already passed. [Inspect] parses the registered claims without
// verifying the signature, and [ExpiredAt] answers "is this provably stale".
//
// # What this package must NOT do
//
//   - Verify signatures or accept a token as valid. Only the panel API can
//     do that; a non-expired parse result proves nothing.
//   - Reject non-JWT tokens. Anything unparseable is simply "not a JWT" and
//     must be sent to the server as-is.
package jwt
