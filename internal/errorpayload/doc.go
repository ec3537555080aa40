// Package errorpayload builds the structured error the nacm engine's
// callers put on the wire for a Deny verdict — the error payload
// collaborator of spec.md §6. It knows nothing about NACM itself; it
// only encodes an RFC 6241 <rpc-error> element carrying an
// application-tag and message.
package errorpayload
