// Package limiter implements the host-facing paste boundary for clipfit.
//
// The host editor supplies its configured maximum document length and, per
// paste or drop event, the current document length and the candidate payload.
// The limiter answers with the content that may actually be inserted; the
// host owns splicing and rendering.
package limiter
