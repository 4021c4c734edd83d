// Package client is the caller side of auth.AuthService.
//
// # Overview
//
// GRPCClient owns one connection to the credential service and is meant to be
// constructed once at process start and passed to whoever needs it. It is safe
// for concurrent use.
//
// # Results, not errors
//
// CheckGroup and GenerateGroupPassword never return an error. Every failure is
// folded into the result's Error field, formatted as
//
//	gRPC error: <message> (code: <code>)
//
// # Retry policy
//
// A call is attempted up to RetryAttempts times with a constant RetryBackoff
// pause between attempts. Transport failures (Unavailable, DeadlineExceeded,
// Aborted, ResourceExhausted, or errors that carry no gRPC status) are
// retried. Internal and every other status code are not, and neither is a
// successful response carrying a negative answer. The caller's context bounds
// the whole sequence.
package client
