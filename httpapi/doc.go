// Package httpapi exposes the extraction pipeline and the randomness test
// battery over HTTP.
//
// Routes:
//
//	GET  /generate?n=N  — N bytes of simulated randomness as a JSON payload
//	                      with the raw 0/1 bit array, a hex encoding of the
//	                      packed bytes, and the bit count
//	POST /test          — runs the battery on a JSON {"bits": [0,1,...]}
//	                      body of at least 100 bits
//	GET  /health        — liveness probe
//
// The adapter owns all HTTP concerns: environment-driven configuration,
// request validation and status mapping, graceful shutdown. Core errors
// surface as 400 (caller input) or 500 (numerical failure); the core itself
// never sees the transport.
package httpapi
