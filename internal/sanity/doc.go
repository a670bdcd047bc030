// Package sanity is a read-only client for the Sanity content store.
//
// The client issues GROQ queries against the HTTP query endpoint and decodes
// the result envelope into caller-provided records. It never writes to the
// store and never caches results; every call is a fresh round trip.
package sanity
