// Package web owns the browser-facing marketing site.
//
// It composes the feature modules into one handler, wraps it with the shared
// middleware stack and runs the HTTP server lifecycle.
package web
