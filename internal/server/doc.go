// Package server owns the lifecycle of the REST backend: it binds the chi
// router to an http.Server, runs it, and drains connections on shutdown
// signals.
package server
