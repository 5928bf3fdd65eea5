// Package main runs the passforge HTTP API server.
//
// The server is stateless: it derives, analyzes and verifies on demand and
// persists nothing. See internal/api for the route list and behaviour. The
// default listen address is :8080.
package main
