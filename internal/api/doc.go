// Package api is the SDK binding for the Cumulus RPC API.
//
// A Client issues Calls through a pluggable Transport. The default transport
// speaks JSON over HTTP; FixtureTransport answers from embedded canned data,
// and MockableTransport wraps any other transport to record calls and
// intercept selected service/method pairs for tests.
package api
