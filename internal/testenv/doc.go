// Package testenv bootstraps the process environment for the backend test
// suite.
//
// Init resolves five configuration keys (execution mode, Postgres URL, Redis
// URL, and the access/refresh JWT signing secrets). A value already present in
// the process environment takes precedence over the optional `.env.test`
// override file, which in turn beats the hardcoded test defaults. The
// execution mode is the exception: it is always forced to "test". The resolved
// set is published back into the process environment and also returned as a
// Config struct for callers that prefer explicit values over os.Getenv.
package testenv
