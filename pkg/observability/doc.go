/*
Package observability provides tools for monitoring the branchtale reader.

It turns the engine's lifecycle hooks into Prometheus counters and debug logs.
*/
package observability
