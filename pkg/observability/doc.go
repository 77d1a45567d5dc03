/*
Package observability provides tools for monitoring the calculator engine.

It exposes Prometheus metrics fed by engine hooks: operations dispatched,
operations that failed, operations refused for a missing operand, and the
current stack depth.
*/
package observability
