/*
Package observability provides tools for monitoring the nfasim simulator.

Metrics exposes Prometheus collectors fed by domain.LifecycleHooks, LogHooks
writes the same events to a structured logger, and ChainHooks lets several
hook sets observe one simulator.
*/
package observability
