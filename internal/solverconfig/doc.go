// Package solverconfig holds solver-wide configuration loadable from a
// YAML file: log level, whether to coalesce itinerary instructions, and
// a search_trace_diagnostics flag. The search_trace_diagnostics flag is
// decoded but no other package reads it, so it has no effect. Load
// decodes over Default(), so fields absent from the YAML keep their
// Default() values; SolverConfig carries no required fields, so an
// absent --config flag is equivalent to an empty bundle.
package solverconfig
