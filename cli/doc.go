// Package cli contains the command line interface for fanlog.
//
// # Usage
//
//	fanlog [flags] <command>
//
//	fanlog init                         # write ~/.config/fanlog/config.yaml
//	fanlog check                        # validate it and list its targets
//	fanlog emit --level=warn disk low   # dispatch one record
//	tail -f app.out | fanlog emit -t app
//
// emit is the default command, so "fanlog some message" dispatches at info
// level with source "fanlog".
//
// # Configuration File
//
// The YAML file selected by --config describes the targets (see package
// [github.com/ardnew/fanlog/config]). Its top-level scalar keys also provide
// defaults for global flags, with underscores in place of hyphens:
//
//	log_level: debug
//	log_format: json
//
// Flag defaults are always read from the default configuration path;
// command-line flags override them.
//
// # Logging Options
//
//   - --log-level: diagnostics level (trace, debug, info, warn, error)
//   - --log-format: diagnostics format (json, text)
//   - --log-time-layout: timestamp layout (RFC3339, Kitchen, none, ...)
//   - --log-caller: include caller information
//
// Diagnostics go to standard error and are separate from dispatched records.
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o fanlog .
//
//   - --pprof-mode: enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: profile output directory (default ~/.cache/fanlog/pprof)
package cli
