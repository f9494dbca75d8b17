// Package dbg is a build-tag-gated debug logger, generalizing the
// teacher library's debug-only logging (log_debug.go) so that release
// builds compile with a no-op Printf and debug builds
// (`go build -tags debug`) log to os.Stderr. Every package in the
// merge/admissibility/RANSAC chain calls Printf to trace per-cycle
// decisions; the calls cost nothing in a release build.
package dbg
