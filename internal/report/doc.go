// Package report renders an assembled render graph for inspection. The
// snapshot is taken after the build phase; it never runs stages.
package report
