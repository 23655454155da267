//go:build fanlog_minimal

package cmd

import (
	"github.com/ardnew/fanlog/dispatch"
	"github.com/ardnew/fanlog/timing"
)

type logger = dispatch.Logger[dispatch.Slice[dispatch.Target], timing.Dummy]

// newLogger stamps every record with zero elapsed time.
func newLogger(targets dispatch.Slice[dispatch.Target], opts ...dispatch.Option) *logger {
	return dispatch.NewLogger(targets, timing.Dummy{}, opts...)
}
