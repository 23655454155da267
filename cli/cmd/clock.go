//go:build !fanlog_minimal

package cmd

import (
	"github.com/ardnew/fanlog/dispatch"
	"github.com/ardnew/fanlog/timing"
)

type logger = dispatch.Logger[dispatch.Slice[dispatch.Target], timing.Monotonic]

// newLogger stamps records with the monotonic time since the call.
func newLogger(targets dispatch.Slice[dispatch.Target], opts ...dispatch.Option) *logger {
	return dispatch.NewLogger(targets, timing.Start[timing.Monotonic](), opts...)
}
