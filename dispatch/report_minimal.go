//go:build fanlog_minimal

package dispatch

func reportError(int, error) {}

func announce(LevelFilter) {}
