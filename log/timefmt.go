package log

import (
	"strings"
	"time"
)

// FormatTime renders the timestamp of a diagnostic. An empty result drops the
// timestamp from the output.
type FormatTime func(time.Time) string

// DefaultTimeLayout is used when no time layout is configured.
const DefaultTimeLayout = time.RFC3339

// namedLayout resolves a layout name from package [time], compared on its
// lowercase letters and digits only, so "RFC3339Nano", "rfc-3339-nano" and
// "rfc3339nano" are the same name. A few short aliases are accepted for the
// sub-second stamps.
func namedLayout(name string) (layout string, ok bool) {
	key := strings.Map(func(r rune) rune {
		switch {
		case 'a' <= r && r <= 'z', '0' <= r && r <= '9':
			return r
		}

		return -1
	}, strings.ToLower(name))

	switch key {
	case "", "none":
		return "", true
	case "rfc3339":
		return time.RFC3339, true
	case "rfc3339nano":
		return time.RFC3339Nano, true
	case "datetime":
		return time.DateTime, true
	case "timeonly":
		return time.TimeOnly, true
	case "kitchen":
		return time.Kitchen, true
	case "stamp":
		return time.Stamp, true
	case "stampmilli", "ms":
		return time.StampMilli, true
	case "stampmicro", "us":
		return time.StampMicro, true
	case "stampnano", "ns":
		return time.StampNano, true
	}

	return "", false
}

// timeFormatter returns the [FormatTime] for layout. Named layouts are looked
// up with [namedLayout]; anything else is passed to [time.Time.Format]
// verbatim. A blank layout or "none" omits timestamps.
func timeFormatter(layout string) FormatTime {
	if named, ok := namedLayout(layout); ok {
		if named == "" {
			return func(time.Time) string { return "" }
		}

		layout = named
	}

	return func(t time.Time) string { return t.Format(layout) }
}
