package dispatch

import "fmt"

// Record is a single log event.
//
// The message is rendered lazily: a record holds a format string and its
// arguments, and targets render the text only after the record has passed
// their level and ignore checks.
type Record struct {
	// Level is the severity of the record.
	Level Level
	// Source is a namespaced tag identifying the producer, such as
	// "net/http" or "app.db". Ignore lists match against it.
	Source string

	format string
	args   []any
}

// NewRecord returns a record carrying a literal message.
func NewRecord(level Level, source, message string) Record {
	return Record{Level: level, Source: source, format: message}
}

// Recordf returns a record whose message is rendered with [fmt.Sprintf]
// semantics when a target writes it.
func Recordf(level Level, source, format string, args ...any) Record {
	return Record{Level: level, Source: source, format: format, args: args}
}

// Message renders the record's message.
func (r Record) Message() string {
	if len(r.args) == 0 {
		return r.format
	}

	return fmt.Sprintf(r.format, r.args...)
}

// AppendMessage renders the record's message onto dst.
func (r Record) AppendMessage(dst []byte) []byte {
	if len(r.args) == 0 {
		return append(dst, r.format...)
	}

	return fmt.Appendf(dst, r.format, r.args...)
}
