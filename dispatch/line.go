package dispatch

import (
	"io"
	"strconv"
	"sync"
	"time"
)

// Timestamp is the display form of an elapsed duration.
//
// Minutes*60 + Seconds equals the whole seconds of the duration and Millis
// its sub-second milliseconds.
type Timestamp struct {
	Minutes uint64
	Seconds uint64
	Millis  uint32
}

// TimestampOf decomposes d. Negative durations are treated as zero.
func TimestampOf(d time.Duration) Timestamp {
	if d < 0 {
		d = 0
	}

	secs := uint64(d / time.Second)

	return Timestamp{
		Minutes: secs / 60,
		Seconds: secs % 60,
		Millis:  uint32((d % time.Second) / time.Millisecond),
	}
}

// AppendFormat appends "+MMM:SS.ssss" to dst.
//
// The millisecond field is four characters wide, so values below 1000
// always carry a leading zero ("+002:05.0400" for 125.4s). Consumers parse
// the fixed width; do not narrow it.
func (t Timestamp) AppendFormat(dst []byte) []byte {
	dst = append(dst, '+')
	dst = appendPadded(dst, t.Minutes, 3)
	dst = append(dst, ':')
	dst = appendPadded(dst, t.Seconds, 2)
	dst = append(dst, '.')

	return appendPadded(dst, uint64(t.Millis), 4)
}

func (t Timestamp) String() string {
	var buf [24]byte

	return string(t.AppendFormat(buf[:0]))
}

// AppendLine appends the canonical line for a record to dst, without a
// trailing newline:
//
//	[+MMM:SS.ssss][LEVEL] (source) message
func AppendLine(dst []byte, elapsed time.Duration, level Level, source, message string) []byte {
	dst = appendHeader(dst, elapsed, level, source)

	return append(dst, message...)
}

// FormatLine returns the canonical line for a record, without a trailing
// newline.
func FormatLine(elapsed time.Duration, level Level, source, message string) string {
	return string(AppendLine(nil, elapsed, level, source, message))
}

// AppendRecord is [AppendLine] for a [Record], rendering its message in place.
func AppendRecord(dst []byte, elapsed time.Duration, r Record) []byte {
	dst = appendHeader(dst, elapsed, r.Level, r.Source)

	return r.AppendMessage(dst)
}

// WriteLine renders the line for r followed by a newline and writes it to w
// with a single call to Write.
func WriteLine(w io.Writer, elapsed time.Duration, r Record) (int, error) {
	buf := getLine()
	defer putLine(buf)

	*buf = append(AppendRecord((*buf)[:0], elapsed, r), '\n')

	return w.Write(*buf)
}

func appendHeader(dst []byte, elapsed time.Duration, level Level, source string) []byte {
	dst = append(dst, '[')
	dst = TimestampOf(elapsed).AppendFormat(dst)
	dst = append(dst, "]["...)
	dst = append(dst, level.String()...)
	dst = append(dst, "] ("...)
	dst = append(dst, source...)

	return append(dst, ") "...)
}

func appendPadded(dst []byte, v uint64, width int) []byte {
	var buf [20]byte

	digits := strconv.AppendUint(buf[:0], v, 10)
	for i := len(digits); i < width; i++ {
		dst = append(dst, '0')
	}

	return append(dst, digits...)
}

// maxPooledLine bounds the capacity of buffers returned to the pool so one
// oversized message does not pin memory.
const maxPooledLine = 16 << 10

var linePool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, 256)

		return &b
	},
}

func getLine() *[]byte {
	b, _ := linePool.Get().(*[]byte)

	return b
}

func putLine(b *[]byte) {
	if cap(*b) > maxPooledLine {
		return
	}

	linePool.Put(b)
}
