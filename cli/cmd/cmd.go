package cmd

import (
	"context"
	"io"
	"iter"
	"os"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
)

type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

type configPathKey struct{}

// WithConfigPath returns a new context.Context naming the configuration file
// used by the commands.
func WithConfigPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, configPathKey{}, path)
}

// configPathFrom returns the path stored by [WithConfigPath], falling back to
// the kong variable [ConfigIdentifier].
func configPathFrom(ctx context.Context) string {
	if path, ok := ctx.Value(configPathKey{}).(string); ok && path != "" {
		return path
	}

	if ktx := kongContextFrom(ctx); ktx != nil {
		return ktx.Model.Vars()[ConfigIdentifier]
	}

	return ""
}

// stdout returns the writer commands print results to.
func stdout(ctx context.Context) io.Writer {
	if ktx := kongContextFrom(ctx); ktx != nil && ktx.Stdout != nil {
		return ktx.Stdout
	}

	return os.Stdout
}

// inputs is a list of opened files, with stdin last if requested.
type inputs struct {
	read     []io.Reader
	hasStdin bool
	stdin    io.Reader
}

// Sources yields every input in order. Each one is a separate stream, so the
// last line of a file never runs into the first line of the next.
func (s *inputs) Sources() iter.Seq[io.Reader] {
	return func(yield func(io.Reader) bool) {
		for _, r := range s.read {
			if !yield(r) {
				return
			}
		}

		if s.hasStdin {
			yield(s.stdin)
		}
	}
}

// Close closes every opened file.
func (s *inputs) Close() error {
	for _, r := range s.read {
		if c, ok := r.(io.Closer); ok {
			_ = c.Close()
		}
	}

	return nil
}

// fileKey uniquely identifies a file by its device and inode numbers.
// This handles deduplication across symlinks, absolute/relative paths, and
// special device files.
type fileKey struct {
	dev uint64
	ino uint64
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

// openInputs opens the given paths in order.
//
// Paths are deduplicated by resolving symlinks and comparing device/inode
// pairs. Every "-" refers to stdin, which is read once after all regular
// files. Paths that cannot be opened are returned as an error.
func openInputs(sources []string, stdin io.Reader) (*inputs, error) {
	srcs := inputs{stdin: stdin}
	seen := make(map[fileKey]struct{})

	for _, src := range sources {
		if src == stdinSource {
			srcs.hasStdin = true

			continue
		}

		reader, ok, err := openUniqueFile(src, seen)
		if err != nil {
			_ = srcs.Close()

			return nil, ErrReadInput.Wrap(err)
		}

		if ok {
			srcs.read = append(srcs.read, reader)
		}
	}

	return &srcs, nil
}

// openUniqueFile opens the file at path if it hasn't been seen before.
// It returns false without an error if the file is a duplicate.
func openUniqueFile(path string, seen map[fileKey]struct{}) (io.Reader, bool, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, false, err
	}

	resolved, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		return nil, false, err
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return nil, false, err
	}

	if key, ok := makeFileKey(info); ok {
		if _, exists := seen[key]; exists {
			return nil, false, nil
		}

		seen[key] = struct{}{}
	}

	file, err := os.Open(resolved)
	if err != nil {
		return nil, false, err
	}

	return file, true, nil
}

// makeFileKey creates a fileKey from os.FileInfo.
// Returns false if the underlying Sys() data is not of type *syscall.Stat_t.
func makeFileKey(info os.FileInfo) (key fileKey, ok bool) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return key, false
	}

	return fileKey{dev: uint64(stat.Dev), ino: stat.Ino}, true
}
