package config

import (
	"slices"

	"github.com/sahilm/fuzzy"

	"github.com/ardnew/fanlog/pkg"
)

// Kind names a target backend.
type Kind string

const (
	KindStdout Kind = "stdout"
	KindStderr Kind = "stderr"
	KindFile   Kind = "file"
	KindRotate Kind = "rotate"
	KindSerial Kind = "serial"
)

var kinds = []string{
	string(KindStdout),
	string(KindStderr),
	string(KindFile),
	string(KindRotate),
	string(KindSerial),
}

// Kinds returns the supported kind names.
func Kinds() []string { return slices.Clone(kinds) }

// Valid reports whether k is a supported kind.
func (k Kind) Valid() bool { return slices.Contains(kinds, string(k)) }

// NeedsPath reports whether targets of kind k write to a path.
func (k Kind) NeedsPath() bool {
	return k == KindFile || k == KindRotate || k == KindSerial
}

// Suggest returns the supported kind closest to k, or "" if none is close.
func (k Kind) Suggest() Kind {
	matches := fuzzy.Find(string(k), kinds)
	if len(matches) == 0 {
		return ""
	}

	return Kind(matches[0].Str)
}

func (k Kind) check() error {
	if k.Valid() {
		return nil
	}

	if s := k.Suggest(); s != "" {
		return pkg.ErrUnknownKind.Wrapf("%q (did you mean %q?)", string(k), string(s))
	}

	return pkg.ErrUnknownKind.Wrapf("%q", string(k))
}
