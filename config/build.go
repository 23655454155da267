package config

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/ardnew/fanlog/dispatch"
	"github.com/ardnew/fanlog/dispatch/target"
)

// Build opens every configured target in order and returns them as one
// collection. The returned function closes every target that holds an open
// file or device.
//
// If any target fails to open, the targets opened before it are closed and
// the error is returned.
func (c Config) Build() (dispatch.Slice[dispatch.Target], func() error, error) {
	if err := c.Validate(); err != nil {
		return nil, nil, err
	}

	targets := make(dispatch.Slice[dispatch.Target], 0, len(c.Targets))

	var closers []io.Closer

	closeAll := func() error {
		var errs []error

		for _, cl := range closers {
			errs = append(errs, cl.Close())
		}

		return errors.Join(errs...)
	}

	for _, tc := range c.Targets {
		t, closer, err := tc.open()
		if err != nil {
			_ = closeAll()

			return nil, nil, err
		}

		targets = append(targets, t)

		if closer != nil {
			closers = append(closers, closer)
		}
	}

	return targets, closeAll, nil
}

func (t Target) open() (dispatch.Target, io.Closer, error) {
	program, err := compileIgnore(t.IgnoreIf)
	if err != nil {
		return nil, nil, err
	}

	dt, closer, err := t.openBackend()
	if err != nil || program == nil {
		return dt, closer, err
	}

	return newExprTarget(dt, program), closer, nil
}

func (t Target) openBackend() (dispatch.Target, io.Closer, error) {
	ignore := dispatch.NewIgnoreList(t.Ignore...)

	switch t.Kind {
	case KindStdout:
		return target.NewStdout(t.Level, ignore), nil, nil

	case KindStderr:
		return target.NewStderr(t.Level, ignore), nil, nil

	case KindFile:
		f, err := target.OpenFile(t.Level, ignore, t.Path, t.Mode)
		if err != nil {
			return nil, nil, err
		}

		return f, f, nil

	case KindRotate:
		r := target.NewRotating(t.Level, ignore, t.Path, target.Rotation{
			MaxSizeMB:  t.MaxSizeMB,
			MaxBackups: t.MaxBackups,
			MaxAgeDays: t.MaxAgeDays,
			Compress:   t.Compress,
		})

		return r, r, nil

	case KindSerial:
		dev, err := os.OpenFile(t.Path, os.O_WRONLY, 0)
		if err != nil {
			return nil, nil, &target.SerialError{Port: t.Path, Op: "open", Err: err}
		}

		switch {
		case t.TimeoutMS > 0:
			timeout := time.Duration(t.TimeoutMS) * time.Millisecond
			tx := target.DeadlineTransmitter{Writer: dev}

			return target.NewSerialWait(t.Level, ignore, t.Path, tx, timeout), dev, nil

		case t.Retries > 0:
			tx := target.WriterTransmitter{Writer: dev}

			return target.NewSerialTry(t.Level, ignore, t.Path, tx, t.Retries), dev, nil
		}

		return target.NewSerial(t.Level, ignore, t.Path, target.WriterTransmitter{Writer: dev}), dev, nil
	}

	return nil, nil, t.Kind.check()
}
