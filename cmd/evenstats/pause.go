package main

import (
	"context"
	"errors"
	"io"

	"github.com/moby/term"
	"github.com/sirupsen/logrus"
)

// waitForKey blocks until one byte is read from in, in reaches EOF, or ctx
// is done. A terminal is put in raw mode for the wait so any single key
// counts, not only Enter.
func waitForKey(ctx context.Context, in io.Reader) error {
	if fd, isTerminal := term.GetFdInfo(in); isTerminal {
		state, err := term.SetRawTerminal(fd)
		if err != nil {
			return err
		}
		defer func() {
			if err := term.RestoreTerminal(fd, state); err != nil {
				logrus.WithError(err).Warn("Failed to restore terminal")
			}
		}()
	}

	done := make(chan error, 1)
	go func() {
		var b [1]byte
		_, err := in.Read(b[:])
		if errors.Is(err, io.EOF) {
			err = nil
		}
		done <- err
	}()

	select {
	case <-ctx.Done():
		logrus.Debug("Wait for key press interrupted")
		return nil
	case err := <-done:
		return err
	}
}
