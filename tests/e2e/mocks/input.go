package mocks

import (
	"io"
	"strings"
	"sync"
)

// StallingInput serves a fixed script and then blocks, like a user who stops
// typing, until Close is called.
type StallingInput struct {
	script  io.Reader
	done    chan struct{}
	once    sync.Once
	Drained chan struct{}
	drained sync.Once
}

func NewStallingInput(lines ...string) *StallingInput {
	return &StallingInput{
		script:  strings.NewReader(strings.Join(lines, "\n") + "\n"),
		done:    make(chan struct{}),
		Drained: make(chan struct{}),
	}
}

func (s *StallingInput) Read(p []byte) (int, error) {
	n, err := s.script.Read(p)
	if n > 0 {
		return n, nil
	}
	if err != io.EOF {
		return 0, err
	}

	s.drained.Do(func() { close(s.Drained) })
	<-s.done
	return 0, io.EOF
}

func (s *StallingInput) Close() error {
	s.once.Do(func() { close(s.done) })
	return nil
}
