package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// ErrInputClosed is returned when the input stream ends before a line is read.
var ErrInputClosed = errors.New("input closed")

type Option func(*Options)

type Options struct {
	input         io.Reader
	output        io.Writer
	logger        *zap.Logger
	interceptors  []ReadInterceptor
	enableLogging bool
}

func WithInput(r io.Reader) Option {
	return func(o *Options) {
		o.input = r
	}
}

func WithOutput(w io.Writer) Option {
	return func(o *Options) {
		o.output = w
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		o.logger = logger
	}
}

func WithInterceptors(interceptors ...ReadInterceptor) Option {
	return func(o *Options) {
		o.interceptors = append(o.interceptors, interceptors...)
	}
}

func WithLogging(enabled bool) Option {
	return func(o *Options) {
		o.enableLogging = enabled
	}
}

type lineResult struct {
	text string
	err  error
}

// Session writes prompts and reads answers one line at a time.
type Session struct {
	in     io.Reader
	out    io.Writer
	logger *zap.Logger
	read   ReadFunc

	startOnce sync.Once
	closeOnce sync.Once
	lines     chan lineResult
	done      chan struct{}
}

// New creates a new Session using the builder options.
func New(opts ...Option) (*Session, error) {
	options := &Options{
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(options)
	}

	if options.input == nil {
		return nil, fmt.Errorf("terminal input cannot be nil")
	}
	if options.output == nil {
		return nil, fmt.Errorf("terminal output cannot be nil")
	}

	logger := options.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Session{
		in:     options.input,
		out:    options.output,
		logger: logger.Named("terminal"),
		lines:  make(chan lineResult),
		done:   make(chan struct{}),
	}

	var interceptors []ReadInterceptor
	if options.enableLogging {
		interceptors = append(interceptors, LoggingInterceptor(s.logger))
	}
	interceptors = append(interceptors, options.interceptors...)
	s.read = chainInterceptors(s.readLine, interceptors)

	return s, nil
}

// ReadLine prints prompt and blocks until a line arrives, the input ends, or
// ctx is done. The returned text has its line terminator removed.
func (s *Session) ReadLine(ctx context.Context, prompt string) (string, error) {
	return s.read(ctx, prompt)
}

// Close stops the line reader. Pending and later reads return ErrInputClosed.
// A reader blocked inside the underlying input is released once that read returns.
func (s *Session) Close() error {
	s.closeOnce.Do(func() { close(s.done) })
	return nil
}

// Output returns the writer prompts are written to.
func (s *Session) Output() io.Writer {
	return s.out
}

func (s *Session) readLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	select {
	case <-s.done:
		return "", ErrInputClosed
	default:
	}
	s.startOnce.Do(func() { go s.scan() })

	if _, err := io.WriteString(s.out, prompt); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-s.done:
		return "", ErrInputClosed
	case r, ok := <-s.lines:
		if !ok {
			return "", ErrInputClosed
		}
		if r.err != nil {
			return "", fmt.Errorf("read input: %w", r.err)
		}
		return r.text, nil
	}
}

// scan feeds lines to readLine until the input is exhausted or the session
// is closed. Lines have no length limit.
func (s *Session) scan() {
	defer close(s.lines)

	br := bufio.NewReader(s.in)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			if !s.send(lineResult{text: line}) {
				return
			}
		}
		if err == nil {
			continue
		}
		if !errors.Is(err, io.EOF) {
			s.logger.Warn("input read failed", zap.Error(err))
			s.send(lineResult{err: err})
		}
		return
	}
}

func (s *Session) send(r lineResult) bool {
	select {
	case s.lines <- r:
		return true
	case <-s.done:
		return false
	}
}
