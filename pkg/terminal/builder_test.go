package terminal

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_Validation(t *testing.T) {
	t.Run("missing input", func(t *testing.T) {
		s, err := New(WithOutput(io.Discard))

		assert.Error(t, err)
		assert.Nil(t, s)
	})

	t.Run("missing output", func(t *testing.T) {
		s, err := New(WithInput(strings.NewReader("")))

		assert.Error(t, err)
		assert.Nil(t, s)
	})

	t.Run("nil logger gets default", func(t *testing.T) {
		s, err := New(WithInput(strings.NewReader("")), WithOutput(io.Discard), WithLogger(nil))

		require.NoError(t, err)
		assert.NotNil(t, s.logger)
	})
}

func TestSession_ReadLine(t *testing.T) {
	var out bytes.Buffer
	s, err := New(
		WithInput(strings.NewReader("first\r\n  second  \n")),
		WithOutput(&out),
		WithLogger(zaptest.NewLogger(t)),
		WithLogging(true),
	)
	require.NoError(t, err)

	ctx := context.Background()

	line, err := s.ReadLine(ctx, "One: ")
	require.NoError(t, err)
	assert.Equal(t, "first", line)

	line, err = s.ReadLine(ctx, "Two: ")
	require.NoError(t, err)
	assert.Equal(t, "  second  ", line, "whitespace is left to the caller")

	_, err = s.ReadLine(ctx, "Three: ")
	assert.ErrorIs(t, err, ErrInputClosed)

	assert.Equal(t, "One: Two: Three: ", out.String())
}

func TestSession_ReadLineCanceled(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	s, err := New(WithInput(pr), WithOutput(io.Discard))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err = s.ReadLine(ctx, "Waiting: ")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSession_ReadLineAlreadyCanceled(t *testing.T) {
	var out bytes.Buffer
	s, err := New(WithInput(strings.NewReader("ignored\n")), WithOutput(&out))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = s.ReadLine(ctx, "Prompt: ")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String(), "no prompt is written once canceled")
}

func TestSession_Interceptors(t *testing.T) {
	var order []string
	record := func(name string) ReadInterceptor {
		return func(ctx context.Context, prompt string, next ReadFunc) (string, error) {
			order = append(order, name+":before")
			line, err := next(ctx, prompt)
			order = append(order, name+":after")
			return line, err
		}
	}
	upper := func(ctx context.Context, prompt string, next ReadFunc) (string, error) {
		line, err := next(ctx, prompt)
		return strings.ToUpper(line), err
	}

	s, err := New(
		WithInput(strings.NewReader("fa\n")),
		WithOutput(io.Discard),
		WithInterceptors(record("outer"), record("inner"), upper),
	)
	require.NoError(t, err)

	line, err := s.ReadLine(context.Background(), "Category: ")
	require.NoError(t, err)

	assert.Equal(t, "FA", line)
	assert.Equal(t, []string{"outer:before", "inner:before", "inner:after", "outer:after"}, order)
}

func TestLoggingInterceptor(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	interceptor := LoggingInterceptor(zap.New(core))

	t.Run("successful read", func(t *testing.T) {
		line, err := interceptor(context.Background(), "Grade: ", func(ctx context.Context, prompt string) (string, error) {
			return "87.9", nil
		})

		require.NoError(t, err)
		assert.Equal(t, "87.9", line)

		answered := logs.FilterMessage("prompt answered").All()
		require.Len(t, answered, 1)
		assert.Equal(t, int64(4), answered[0].ContextMap()["length"])
	})

	t.Run("abandoned read", func(t *testing.T) {
		_, err := interceptor(context.Background(), "Grade: ", func(ctx context.Context, prompt string) (string, error) {
			return "", ErrInputClosed
		})

		assert.ErrorIs(t, err, ErrInputClosed)
		assert.Equal(t, 1, logs.FilterMessage("prompt abandoned").Len())
	})

	t.Run("failed read", func(t *testing.T) {
		_, err := interceptor(context.Background(), "Grade: ", func(ctx context.Context, prompt string) (string, error) {
			return "", errors.New("broken pipe")
		})

		assert.Error(t, err)
		assert.Equal(t, 1, logs.FilterMessage("prompt failed").Len())
	})
}

func TestSession_ReadLineLongLine(t *testing.T) {
	name := strings.Repeat("a", 70000)
	s, err := New(WithInput(strings.NewReader(name+"\nFA")), WithOutput(io.Discard))
	require.NoError(t, err)

	ctx := context.Background()

	line, err := s.ReadLine(ctx, "Assignment Name: ")
	require.NoError(t, err)
	assert.Equal(t, name, line)

	line, err = s.ReadLine(ctx, "Category (FA/SA): ")
	require.NoError(t, err)
	assert.Equal(t, "FA", line, "a final line without terminator is still delivered")

	_, err = s.ReadLine(ctx, "Grade (0-100): ")
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestSession_CloseReleasesReader(t *testing.T) {
	s, err := New(WithInput(strings.NewReader("one\ntwo\nthree\n")), WithOutput(io.Discard))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	_, err = s.ReadLine(ctx, "First: ")
	require.NoError(t, err)
	cancel()

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	_, err = s.ReadLine(context.Background(), "Second: ")
	assert.ErrorIs(t, err, ErrInputClosed)

	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-s.lines:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("line reader still running after Close")
		}
	}
}

func TestSession_Output(t *testing.T) {
	var out bytes.Buffer
	s, err := New(WithInput(strings.NewReader("")), WithOutput(&out))
	require.NoError(t, err)

	assert.Equal(t, &out, s.Output())
}
