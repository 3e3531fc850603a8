package terminal

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
)

// ReadFunc reads one answer for a prompt.
type ReadFunc func(ctx context.Context, prompt string) (string, error)

// ReadInterceptor wraps a read. It must call next to obtain the answer.
type ReadInterceptor func(ctx context.Context, prompt string, next ReadFunc) (string, error)

func chainInterceptors(base ReadFunc, interceptors []ReadInterceptor) ReadFunc {
	read := base
	for i := len(interceptors) - 1; i >= 0; i-- {
		ic, next := interceptors[i], read
		read = func(ctx context.Context, prompt string) (string, error) {
			return ic(ctx, prompt, next)
		}
	}
	return read
}

// LoggingInterceptor creates a read interceptor that logs every prompt and
// how long the user took to answer. Answers are not logged, only their length.
func LoggingInterceptor(logger *zap.Logger) ReadInterceptor {
	return func(ctx context.Context, prompt string, next ReadFunc) (string, error) {
		start := time.Now()

		logger.Debug("prompt issued", zap.String("prompt", prompt))

		line, err := next(ctx, prompt)
		duration := time.Since(start)

		switch {
		case err == nil:
			logger.Debug("prompt answered",
				zap.String("prompt", prompt),
				zap.Duration("duration", duration),
				zap.Int("length", len(line)))
		case errors.Is(err, context.Canceled), errors.Is(err, ErrInputClosed):
			logger.Info("prompt abandoned",
				zap.String("prompt", prompt),
				zap.Duration("duration", duration),
				zap.Error(err))
		default:
			logger.Error("prompt failed",
				zap.String("prompt", prompt),
				zap.Duration("duration", duration),
				zap.Error(err))
		}

		return line, err
	}
}
