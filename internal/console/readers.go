package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/godilite/gradegen/internal/repository/models"
	"go.uber.org/zap"
)

var (
	ErrEmptyInput      = errors.New("empty input")
	ErrNotANumber      = errors.New("not a number")
	ErrOutOfRange      = errors.New("out of range")
	ErrNotPositive     = errors.New("not positive")
	ErrTooLarge        = errors.New("too large")
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownAnswer   = errors.New("unknown answer")
)

const (
	hintEmpty       = "Input cannot be empty."
	hintCategory    = "Invalid category. Enter 'FA' (Formative) or 'SA' (Summative)."
	hintGradeNaN    = "Please enter a number for grade (0-100)."
	hintGradeRange  = "Grade must be between 0 and 100."
	hintNumberNaN   = "Please enter a valid number."
	hintNotPositive = "Value must be a positive number."
	hintTooLarge    = "Value is too large."
	hintYesNo       = "Enter 'y' or 'n'."
)

// maxPositive keeps truncated weights inside a 32-bit int.
const maxPositive = math.MaxInt32

// Prompter asks questions until it receives an acceptable answer. None of its
// methods return an invalid value; they only fail when reading fails.
type Prompter struct {
	in     LineReader
	out    io.Writer
	logger *zap.Logger
}

func NewPrompter(in LineReader, out io.Writer, logger *zap.Logger) *Prompter {
	if in == nil {
		panic("nil LineReader provided to NewPrompter")
	}
	if out == nil {
		out = io.Discard
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Prompter{
		in:     in,
		out:    out,
		logger: logger.Named("prompter"),
	}
}

// ask keeps reading until parse accepts the line. hint maps a parse error to
// the message shown before asking again.
func ask[T any](ctx context.Context, p *Prompter, prompt string, parse func(string) (T, error), hint func(error) string) (T, error) {
	for {
		line, err := p.in.ReadLine(ctx, prompt)
		if err != nil {
			var zero T
			return zero, err
		}

		v, err := parse(line)
		if err == nil {
			return v, nil
		}

		p.logger.Debug("input rejected", zap.String("prompt", prompt), zap.Error(err))
		fmt.Fprintln(p.out, hint(err))
	}
}

// NonEmpty returns trimmed, non-empty text.
func (p *Prompter) NonEmpty(ctx context.Context, prompt string) (string, error) {
	return ask(ctx, p, prompt, ParseNonEmpty, func(error) string { return hintEmpty })
}

// Category returns FA or SA.
func (p *Prompter) Category(ctx context.Context, prompt string) (models.Category, error) {
	return ask(ctx, p, prompt, ParseCategory, func(error) string { return hintCategory })
}

// Grade returns a number in [0, 100].
func (p *Prompter) Grade(ctx context.Context, prompt string) (float64, error) {
	return ask(ctx, p, prompt, ParseGrade, func(err error) string {
		if errors.Is(err, ErrOutOfRange) {
			return hintGradeRange
		}
		return hintGradeNaN
	})
}

// PositiveNumber returns a number greater than zero.
func (p *Prompter) PositiveNumber(ctx context.Context, prompt string) (float64, error) {
	return ask(ctx, p, prompt, ParsePositive, func(err error) string {
		switch {
		case errors.Is(err, ErrNotPositive):
			return hintNotPositive
		case errors.Is(err, ErrTooLarge):
			return hintTooLarge
		default:
			return hintNumberNaN
		}
	})
}

// YesNo returns true for "y" and false for "n".
func (p *Prompter) YesNo(ctx context.Context, prompt string) (bool, error) {
	return ask(ctx, p, prompt, ParseYesNo, func(error) string { return hintYesNo })
}

func ParseNonEmpty(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyInput
	}
	return s, nil
}

func ParseCategory(s string) (models.Category, error) {
	c := models.Category(strings.ToUpper(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

func parseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}
	return v, nil
}

func ParseGrade(s string) (float64, error) {
	v, err := parseNumber(s)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > 100 {
		return 0, fmt.Errorf("%w: %v", ErrOutOfRange, v)
	}
	return v, nil
}

func ParsePositive(s string) (float64, error) {
	v, err := parseNumber(s)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, fmt.Errorf("%w: %v", ErrNotPositive, v)
	}
	if v >= maxPositive+1 {
		return 0, fmt.Errorf("%w: %v", ErrTooLarge, v)
	}
	return v, nil
}

func ParseYesNo(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y":
		return true, nil
	case "n":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownAnswer, s)
	}
}

// Truncate drops the fractional part of an accepted grade or weight. Values
// are truncated, never rounded: 87.9 is stored as 87.
func Truncate(v float64) int {
	return int(math.Trunc(v))
}
