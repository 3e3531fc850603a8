package export

import (
	"encoding/csv"
	"fmt"
	"os"
)

const fileMode os.FileMode = 0o644

type Options struct {
	Path      string
	Header    []string
	Delimiter rune
	UseCRLF   bool
}

type Option func(*Options)

func WithPath(path string) Option {
	return func(o *Options) { o.Path = path }
}

func WithHeader(columns ...string) Option {
	return func(o *Options) { o.Header = columns }
}

func WithDelimiter(d rune) Option {
	return func(o *Options) { o.Delimiter = d }
}

func WithCRLF(enabled bool) Option {
	return func(o *Options) { o.UseCRLF = enabled }
}

// Writer writes delimited rows to a single file, replacing any previous content.
type Writer struct {
	options Options
}

// New creates a Writer using the provided options.
func New(opts ...Option) (*Writer, error) {
	options := &Options{
		Delimiter: ',',
		UseCRLF:   true,
	}

	for _, opt := range opts {
		opt(options)
	}

	if options.Path == "" {
		return nil, fmt.Errorf("export path cannot be empty")
	}
	if len(options.Header) == 0 {
		return nil, fmt.Errorf("export header cannot be empty")
	}
	if options.Delimiter == '"' || options.Delimiter == '\r' || options.Delimiter == '\n' {
		return nil, fmt.Errorf("invalid export delimiter %q", options.Delimiter)
	}

	return &Writer{options: *options}, nil
}

// Path returns the file the writer targets.
func (w *Writer) Path() string {
	return w.options.Path
}

// Write truncates the target file and writes the header followed by rows.
// Every row must have as many fields as the header.
func (w *Writer) Write(rows [][]string) (err error) {
	for i, row := range rows {
		if len(row) != len(w.options.Header) {
			return fmt.Errorf("row %d has %d fields, want %d", i+1, len(row), len(w.options.Header))
		}
	}

	f, err := os.OpenFile(w.options.Path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, fileMode)
	if err != nil {
		return fmt.Errorf("open %s: %w", w.options.Path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", w.options.Path, cerr)
		}
	}()

	cw := csv.NewWriter(f)
	cw.Comma = w.options.Delimiter
	cw.UseCRLF = w.options.UseCRLF

	if err := cw.Write(w.options.Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write rows: %w", err)
	}
	return nil
}
