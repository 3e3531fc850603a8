package mocks

import (
	"context"
	"io"
)

// ScriptedLineReader answers prompts from a fixed list of lines and records
// every prompt it was asked. Once the script runs out it returns Err, or
// io.EOF when Err is nil.
type ScriptedLineReader struct {
	Lines   []string
	Err     error
	Prompts []string
}

func NewScriptedLineReader(lines ...string) *ScriptedLineReader {
	return &ScriptedLineReader{Lines: lines}
}

// ReadLine implements the LineReader interface
func (r *ScriptedLineReader) ReadLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	r.Prompts = append(r.Prompts, prompt)
	if len(r.Lines) == 0 {
		if r.Err != nil {
			return "", r.Err
		}
		return "", io.EOF
	}
	line := r.Lines[0]
	r.Lines = r.Lines[1:]
	return line, nil
}
