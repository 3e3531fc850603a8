//go:build e2e

package e2e

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/godilite/gradegen/internal/cli"
	"github.com/godilite/gradegen/internal/config"
	"github.com/godilite/gradegen/tests/e2e/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestE2E_FullSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grades.csv")
	input := strings.Join([]string{
		"Quiz 1", "fa", "80", "20", "y",
		"Midterm", "SA", "72.6", "30.9", "y",
		"Quiz 2", "FA", "55", "10", "y",
		"Final, written", "sa", "48", "40", "n",
	}, "\n") + "\n"

	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCommand(&config.Config{OutputPath: path}, zap.NewNop())
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{})

	code := cli.Execute(context.Background(), cmd, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	// FA: 16 + 5.5 = 21.50 of 30; SA: 72*30/100 = 21.6, 48*40/100 = 19.2 -> 40.80 of 70.
	out := stdout.String()
	assert.Contains(t, out, "Total Formative: 21.50 / 30\n")
	assert.Contains(t, out, "Total Summative: 40.80 / 70\n")
	assert.Contains(t, out, "Total Grade:        62.30 / 100\n")
	assert.Contains(t, out, "GPA:                3.1150\n")
	assert.Contains(t, out, "Formative:          PASS (needed >= 15.00, got 21.50)\n")
	assert.Contains(t, out, "Summative:          PASS (needed >= 35.00, got 40.80)\n")
	assert.Contains(t, out, "Status:             PASS\n")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Assignment", "Category", "Grade", "Weight"},
		{"Quiz 1", "FA", "80", "20"},
		{"Midterm", "SA", "72", "30"},
		{"Quiz 2", "FA", "55", "10"},
		{"Final, written", "SA", "48", "40"},
	}, rows)
}

func TestE2E_InterruptDiscardsPartialRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grades.csv")
	input := mocks.NewStallingInput("Quiz1", "FA", "80", "20", "y", "Quiz2")
	defer input.Close()

	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCommand(&config.Config{OutputPath: path}, zap.NewNop())
	cmd.SetIn(input)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		select {
		case <-input.Drained:
		case <-time.After(5 * time.Second):
		}
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	code := cli.Execute(ctx, cmd, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stdout.String(), "Interrupted by user. Exiting.")
	assert.NotContains(t, stdout.String(), "--- RESULTS ---")
	assert.NoFileExists(t, path)
}
