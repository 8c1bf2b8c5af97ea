package jsonl

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bnema/council-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogAppendAndList(t *testing.T) {
	t.Parallel()

	log, err := NewLog(filepath.Join(t.TempDir(), "experience.jsonl"))
	require.NoError(t, err)

	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	first := domain.Experience{ID: "e1", Instruction: "list files", Response: "COUNCIL_CMD ls", Result: "Command: ls\n", CreatedAt: createdAt}
	second := domain.Experience{ID: "e2", Instruction: "uptime", Response: "COUNCIL_CMD uptime", Result: "Command: uptime\n", CreatedAt: createdAt.Add(time.Minute)}

	require.NoError(t, log.Append(context.Background(), first))
	require.NoError(t, log.Append(context.Background(), second))

	got, err := log.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Experience{first, second}, got)
}

func TestLogListMissingFile(t *testing.T) {
	t.Parallel()

	log, err := NewLog(filepath.Join(t.TempDir(), "missing", "experience.jsonl"))
	require.NoError(t, err)

	got, err := log.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLogListSkipsBlankLinesAndRejectsMalformed(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "experience.jsonl")
	require.NoError(t, os.WriteFile(path, []byte("{\"id\":\"e1\"}\n\n{broken\n"), 0o600))

	log, err := NewLog(path)
	require.NoError(t, err)

	_, err = log.List(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode experience log line 3")
}

func TestDatasetWriterAppendsLines(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out", "dataset.jsonl")
	writer, err := NewDatasetWriter(path)
	require.NoError(t, err)

	require.NoError(t, writer.Write(context.Background(), domain.SupervisedSample{Context: "q\nr", Response: "better"}))
	require.NoError(t, writer.Write(context.Background(), domain.SupervisedSample{Context: "q2", Response: "best"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, []string{
		`{"context":"q\nr","response":"better"}`,
		`{"context":"q2","response":"best"}`,
	}, lines)
}

func TestNewLogRejectsEmptyPath(t *testing.T) {
	t.Parallel()

	_, err := NewLog("")
	require.Error(t, err)
}
