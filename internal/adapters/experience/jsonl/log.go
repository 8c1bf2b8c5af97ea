// Package jsonl stores experiences and supervised samples as JSON Lines files,
// one object per line, appended under a cross-process lock.
package jsonl

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/council-cli/internal/adapters/filelock"
	"github.com/bnema/council-cli/internal/domain"
	"github.com/bnema/council-cli/internal/ports"
)

const (
	fileMode    = 0o600
	dirMode     = 0o700
	maxLineSize = 4 << 20
)

type Log struct {
	path string
	lock *filelock.Lock
}

var _ ports.ExperienceLog = (*Log)(nil)

func NewLog(path string) (*Log, error) {
	if path == "" {
		return nil, errors.New("experience log path is empty")
	}
	path, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve experience log path: %w", err)
	}

	return &Log{path: path, lock: filelock.New(path)}, nil
}

func (l *Log) Append(ctx context.Context, experience domain.Experience) error {
	return appendLine(ctx, l.path, l.lock, experience)
}

func (l *Log) List(ctx context.Context) ([]domain.Experience, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := os.Stat(l.path); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	var experiences []domain.Experience
	err := l.lock.WithRLock(ctx, func() error {
		file, err := os.Open(l.path)
		if err != nil {
			return fmt.Errorf("open experience log: %w", err)
		}
		defer func() {
			_ = file.Close()
		}()

		scanner := bufio.NewScanner(file)
		scanner.Buffer(make([]byte, 64*1024), maxLineSize)
		line := 0
		for scanner.Scan() {
			line++
			raw := bytes.TrimSpace(scanner.Bytes())
			if len(raw) == 0 {
				continue
			}

			var experience domain.Experience
			if err := json.Unmarshal(raw, &experience); err != nil {
				return fmt.Errorf("decode experience log line %d: %w", line, err)
			}
			experiences = append(experiences, experience)
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("read experience log: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return experiences, nil
}

// DatasetWriter appends supervised samples to a training dataset file.
type DatasetWriter struct {
	path string
	lock *filelock.Lock
}

var _ ports.SampleSink = (*DatasetWriter)(nil)

func NewDatasetWriter(path string) (*DatasetWriter, error) {
	if path == "" {
		return nil, errors.New("dataset path is empty")
	}
	path, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve dataset path: %w", err)
	}

	return &DatasetWriter{path: path, lock: filelock.New(path)}, nil
}

func (w *DatasetWriter) Write(ctx context.Context, sample domain.SupervisedSample) error {
	return appendLine(ctx, w.path, w.lock, sample)
}

func appendLine(ctx context.Context, path string, lock *filelock.Lock, value any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode line: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}

	return lock.WithLock(ctx, func() error {
		file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, fileMode)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		if _, err := file.Write(data); err != nil {
			_ = file.Close()
			return fmt.Errorf("append to %s: %w", path, err)
		}
		if err := file.Close(); err != nil {
			return fmt.Errorf("close %s: %w", path, err)
		}
		return nil
	})
}
