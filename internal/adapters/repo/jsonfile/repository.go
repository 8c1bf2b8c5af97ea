// Package jsonfile persists the conversation transcript as an indented JSON
// array of {role, content} objects.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/council-cli/internal/adapters/filelock"
	"github.com/bnema/council-cli/internal/domain"
	"github.com/bnema/council-cli/internal/ports"
	"github.com/google/renameio/v2"
	"github.com/spf13/viper"
)

const (
	transcriptPathKey    = "transcript.path"
	transcriptFileMode   = 0o600
	transcriptDirMode    = 0o700
	councilConfigDir     = ".council"
	transcriptConfigFile = "memory.json"
)

type Repository struct {
	path string
	lock *filelock.Lock
}

var _ ports.TranscriptRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	cfg.SetDefault(transcriptPathKey, filepath.Join(homeDir, councilConfigDir, transcriptConfigFile))

	path := cfg.GetString(transcriptPathKey)
	if path == "" {
		return nil, errors.New("transcript path is empty")
	}
	path, err = filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve transcript path: %w", err)
	}
	path = filepath.Clean(path)

	return &Repository{path: path, lock: filelock.New(path)}, nil
}

func (r *Repository) Path() string {
	return r.path
}

// Load returns nil messages when no transcript has been saved yet.
func (r *Repository) Load(ctx context.Context) ([]domain.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := os.Stat(filepath.Dir(r.path)); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	var messages []domain.Message
	err := r.lock.WithRLock(ctx, func() error {
		data, err := os.ReadFile(r.path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil
			}
			return fmt.Errorf("read transcript file: %w", err)
		}

		if err := json.Unmarshal(data, &messages); err != nil {
			return fmt.Errorf("decode transcript file: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return messages, nil
}

func (r *Repository) Save(ctx context.Context, messages []domain.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if messages == nil {
		messages = []domain.Message{}
	}
	data, err := json.MarshalIndent(messages, "", "  ")
	if err != nil {
		return fmt.Errorf("encode transcript file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), transcriptDirMode); err != nil {
		return fmt.Errorf("create transcript directory: %w", err)
	}

	return r.lock.WithLock(ctx, func() error {
		if err := renameio.WriteFile(r.path, data, transcriptFileMode); err != nil {
			return fmt.Errorf("write transcript file: %w", err)
		}
		return nil
	})
}
