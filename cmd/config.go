package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/council-cli/internal/adapters/exec/shell"
	"github.com/bnema/council-cli/internal/application"
	"github.com/bnema/council-cli/internal/domain"
	"github.com/spf13/viper"
)

const (
	councilDir = ".council"

	experienceBackendJSONL  = "jsonl"
	experienceBackendSQLite = "sqlite"
	experienceBackendOff    = "off"
)

type settings struct {
	maxMessages       int
	persistEachTurn   bool
	rounds            int
	marker            string
	systemPrompt      string
	logLevel          string
	executor          shell.Options
	blockedPatterns   []string
	experienceBackend string
	experiencePath    string
	secretsDir        string
}

func loadConfig(homeDir string) (*viper.Viper, error) {
	cfg := viper.New()
	cfg.SetConfigName("config")
	cfg.SetConfigType("toml")
	cfg.AddConfigPath(filepath.Join(homeDir, councilDir))
	cfg.SetEnvPrefix("COUNCIL")
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault("transcript.max_messages", domain.DefaultMaxMessages)
	cfg.SetDefault("transcript.persist_each_turn", true)
	cfg.SetDefault("debate.rounds", application.DefaultDebateRounds)
	cfg.SetDefault("executor.shell", shell.DefaultShell)
	cfg.SetDefault("executor.max_output_bytes", shell.DefaultMaxOutputBytes)
	cfg.SetDefault("executor.timeout", time.Duration(0))
	cfg.SetDefault("executor.blocked_patterns", []string{})
	cfg.SetDefault("experience.backend", experienceBackendJSONL)
	cfg.SetDefault("log.level", "info")
	cfg.SetDefault("marker", domain.DefaultDirectiveMarker)
	cfg.SetDefault("system_prompt", "")
	cfg.SetDefault("secrets.path", filepath.Join(homeDir, councilDir, "secrets"))

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return cfg, nil
}

func readSettings(cfg *viper.Viper, homeDir string) (settings, error) {
	marker := strings.TrimSpace(cfg.GetString("marker"))
	if marker == "" {
		marker = domain.DefaultDirectiveMarker
	}
	systemPrompt := cfg.GetString("system_prompt")
	if strings.TrimSpace(systemPrompt) == "" {
		systemPrompt = domain.DefaultSystemPrompt(marker)
	}

	backend := strings.ToLower(strings.TrimSpace(cfg.GetString("experience.backend")))
	experiencePath := cfg.GetString("experience.path")
	switch backend {
	case experienceBackendJSONL:
		if experiencePath == "" {
			experiencePath = filepath.Join(homeDir, councilDir, "experience.jsonl")
		}
	case experienceBackendSQLite:
		if experiencePath == "" {
			experiencePath = filepath.Join(homeDir, councilDir, "experience.db")
		}
	case experienceBackendOff:
	default:
		return settings{}, fmt.Errorf("unsupported experience backend %q (want jsonl, sqlite or off)", backend)
	}

	rounds := cfg.GetInt("debate.rounds")
	if rounds < 1 {
		return settings{}, fmt.Errorf("debate.rounds must be at least 1, got %d", rounds)
	}
	maxMessages := cfg.GetInt("transcript.max_messages")
	if maxMessages < 2 {
		return settings{}, fmt.Errorf("transcript.max_messages must be at least 2, got %d", maxMessages)
	}

	return settings{
		maxMessages:     maxMessages,
		persistEachTurn: cfg.GetBool("transcript.persist_each_turn"),
		rounds:          rounds,
		marker:          marker,
		systemPrompt:    systemPrompt,
		logLevel:        cfg.GetString("log.level"),
		executor: shell.Options{
			Shell:          cfg.GetString("executor.shell"),
			MaxOutputBytes: cfg.GetInt("executor.max_output_bytes"),
			Timeout:        cfg.GetDuration("executor.timeout"),
		},
		blockedPatterns:   cfg.GetStringSlice("executor.blocked_patterns"),
		experienceBackend: backend,
		experiencePath:    experiencePath,
		secretsDir:        cfg.GetString("secrets.path"),
	}, nil
}

func resolveHomeDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return homeDir, nil
}
