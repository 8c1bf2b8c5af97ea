package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/council-cli/internal/domain"
	"github.com/bnema/council-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName       = "config"
	configType       = "toml"
	rosterPathKey    = "roster.path"
	rosterFileMode   = 0o600
	rosterDirMode    = 0o700
	councilConfigDir = ".council"
	rosterConfigFile = "roster.toml"
	tempFilePattern  = ".roster-*.toml.tmp"
)

// Repository stores the roster in a versioned TOML file. A missing file loads
// as the built-in default roster.
type Repository struct {
	rosterPath string
	mu         *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.RosterRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, councilConfigDir))
	cfg.SetDefault(rosterPathKey, filepath.Join(homeDir, councilConfigDir, rosterConfigFile))

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	rosterPath := cfg.GetString(rosterPathKey)
	if rosterPath == "" {
		return nil, errors.New("roster path is empty")
	}
	rosterPath, err = normalizePath(rosterPath)
	if err != nil {
		return nil, err
	}

	return &Repository{rosterPath: rosterPath, mu: lockForPath(rosterPath)}, nil
}

func (r *Repository) Path() string {
	return r.rosterPath
}

func (r *Repository) Load(ctx context.Context) (domain.Roster, error) {
	if err := ctx.Err(); err != nil {
		return domain.Roster{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, found, err := r.readSchema()
	if err != nil {
		return domain.Roster{}, err
	}
	if !found {
		return domain.DefaultRoster(), nil
	}

	roster, err := fromSchema(file)
	if err != nil {
		return domain.Roster{}, err
	}
	roster.Normalize()

	return roster, nil
}

func (r *Repository) Save(ctx context.Context, roster domain.Roster) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.writeSchema(toSchema(roster))
}

func (r *Repository) readSchema() (fileSchema, bool, error) {
	data, err := os.ReadFile(r.rosterPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, false, nil
		}
		return fileSchema{}, false, fmt.Errorf("read roster file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, false, fmt.Errorf("decode roster file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, false, err
	}
	file.applyDefaults()

	return file, true, nil
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve roster path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.rosterPath), rosterDirMode); err != nil {
		return fmt.Errorf("create roster directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode roster file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.rosterPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp roster file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp roster file: %w", err)
	}
	if err := tempFile.Chmod(rosterFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp roster file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp roster file: %w", err)
	}

	if err := os.Rename(tempName, r.rosterPath); err != nil {
		return fmt.Errorf("replace roster file: %w", err)
	}
	cleanup = false

	return nil
}

func toSchema(roster domain.Roster) fileSchema {
	file := fileSchema{
		Version:   currentSchemaVersion,
		Moderator: roster.Moderator,
		Fallback:  roster.Fallback,
		Endpoints: make([]endpointSchema, 0, len(roster.Endpoints)),
		Personas:  make([]personaSchema, 0, len(roster.Personas)),
	}
	if roster.Evaluator != roster.Moderator {
		file.Evaluator = roster.Evaluator
	}

	for _, endpoint := range roster.Endpoints {
		file.Endpoints = append(file.Endpoints, endpointSchema{
			Name:      endpoint.Name,
			Kind:      string(endpoint.Kind),
			Model:     endpoint.Model,
			BaseURL:   endpoint.BaseURL,
			APIKeyEnv: endpoint.APIKeyEnv,
			Region:    endpoint.Region,
			Timeout:   formatDuration(endpoint.Timeout),
			MaxTokens: endpoint.MaxTokens,
			Optional:  endpoint.Optional,
		})
	}
	for _, persona := range roster.Personas {
		entry := personaSchema{Name: persona.Name, Role: persona.Role}
		if persona.Endpoint != persona.Name {
			entry.Endpoint = persona.Endpoint
		}
		file.Personas = append(file.Personas, entry)
	}

	return file
}

func fromSchema(file fileSchema) (domain.Roster, error) {
	roster := domain.Roster{
		Moderator: file.Moderator,
		Evaluator: file.Evaluator,
		Fallback:  file.Fallback,
		Endpoints: make([]domain.Endpoint, 0, len(file.Endpoints)),
		Personas:  make([]domain.Persona, 0, len(file.Personas)),
	}

	for _, entry := range file.Endpoints {
		timeout, err := parseDuration(entry.Timeout)
		if err != nil {
			return domain.Roster{}, fmt.Errorf("endpoint %q: parse timeout: %w", entry.Name, err)
		}

		roster.Endpoints = append(roster.Endpoints, domain.Endpoint{
			Name:      entry.Name,
			Kind:      domain.EndpointKind(entry.Kind),
			Model:     entry.Model,
			BaseURL:   entry.BaseURL,
			APIKeyEnv: entry.APIKeyEnv,
			Region:    entry.Region,
			Timeout:   timeout,
			MaxTokens: entry.MaxTokens,
			Optional:  entry.Optional,
		})
	}
	for _, entry := range file.Personas {
		roster.Personas = append(roster.Personas, domain.Persona{
			Name:     entry.Name,
			Role:     entry.Role,
			Endpoint: entry.Endpoint,
		})
	}

	return roster, nil
}

func parseDuration(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}

	return time.ParseDuration(raw)
}

func formatDuration(value time.Duration) string {
	if value <= 0 {
		return ""
	}

	return value.String()
}
