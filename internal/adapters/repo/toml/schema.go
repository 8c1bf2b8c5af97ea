package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version   int              `toml:"version"`
	Moderator string           `toml:"moderator"`
	Evaluator string           `toml:"evaluator,omitempty"`
	Fallback  []string         `toml:"fallback,omitempty"`
	Endpoints []endpointSchema `toml:"endpoints"`
	Personas  []personaSchema  `toml:"personas"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported roster schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type endpointSchema struct {
	Name      string `toml:"name"`
	Kind      string `toml:"kind,omitempty"`
	Model     string `toml:"model"`
	BaseURL   string `toml:"base_url,omitempty"`
	APIKeyEnv string `toml:"api_key_env,omitempty"`
	Region    string `toml:"region,omitempty"`
	// Timeout is a Go duration string such as "25s".
	Timeout   string `toml:"timeout,omitempty"`
	MaxTokens int    `toml:"max_tokens,omitempty"`
	Optional  bool   `toml:"optional,omitempty"`
}

type personaSchema struct {
	Name     string `toml:"name"`
	Role     string `toml:"role,omitempty"`
	Endpoint string `toml:"endpoint,omitempty"`
}
