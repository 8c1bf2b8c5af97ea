package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
)

type EndpointKind string

const (
	EndpointKindOpenAI    EndpointKind = "openai"
	EndpointKindAnthropic EndpointKind = "anthropic"
	EndpointKindGemini    EndpointKind = "gemini"
	EndpointKindBedrock   EndpointKind = "bedrock"
)

const (
	DefaultEndpointTimeout = 25 * time.Second
	DefaultMaxTokens       = 300
)

func (k EndpointKind) Valid() bool {
	switch k {
	case EndpointKindOpenAI, EndpointKindAnthropic, EndpointKindGemini, EndpointKindBedrock:
		return true
	default:
		return false
	}
}

// Endpoint is one remote model the router can address by name.
type Endpoint struct {
	Name    string
	Kind    EndpointKind
	Model   string
	BaseURL string
	// APIKeyEnv names the environment variable holding the key. Empty means
	// the endpoint needs no key (local servers, bedrock's AWS chain).
	APIKeyEnv string
	Region    string
	Timeout   time.Duration
	MaxTokens int
	// Optional endpoints are skipped instead of failing startup when their
	// key is missing.
	Optional bool
}

func (e Endpoint) RequiresKey() bool {
	return e.Kind != EndpointKindBedrock && strings.TrimSpace(e.APIKeyEnv) != ""
}

func (e Endpoint) SecretKey() string {
	return fmt.Sprintf("council/endpoints/%s/api_key", e.Name)
}

func (e *Endpoint) ApplyDefaults() {
	if e.Kind == "" {
		e.Kind = EndpointKindOpenAI
	}
	if e.Timeout <= 0 {
		e.Timeout = DefaultEndpointTimeout
	}
	if e.MaxTokens <= 0 {
		e.MaxTokens = DefaultMaxTokens
	}
}

// Persona is a debate participant. Role is sent as a transient system hint on
// each of its calls.
type Persona struct {
	Name     string
	Role     string
	Endpoint string
}

func (p Persona) EndpointName() string {
	if p.Endpoint != "" {
		return p.Endpoint
	}
	return p.Name
}

type Roster struct {
	Endpoints []Endpoint
	Personas  []Persona
	Moderator string
	Evaluator string
	Fallback  []string
}

func (r Roster) Endpoint(name string) (Endpoint, bool) {
	return lo.Find(r.Endpoints, func(endpoint Endpoint) bool {
		return endpoint.Name == name
	})
}

func (r Roster) Persona(name string) (Persona, bool) {
	return lo.Find(r.Personas, func(persona Persona) bool {
		return persona.Name == name
	})
}

// ModeratorPersona returns the moderator as a persona. When the moderator is
// not a debater it has no role hint.
func (r Roster) ModeratorPersona() Persona {
	if persona, ok := r.Persona(r.Moderator); ok {
		return persona
	}
	return Persona{Name: r.Moderator}
}

func (r *Roster) Normalize() {
	if r == nil {
		return
	}

	for i := range r.Endpoints {
		r.Endpoints[i].Name = strings.TrimSpace(r.Endpoints[i].Name)
		r.Endpoints[i].ApplyDefaults()
	}
	for i := range r.Personas {
		r.Personas[i].Name = strings.TrimSpace(r.Personas[i].Name)
		r.Personas[i].Endpoint = strings.TrimSpace(r.Personas[i].Endpoint)
	}

	r.Moderator = strings.TrimSpace(r.Moderator)
	r.Evaluator = strings.TrimSpace(r.Evaluator)
	if r.Evaluator == "" {
		r.Evaluator = r.Moderator
	}

	fallback := lo.Map(r.Fallback, func(name string, _ int) string {
		return strings.TrimSpace(name)
	})
	r.Fallback = lo.Uniq(lo.Compact(fallback))
}

func (r Roster) Validate() error {
	if len(r.Endpoints) == 0 {
		return fmt.Errorf("at least one endpoint is required")
	}

	seen := make(map[string]struct{}, len(r.Endpoints))
	for _, endpoint := range r.Endpoints {
		if endpoint.Name == "" {
			return fmt.Errorf("endpoint name is required")
		}
		if _, ok := seen[endpoint.Name]; ok {
			return fmt.Errorf("duplicate endpoint %q", endpoint.Name)
		}
		seen[endpoint.Name] = struct{}{}
		if !endpoint.Kind.Valid() {
			return fmt.Errorf("endpoint %q: unsupported kind %q", endpoint.Name, endpoint.Kind)
		}
		if strings.TrimSpace(endpoint.Model) == "" {
			return fmt.Errorf("endpoint %q: model is required", endpoint.Name)
		}
	}

	if len(r.Personas) == 0 {
		return fmt.Errorf("at least one persona is required")
	}
	for _, persona := range r.Personas {
		if persona.Name == "" {
			return fmt.Errorf("persona name is required")
		}
		if _, ok := seen[persona.EndpointName()]; !ok {
			return fmt.Errorf("persona %q: %w: %q", persona.Name, ErrEndpointNotFound, persona.EndpointName())
		}
	}

	if r.Moderator == "" {
		return fmt.Errorf("moderator is required")
	}
	if _, ok := seen[r.ModeratorPersona().EndpointName()]; !ok {
		return fmt.Errorf("moderator: %w: %q", ErrEndpointNotFound, r.Moderator)
	}
	if _, ok := seen[r.EvaluatorEndpoint()]; !ok {
		return fmt.Errorf("evaluator: %w: %q", ErrEndpointNotFound, r.Evaluator)
	}
	for _, name := range r.Fallback {
		if _, ok := seen[name]; !ok {
			return fmt.Errorf("fallback: %w: %q", ErrEndpointNotFound, name)
		}
	}

	return nil
}

func (r Roster) EvaluatorEndpoint() string {
	if persona, ok := r.Persona(r.Evaluator); ok {
		return persona.EndpointName()
	}
	return r.Evaluator
}

// QuickOrder is the endpoint order for single-shot queries: the configured
// fallback list, or the moderator alone.
func (r Roster) QuickOrder() []string {
	if len(r.Fallback) > 0 {
		return append([]string(nil), r.Fallback...)
	}
	return []string{r.ModeratorPersona().EndpointName()}
}
