package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/council-cli/internal/domain"
	"github.com/bnema/council-cli/internal/ports"
	"github.com/samber/lo"
)

type RosterService struct {
	repo        ports.RosterRepository
	credentials *CredentialService
}

func NewRosterService(repo ports.RosterRepository, credentials *CredentialService) *RosterService {
	return &RosterService{repo: repo, credentials: credentials}
}

// Load returns the validated roster.
func (s *RosterService) Load(ctx context.Context) (domain.Roster, error) {
	roster, err := s.repo.Load(ctx)
	if err != nil {
		return domain.Roster{}, fmt.Errorf("load roster: %w", err)
	}
	roster.Normalize()
	if err := roster.Validate(); err != nil {
		return domain.Roster{}, fmt.Errorf("invalid roster: %w", err)
	}

	return roster, nil
}

// Init writes the effective roster to disk so it can be edited.
func (s *RosterService) Init(ctx context.Context) (domain.Roster, error) {
	roster, err := s.Load(ctx)
	if err != nil {
		return domain.Roster{}, err
	}
	if err := s.repo.Save(ctx, roster); err != nil {
		return domain.Roster{}, fmt.Errorf("save roster: %w", err)
	}

	return roster, nil
}

func (s *RosterService) Status(ctx context.Context) (RosterStatus, error) {
	roster, err := s.Load(ctx)
	if err != nil {
		return RosterStatus{}, err
	}

	statuses := make([]EndpointStatus, 0, len(roster.Endpoints))
	for _, endpoint := range roster.Endpoints {
		personas := lo.FilterMap(roster.Personas, func(persona domain.Persona, _ int) (string, bool) {
			return persona.Name, persona.EndpointName() == endpoint.Name
		})

		statuses = append(statuses, EndpointStatus{
			Endpoint:  endpoint,
			KeySource: s.keySource(ctx, endpoint),
			Personas:  personas,
			Moderator: roster.ModeratorPersona().EndpointName() == endpoint.Name,
			Evaluator: roster.EvaluatorEndpoint() == endpoint.Name,
			Fallback:  lo.IndexOf(roster.Fallback, endpoint.Name) + 1,
		})
	}

	return RosterStatus{Roster: roster, Endpoints: statuses}, nil
}

func (s *RosterService) keySource(ctx context.Context, endpoint domain.Endpoint) string {
	if !endpoint.RequiresKey() {
		return "none"
	}
	if s.credentials == nil {
		return ""
	}
	if value, ok := s.credentials.lookupEnv(endpoint.APIKeyEnv); ok && strings.TrimSpace(value) != "" {
		return "env"
	}
	if value, err := s.credentials.store.Get(ctx, endpoint.SecretKey()); err == nil && strings.TrimSpace(value) != "" {
		return "secret-store"
	}

	return ""
}
