package application

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bnema/council-cli/internal/domain"
	"github.com/bnema/council-cli/internal/ports"
	"github.com/charmbracelet/log"
)

type Credentials struct {
	// Keys maps endpoint name to its API key. Endpoints that need no key map
	// to an empty string.
	Keys map[string]string
	// Skipped lists optional endpoints left out for lack of a key.
	Skipped []string
}

// CredentialService stores endpoint API keys in the secret store and resolves
// them at startup, environment first.
type CredentialService struct {
	roster    ports.RosterRepository
	store     ports.SecretStore
	lookupEnv func(string) (string, bool)
	logger    *log.Logger
}

func NewCredentialService(roster ports.RosterRepository, store ports.SecretStore, logger *log.Logger) *CredentialService {
	return &CredentialService{
		roster:    roster,
		store:     store,
		lookupEnv: os.LookupEnv,
		logger:    loggerOrDiscard(logger),
	}
}

func (s *CredentialService) SetKey(ctx context.Context, endpointName, value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New("secret value is empty")
	}

	endpoint, err := s.endpoint(ctx, endpointName)
	if err != nil {
		return err
	}

	if err := s.store.Put(ctx, endpoint.SecretKey(), value); err != nil {
		return fmt.Errorf("store endpoint key: %w", err)
	}

	return nil
}

func (s *CredentialService) RemoveKey(ctx context.Context, endpointName string) error {
	endpoint, err := s.endpoint(ctx, endpointName)
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, endpoint.SecretKey()); err != nil {
		return fmt.Errorf("delete endpoint key: %w", err)
	}

	return nil
}

// Resolve finds a key for every endpoint of the roster. A required endpoint
// without a key is an error naming every such endpoint.
func (s *CredentialService) Resolve(ctx context.Context, roster domain.Roster) (Credentials, error) {
	creds := Credentials{Keys: make(map[string]string, len(roster.Endpoints))}

	var missing []error
	for _, endpoint := range roster.Endpoints {
		if !endpoint.RequiresKey() {
			creds.Keys[endpoint.Name] = ""
			continue
		}

		key, err := s.lookup(ctx, endpoint)
		if err == nil {
			creds.Keys[endpoint.Name] = key
			continue
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return Credentials{}, err
		}

		if endpoint.Optional {
			s.logger.Debug("skipping optional endpoint without key", "endpoint", endpoint.Name, "env", endpoint.APIKeyEnv)
			creds.Skipped = append(creds.Skipped, endpoint.Name)
			continue
		}
		missing = append(missing, fmt.Errorf("%w for endpoint %q: set %s or run `council auth set --endpoint %s`",
			domain.ErrMissingCredential, endpoint.Name, endpoint.APIKeyEnv, endpoint.Name))
	}

	if len(missing) > 0 {
		return Credentials{}, errors.Join(missing...)
	}

	return creds, nil
}

func (s *CredentialService) lookup(ctx context.Context, endpoint domain.Endpoint) (string, error) {
	if value, ok := s.lookupEnv(endpoint.APIKeyEnv); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value), nil
	}

	value, err := s.store.Get(ctx, endpoint.SecretKey())
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(value) == "" {
		return "", domain.ErrSecretNotFound
	}

	return strings.TrimSpace(value), nil
}

func (s *CredentialService) endpoint(ctx context.Context, name string) (domain.Endpoint, error) {
	roster, err := s.roster.Load(ctx)
	if err != nil {
		return domain.Endpoint{}, fmt.Errorf("load roster: %w", err)
	}

	endpoint, ok := roster.Endpoint(strings.TrimSpace(name))
	if !ok {
		return domain.Endpoint{}, fmt.Errorf("%w: %q", domain.ErrEndpointNotFound, name)
	}

	return endpoint, nil
}
