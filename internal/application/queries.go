package application

import "github.com/bnema/council-cli/internal/domain"

type EndpointStatus struct {
	Endpoint domain.Endpoint
	// KeySource is "env", "secret-store", "none" (no key needed) or "" when
	// a required key is missing.
	KeySource string
	Personas  []string
	Moderator bool
	Evaluator bool
	Fallback  int
}

type RosterStatus struct {
	Roster    domain.Roster
	Endpoints []EndpointStatus
}
