package application

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/bnema/council-cli/internal/domain"
	"github.com/bnema/council-cli/internal/ports"
	"github.com/charmbracelet/log"
)

// Querier is the router surface the debate, evaluation and quick paths use.
type Querier interface {
	Query(ctx context.Context, endpoint string, messages []domain.Message) (string, bool)
	QueryFallback(ctx context.Context, endpoints []string, messages []domain.Message) (Reply, bool)
}

type Reply struct {
	Endpoint string
	Text     string
}

type routedEndpoint struct {
	endpoint domain.Endpoint
	provider ports.ChatProvider
}

// Router sends prompts to named endpoints. Every failure mode (unknown name,
// timeout, transport error, empty reply) collapses into "no answer" and is
// logged; callers never see an error.
type Router struct {
	mu        sync.RWMutex
	endpoints map[string]routedEndpoint
	logger    *log.Logger
}

var _ Querier = (*Router)(nil)

func NewRouter(logger *log.Logger) *Router {
	return &Router{
		endpoints: map[string]routedEndpoint{},
		logger:    loggerOrDiscard(logger),
	}
}

func (r *Router) Register(endpoint domain.Endpoint, provider ports.ChatProvider) {
	endpoint.ApplyDefaults()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.endpoints[endpoint.Name] = routedEndpoint{endpoint: endpoint, provider: provider}
}

func (r *Router) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.endpoints[name]
	return ok
}

func (r *Router) Query(ctx context.Context, name string, messages []domain.Message) (string, bool) {
	text, err := r.query(ctx, name, messages)
	if err != nil {
		r.logger.Warn("provider call failed", "endpoint", name, "err", err)
		return "", false
	}

	return text, true
}

// QueryFallback tries each endpoint in order and returns the first reply.
func (r *Router) QueryFallback(ctx context.Context, names []string, messages []domain.Message) (Reply, bool) {
	for _, name := range names {
		if ctx.Err() != nil {
			return Reply{}, false
		}

		text, ok := r.Query(ctx, name, messages)
		if ok {
			return Reply{Endpoint: name, Text: text}, true
		}
	}

	return Reply{}, false
}

type callOutcome struct {
	text string
	err  error
}

func (r *Router) query(ctx context.Context, name string, messages []domain.Message) (string, error) {
	r.mu.RLock()
	routed, ok := r.endpoints[name]
	r.mu.RUnlock()
	if !ok {
		return "", domain.ErrEndpointNotFound
	}

	callCtx, cancel := context.WithTimeout(ctx, routed.endpoint.Timeout)
	defer cancel()

	req := ports.ChatRequest{
		Model:     routed.endpoint.Model,
		Messages:  append([]domain.Message(nil), messages...),
		MaxTokens: routed.endpoint.MaxTokens,
	}

	// The buffered channel lets a late provider call finish after the timer
	// has already won.
	done := make(chan callOutcome, 1)
	go func() {
		text, err := routed.provider.Complete(callCtx, req)
		done <- callOutcome{text: text, err: err}
	}()

	select {
	case out := <-done:
		if out.err != nil {
			return "", out.err
		}
		if strings.TrimSpace(out.text) == "" {
			return "", domain.ErrNoReply
		}
		return out.text, nil
	case <-callCtx.Done():
		if errors.Is(callCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			return "", errTimeout{after: routed.endpoint.Timeout.String()}
		}
		return "", callCtx.Err()
	}
}

type errTimeout struct {
	after string
}

func (e errTimeout) Error() string {
	return "timeout after " + e.after
}
