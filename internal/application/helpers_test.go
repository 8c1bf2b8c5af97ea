package application

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/council-cli/internal/domain"
	"github.com/bnema/council-cli/internal/ports"
	"github.com/bnema/council-cli/internal/ports/mocks"
	"github.com/stretchr/testify/mock"
)

func mockAnyContext() interface{} {
	return mock.Anything
}

// callLog records provider calls in the order the router issued them.
type callLog struct {
	mu    sync.Mutex
	calls []recordedCall
}

type recordedCall struct {
	endpoint string
	messages []domain.Message
}

func (l *callLog) record(endpoint string, req ports.ChatRequest) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.calls = append(l.calls, recordedCall{endpoint: endpoint, messages: req.Messages})
}

func (l *callLog) endpoints() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	names := make([]string, 0, len(l.calls))
	for _, call := range l.calls {
		names = append(names, call.endpoint)
	}
	return names
}

func (l *callLog) at(i int) recordedCall {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.calls[i]
}

// scriptedEndpoint registers a mock provider that replies with the given
// answers in order. An empty answer is returned as a provider error.
func scriptedEndpoint(t mockT, router *Router, log *callLog, name string, answers ...string) *mocks.MockChatProvider {
	provider := mocks.NewMockChatProvider(t)
	router.Register(domain.Endpoint{Name: name, Model: name + "-model", Timeout: time.Second}, provider)

	var mu sync.Mutex
	next := 0
	provider.EXPECT().Complete(mockAnyContext(), mock.Anything).RunAndReturn(func(_ context.Context, req ports.ChatRequest) (string, error) {
		log.record(name, req)

		mu.Lock()
		defer mu.Unlock()
		if next >= len(answers) {
			return "", errProviderDown
		}
		answer := answers[next]
		next++
		if answer == "" {
			return "", errProviderDown
		}
		return answer, nil
	}).Times(len(answers))

	return provider
}

type mockT interface {
	mock.TestingT
	Cleanup(func())
}

type providerError string

func (e providerError) Error() string { return string(e) }

const errProviderDown = providerError("provider down")
