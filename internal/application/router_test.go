package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/council-cli/internal/domain"
	"github.com/bnema/council-cli/internal/ports"
	"github.com/bnema/council-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouterQuerySendsModelAndTokenBound(t *testing.T) {
	t.Parallel()

	provider := mocks.NewMockChatProvider(t)
	router := NewRouter(nil)
	router.Register(domain.Endpoint{Name: "openai", Model: "gpt-4o-mini"}, provider)

	messages := []domain.Message{domain.SystemMessage("prompt"), domain.UserMessage("hi")}
	provider.EXPECT().Complete(mockAnyContext(), ports.ChatRequest{
		Model:     "gpt-4o-mini",
		Messages:  messages,
		MaxTokens: domain.DefaultMaxTokens,
	}).Return("hello", nil).Once()

	reply, ok := router.Query(context.Background(), "openai", messages)
	require.True(t, ok)
	assert.Equal(t, "hello", reply)
	assert.True(t, router.Has("openai"))
}

func TestRouterQueryFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		reply string
		err   error
	}{
		{name: "transport error", err: errors.New("connection refused")},
		{name: "empty reply", reply: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			provider := mocks.NewMockChatProvider(t)
			router := NewRouter(nil)
			router.Register(domain.Endpoint{Name: "a", Model: "m"}, provider)
			provider.EXPECT().Complete(mockAnyContext(), mockAnyContext()).Return(tt.reply, tt.err).Once()

			reply, ok := router.Query(context.Background(), "a", nil)
			assert.False(t, ok)
			assert.Empty(t, reply)
		})
	}
}

func TestRouterQueryUnknownEndpoint(t *testing.T) {
	t.Parallel()

	reply, ok := NewRouter(nil).Query(context.Background(), "ghost", nil)
	assert.False(t, ok)
	assert.Empty(t, reply)
}

func TestRouterQueryTimesOut(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	provider := mocks.NewMockChatProvider(t)
	router := NewRouter(nil)
	router.Register(domain.Endpoint{Name: "slow", Model: "m", Timeout: 20 * time.Millisecond}, provider)
	provider.EXPECT().Complete(mockAnyContext(), mockAnyContext()).RunAndReturn(func(context.Context, ports.ChatRequest) (string, error) {
		<-release
		return "too late", nil
	}).Once()
	t.Cleanup(func() { close(release) })

	started := time.Now()
	reply, ok := router.Query(context.Background(), "slow", nil)

	assert.False(t, ok)
	assert.Empty(t, reply)
	assert.Less(t, time.Since(started), time.Second)
}

func TestRouterQueryFallbackReturnsFirstSuccess(t *testing.T) {
	t.Parallel()

	router := NewRouter(nil)
	calls := &callLog{}
	scriptedEndpoint(t, router, calls, "a", "")
	scriptedEndpoint(t, router, calls, "b", "")
	scriptedEndpoint(t, router, calls, "c", "from c")

	reply, ok := router.QueryFallback(context.Background(), []string{"a", "b", "c"}, []domain.Message{domain.UserMessage("q")})

	require.True(t, ok)
	assert.Equal(t, Reply{Endpoint: "c", Text: "from c"}, reply)
	assert.Equal(t, []string{"a", "b", "c"}, calls.endpoints())
}

func TestRouterQueryFallbackStopsAtFirstSuccess(t *testing.T) {
	t.Parallel()

	router := NewRouter(nil)
	calls := &callLog{}
	scriptedEndpoint(t, router, calls, "a", "from a")
	router.Register(domain.Endpoint{Name: "b", Model: "m"}, mocks.NewMockChatProvider(t))

	reply, ok := router.QueryFallback(context.Background(), []string{"a", "b"}, nil)

	require.True(t, ok)
	assert.Equal(t, "a", reply.Endpoint)
	assert.Equal(t, []string{"a"}, calls.endpoints())
}

func TestRouterQueryFallbackAllFail(t *testing.T) {
	t.Parallel()

	router := NewRouter(nil)
	calls := &callLog{}
	scriptedEndpoint(t, router, calls, "a", "")
	scriptedEndpoint(t, router, calls, "b", "")

	reply, ok := router.QueryFallback(context.Background(), []string{"a", "ghost", "b"}, nil)

	assert.False(t, ok)
	assert.Equal(t, Reply{}, reply)
}

func TestRouterQueryFallbackHonorsCanceledContext(t *testing.T) {
	t.Parallel()

	router := NewRouter(nil)
	router.Register(domain.Endpoint{Name: "a", Model: "m"}, mocks.NewMockChatProvider(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, ok := router.QueryFallback(ctx, []string{"a"}, nil)
	assert.False(t, ok)
}
