package stub

import (
	"context"
	"testing"

	"ai-assistant-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatEchoesLastUserMessage(t *testing.T) {
	p := NewProvider("gpt-4o-mini")

	got, err := p.Chat(context.Background(), []llm.Message{
		{Role: "user", Content: "first question"},
		{Role: "assistant", Content: "first answer"},
		{Role: "user", Content: "second question"},
	})

	require.NoError(t, err)
	assert.Equal(t, "[gpt-4o-mini] received: second question", got.Content)
	assert.Equal(t, "gpt-4o-mini", got.Model)
	assert.Equal(t, 6+4, got.TokensUsed)
}

func TestChatHonoursModelOverride(t *testing.T) {
	got, err := NewProvider("default").Chat(context.Background(),
		[]llm.Message{{Role: "user", Content: "hi"}},
		llm.WithModel("other"),
	)

	require.NoError(t, err)
	assert.Equal(t, "other", got.Model)
}

func TestChatStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewProvider("m").Chat(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
