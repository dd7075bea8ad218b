package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubProvider(t *testing.T, handler http.HandlerFunc) *Assistant {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewWithEndpoint(srv.URL, "test-key", "test-model")
}

func TestChatSendsSystemHistoryAndMessage(t *testing.T) {
	var got chatRequest
	a := stubProvider(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		fmt.Fprint(w, `{"choices":[{"message":{"content":"Halo, ada yang bisa kami bantu?"}}]}`)
	})

	history := []Turn{
		{Role: RoleUser, Content: "Halo"},
		{Role: RoleAssistant, Content: "Selamat datang di Seido"},
	}
	reply, err := a.Chat(context.Background(), history, "Berapa lama pengerjaan conveyor?")
	require.NoError(t, err)
	assert.Equal(t, "Halo, ada yang bisa kami bantu?", reply)

	assert.Equal(t, "test-model", got.Model)
	assert.Equal(t, 0.3, got.Temperature)

	require.Len(t, got.Messages, 4)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Contains(t, got.Messages[0].Content, "Seido Mitra Abadi")
	assert.Equal(t, RoleUser, got.Messages[1].Role)
	assert.Equal(t, RoleAssistant, got.Messages[2].Role)
	assert.Equal(t, "Berapa lama pengerjaan conveyor?", got.Messages[3].Content)
}

func TestChatFallbackOnServerError(t *testing.T) {
	a := stubProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	reply, err := a.Chat(context.Background(), nil, "Halo")
	require.Error(t, err)
	assert.Equal(t, FallbackReply, reply)
}

func TestChatFallbackOnEmptyChoices(t *testing.T) {
	a := stubProvider(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"choices":[]}`)
	})

	reply, err := a.Chat(context.Background(), nil, "Halo")
	require.Error(t, err)
	assert.Equal(t, FallbackReply, reply)
}

func TestChatFallbackOnUnreachableProvider(t *testing.T) {
	a := NewWithEndpoint("http://127.0.0.1:1", "", "test-model")

	reply, err := a.Chat(context.Background(), nil, "Halo")
	require.Error(t, err)
	assert.Equal(t, FallbackReply, reply)
}

func TestCapHistory(t *testing.T) {
	short := []Turn{{Role: RoleUser, Content: "a"}}
	assert.Equal(t, short, CapHistory(short))
	assert.Nil(t, CapHistory(nil))

	long := make([]Turn, MaxHistoryTurns+7)
	for i := range long {
		long[i] = Turn{Role: RoleUser, Content: fmt.Sprintf("turn-%d", i)}
	}

	capped := CapHistory(long)
	require.Len(t, capped, MaxHistoryTurns)
	// Oldest turns drop first.
	assert.Equal(t, "turn-7", capped[0].Content)
	assert.Equal(t, fmt.Sprintf("turn-%d", len(long)-1), capped[len(capped)-1].Content)
}

func TestChatCapsOversizedHistory(t *testing.T) {
	var got chatRequest
	a := stubProvider(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		fmt.Fprint(w, `{"choices":[{"message":{"content":"ok"}}]}`)
	})

	long := make([]Turn, MaxHistoryTurns*2)
	for i := range long {
		long[i] = Turn{Role: RoleUser, Content: fmt.Sprintf("turn-%d", i)}
	}

	_, err := a.Chat(context.Background(), long, "terbaru")
	require.NoError(t, err)

	// system + capped history + current message
	assert.Len(t, got.Messages, MaxHistoryTurns+2)
}
