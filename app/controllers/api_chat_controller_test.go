package controllers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juanrengga/seido-web/internal/pkg/assistant"
)

func newChatApp(t *testing.T, provider http.HandlerFunc) *fiber.App {
	t.Helper()

	srv := httptest.NewServer(provider)
	t.Cleanup(srv.Close)

	InitializeChatController(assistant.NewWithEndpoint(srv.URL, "", "test-model"))

	app := fiber.New()
	app.Post("/api/v1/chat", GetChatController().HandleChat)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (*http.Response, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &parsed))
	}
	return resp, parsed
}

func TestHandleChatReturnsProviderReply(t *testing.T) {
	app := newChatApp(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"choices":[{"message":{"content":"Selamat pagi, ada yang bisa kami bantu?"}}]}`)
	})

	resp, body := postJSON(t, app, "/api/v1/chat", `{"message":"Halo","history":[]}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Selamat pagi, ada yang bisa kami bantu?", body["response"])
}

func TestHandleChatFallsBackOnProviderError(t *testing.T) {
	app := newChatApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	resp, body := postJSON(t, app, "/api/v1/chat", `{"message":"Halo"}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, assistant.FallbackReply, body["response"])
}

func TestHandleChatRejectsEmptyMessage(t *testing.T) {
	app := newChatApp(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("provider must not be called")
	})

	resp, _ := postJSON(t, app, "/api/v1/chat", `{"message":""}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleChatRejectsMalformedBody(t *testing.T) {
	app := newChatApp(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("provider must not be called")
	})

	resp, _ := postJSON(t, app, "/api/v1/chat", `{not json`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
