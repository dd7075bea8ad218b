package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestPortfolioParsesDraft(t *testing.T) {
	var got chatRequest
	a := stubProvider(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		fmt.Fprint(w, `{"choices":[{"message":{"content":"{\"description\":\"Fabrikasi conveyor untuk PT. Gajah Tunggal.\",\"ai_hint\":\"conveyor belt\"}"}}]}`)
	})

	s, err := a.SuggestPortfolio(context.Background(), "PT. Gajah Tunggal", "Fabrikasi Conveyor")
	require.NoError(t, err)
	assert.Equal(t, "Fabrikasi conveyor untuk PT. Gajah Tunggal.", s.Description)
	assert.Equal(t, "conveyor belt", s.AIHint)

	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Contains(t, got.Messages[0].Content, "copywriter")
	assert.Contains(t, got.Messages[1].Content, "PT. Gajah Tunggal")
	assert.Contains(t, got.Messages[1].Content, "Fabrikasi Conveyor")
}

func TestSuggestArticleParsesFencedDraft(t *testing.T) {
	a := stubProvider(t, func(w http.ResponseWriter, r *http.Request) {
		body := "```json\n{\"excerpt\":\"Ringkasan singkat.\",\"content\":\"# Judul\\n\\nIsi artikel.\"}\n```"
		resp, _ := json.Marshal(map[string]any{
			"choices": []map[string]any{{"message": map[string]string{"content": body}}},
		})
		w.Write(resp)
	})

	s, err := a.SuggestArticle(context.Background(), "Cara Merawat Conveyor")
	require.NoError(t, err)
	assert.Equal(t, "Ringkasan singkat.", s.Excerpt)
	assert.Equal(t, "# Judul\n\nIsi artikel.", s.Content)
}

func TestSuggestArticleRejectsNonJSONReply(t *testing.T) {
	a := stubProvider(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"choices":[{"message":{"content":"Tentu, ini drafnya: ..."}}]}`)
	})

	_, err := a.SuggestArticle(context.Background(), "Cara Merawat Conveyor")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse article suggestion")
}

func TestSuggestPortfolioPropagatesProviderError(t *testing.T) {
	a := stubProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := a.SuggestPortfolio(context.Background(), "PT. Gajah Tunggal", "Jasa Bubut")
	require.Error(t, err)
}

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"  {\"a\":1}  ", `{"a":1}`},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, extractJSON(tc.in))
	}
}
