// Package assistant implements the customer-service chat responder backed
// by an external chat-completions API. It is stateless: the caller supplies
// the conversation so far, the package returns one reply, nothing is
// persisted.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"github.com/juanrengga/seido-web/internal/pkg/env"
)

const (
	// MaxHistoryTurns bounds the prior turns sent upstream; oldest turns are
	// dropped first to keep request cost and latency predictable.
	MaxHistoryTurns = 20

	// Low temperature biases toward consistent, on-brand answers.
	temperature = 0.3

	defaultModel   = "deepseek-chat"
	defaultTimeout = 60 * time.Second

	// FallbackReply is shown whenever the provider errors. Raw provider
	// errors never reach an end user.
	FallbackReply = "Maaf, terjadi kesalahan. Silakan coba lagi nanti atau hubungi kami langsung di 0817307887."
)

const systemPrompt = `Anda adalah asisten layanan pelanggan yang ramah, profesional, dan efisien untuk PT. Seido Mitra Abadi (dikenal sebagai Seido). Tugas Anda adalah menjawab pertanyaan pengguna tentang layanan dan informasi perusahaan secara singkat dan langsung ke intinya.

Informasi Perusahaan:
- Nama: PT. Seido Mitra Abadi (Seido)
- Pengalaman: Lebih dari 15 tahun dalam industri manufaktur dan fabrikasi
- Spesialisasi: Jasa Bubut (CNC machining, fabrikasi komponen custom, gear dan spare part presisi), Jasa Moulding (pembuatan dan perbaikan mold untuk die casting dan blow molding), Jasa Fabrikasi Conveyor (belt, roller, chain conveyor, sushi conveyor, modifikasi dan maintenance)
- Portofolio Klien: PT. Astra Honda Motor, PT. Gajah Tunggal, MRT Jakarta, Bank BCA, PT. Semen Indonesia

Informasi Kontak:
- Konsultasi Teknis: 0817307887 / 08119057887 (WhatsApp tersedia)
- Admin & Penawaran: 081219351100 (WhatsApp tersedia)
- Email: ptseido@gmail.com / info@seido.co.id
- Jam Operasional: Senin - Jumat 08:00 - 17:00 WIB, Sabtu 08:00 - 14:00 WIB

Gaya Komunikasi: mulai dengan sapaan ramah, gunakan bahasa yang sopan dan profesional, hindari jargon teknis yang kompleks, dan arahkan pertanyaan harga atau penawaran ke nomor Admin.`

// Role tags for conversation turns.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one prior exchange in the chat widget.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Assistant talks to a chat-completions compatible endpoint.
type Assistant struct {
	endpoint string
	apiKey   string
	model    string
	client   *http.Client
}

// New builds an assistant from AI_ENDPOINT / AI_API_KEY / AI_MODEL.
func New() *Assistant {
	return &Assistant{
		endpoint: env.GetEnv("AI_ENDPOINT", "https://api.deepseek.com/v1/chat/completions"),
		apiKey:   env.GetEnv("AI_API_KEY", ""),
		model:    env.GetEnv("AI_MODEL", defaultModel),
		client:   &http.Client{Timeout: defaultTimeout},
	}
}

// NewWithEndpoint is used by tests to point the assistant at a stub server.
func NewWithEndpoint(endpoint, apiKey, model string) *Assistant {
	return &Assistant{
		endpoint: endpoint,
		apiKey:   apiKey,
		model:    model,
		client:   &http.Client{Timeout: defaultTimeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// CapHistory drops the oldest turns beyond MaxHistoryTurns.
func CapHistory(history []Turn) []Turn {
	if len(history) <= MaxHistoryTurns {
		return history
	}
	return history[len(history)-MaxHistoryTurns:]
}

// Chat produces a single reply for the given history and new user message.
// Any provider failure is logged and converted into FallbackReply; the
// error return is for callers that want to observe failures (tests,
// logging), the reply string is always safe to show.
func (a *Assistant) Chat(ctx context.Context, history []Turn, message string) (string, error) {
	reply, err := a.complete(ctx, systemPrompt, CapHistory(history), message)
	if err != nil {
		log.Errorf("[Assistant] Provider error: %v", err)
		return FallbackReply, err
	}
	return reply, nil
}

func (a *Assistant) complete(ctx context.Context, system string, history []Turn, message string) (string, error) {
	messages := make([]chatMessage, 0, len(history)+2)
	messages = append(messages, chatMessage{Role: "system", Content: system})
	for _, t := range history {
		role := RoleUser
		if t.Role == RoleAssistant {
			role = RoleAssistant
		}
		messages = append(messages, chatMessage{Role: role, Content: t.Content})
	}
	messages = append(messages, chatMessage{Role: RoleUser, Content: message})

	payload, err := json.Marshal(chatRequest{
		Model:       a.model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   2000,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if a.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+a.apiKey)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat provider returned status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode chat response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("chat provider returned no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}
