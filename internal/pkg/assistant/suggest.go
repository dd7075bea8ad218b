package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Suggestion prompts ask for strict JSON so the answer can be parsed; some
// providers still wrap it in a markdown fence, which extractJSON strips.

const portfolioSuggestPrompt = `Anda adalah copywriter untuk perusahaan manufaktur dan fabrikasi PT. Seido Mitra Abadi. Berdasarkan judul proyek dan kategori layanan, buat deskripsi proyek yang singkat dan profesional dalam Bahasa Indonesia (satu sampai dua kalimat) serta petunjuk gambar 1-2 kata dalam Bahasa Inggris untuk pencarian foto stok.

Jawab HANYA dengan JSON berbentuk {"description": "...", "ai_hint": "..."} tanpa teks lain.`

const articleSuggestPrompt = `Anda adalah penulis konten untuk blog perusahaan manufaktur dan fabrikasi PT. Seido Mitra Abadi. Berdasarkan judul artikel, buat ringkasan singkat (excerpt, maksimal dua kalimat) dan isi artikel lengkap dalam format markdown. Keduanya dalam Bahasa Indonesia, profesional, dan relevan dengan industri bubut, moulding, dan conveyor.

Jawab HANYA dengan JSON berbentuk {"excerpt": "...", "content": "..."} tanpa teks lain.`

// PortfolioSuggestion is the AI draft for a portfolio entry.
type PortfolioSuggestion struct {
	Description string `json:"description"`
	AIHint      string `json:"ai_hint"`
}

// ArticleSuggestion is the AI draft for a blog article.
type ArticleSuggestion struct {
	Excerpt string `json:"excerpt"`
	Content string `json:"content"`
}

// SuggestPortfolio drafts a description and image hint for a project.
func (a *Assistant) SuggestPortfolio(ctx context.Context, title, category string) (*PortfolioSuggestion, error) {
	prompt := fmt.Sprintf("Judul Proyek/Perusahaan: %s\nKategori Layanan: %s", title, category)

	raw, err := a.complete(ctx, portfolioSuggestPrompt, nil, prompt)
	if err != nil {
		return nil, err
	}

	var s PortfolioSuggestion
	if err := json.Unmarshal([]byte(extractJSON(raw)), &s); err != nil {
		return nil, fmt.Errorf("failed to parse portfolio suggestion: %w", err)
	}
	return &s, nil
}

// SuggestArticle drafts an excerpt and body for a blog article.
func (a *Assistant) SuggestArticle(ctx context.Context, title string) (*ArticleSuggestion, error) {
	prompt := "Judul Artikel: " + title

	raw, err := a.complete(ctx, articleSuggestPrompt, nil, prompt)
	if err != nil {
		return nil, err
	}

	var s ArticleSuggestion
	if err := json.Unmarshal([]byte(extractJSON(raw)), &s); err != nil {
		return nil, fmt.Errorf("failed to parse article suggestion: %w", err)
	}
	return &s, nil
}

// extractJSON removes a surrounding ```json fence, if any.
func extractJSON(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
