package content

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juanrengga/seido-web/app/models"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple title", "Panduan Conveyor 2024", "panduan-conveyor-2024"},
		{"uppercase", "JASA BUBUT CNC", "jasa-bubut-cnc"},
		{"punctuation run collapses", "Fabrikasi: Baja & Logam!", "fabrikasi-baja-logam"},
		{"leading and trailing noise", "  --Hello World--  ", "hello-world"},
		{"digits kept", "Top 10 Tips", "top-10-tips"},
		{"only noise", "!!! ???", ""},
		{"empty", "", ""},
		{"unicode stripped", "Café Über Mesin", "caf-ber-mesin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{"Panduan Conveyor 2024", "Fabrikasi: Baja & Logam!", "a--b"}
	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once))
	}
}

func TestPrepareForSaveValidation(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		article models.Article
		wantErr error
	}{
		{
			name:    "missing title",
			article: models.Article{Author: "Budi", Status: models.StatusDraft},
			wantErr: ErrTitleRequired,
		},
		{
			name:    "whitespace title",
			article: models.Article{Title: "   ", Author: "Budi", Status: models.StatusDraft},
			wantErr: ErrTitleRequired,
		},
		{
			name:    "missing author on create",
			article: models.Article{Title: "Judul", Status: models.StatusDraft},
			wantErr: ErrAuthorRequired,
		},
		{
			name:    "unknown status",
			article: models.Article{Title: "Judul", Author: "Budi", Status: "archived"},
			wantErr: ErrBadStatus,
		},
		{
			name:    "unknown category",
			article: models.Article{Title: "Judul", Author: "Budi", Status: models.StatusDraft, Category: "Gosip"},
			wantErr: ErrBadCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := PrepareForSave(&tt.article, nil, now)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPrepareForSaveMissingAuthorAllowedOnUpdate(t *testing.T) {
	now := time.Now()
	prev := &models.Article{Title: "Lama", Author: "Budi", Status: models.StatusDraft}

	a := &models.Article{Title: "Baru", Status: models.StatusDraft}
	require.NoError(t, PrepareForSave(a, prev, now))
}

func TestPrepareForSaveStampsPublishTime(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	a := &models.Article{Title: "Panduan Conveyor 2024", Author: "Budi", Status: models.StatusPublished, Category: models.CategoryProduk}
	require.NoError(t, PrepareForSave(a, nil, now))

	assert.Equal(t, "panduan-conveyor-2024", a.Slug)
	require.NotNil(t, a.PublishedAt)
	assert.Equal(t, now, *a.PublishedAt)
}

func TestPrepareForSaveKeepsOriginalPublishTime(t *testing.T) {
	first := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	later := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	prev := &models.Article{
		Title:       "Judul",
		Author:      "Budi",
		Status:      models.StatusPublished,
		PublishedAt: &first,
	}

	a := &models.Article{Title: "Judul Direvisi", Author: "Budi", Status: models.StatusPublished}
	require.NoError(t, PrepareForSave(a, prev, later))

	require.NotNil(t, a.PublishedAt)
	assert.Equal(t, first, *a.PublishedAt)
}

func TestPrepareForSaveUnpublishClearsTimestamp(t *testing.T) {
	first := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	later := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	prev := &models.Article{
		Title:       "Judul",
		Author:      "Budi",
		Status:      models.StatusPublished,
		PublishedAt: &first,
	}

	a := &models.Article{Title: "Judul", Author: "Budi", Status: models.StatusDraft, PublishedAt: &first}
	require.NoError(t, PrepareForSave(a, prev, later))

	assert.Nil(t, a.PublishedAt)
}

func TestPrepareForSaveRepublishGetsFreshTime(t *testing.T) {
	first := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	later := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	// Unpublished earlier, so the stored row carries draft with no timestamp.
	prev := &models.Article{Title: "Judul", Author: "Budi", Status: models.StatusDraft}

	a := &models.Article{Title: "Judul", Author: "Budi", Status: models.StatusPublished}
	require.NoError(t, PrepareForSave(a, prev, later))

	require.NotNil(t, a.PublishedAt)
	assert.Equal(t, later, *a.PublishedAt)
	assert.NotEqual(t, first, *a.PublishedAt)
}

func TestPrepareForSaveRecomputesSlugFromTitle(t *testing.T) {
	now := time.Now()
	prev := &models.Article{Title: "Judul Lama", Slug: "judul-lama", Author: "Budi", Status: models.StatusDraft}

	a := &models.Article{Title: "Judul Sama Sekali Baru", Author: "Budi", Status: models.StatusDraft}
	require.NoError(t, PrepareForSave(a, prev, now))

	assert.Equal(t, "judul-sama-sekali-baru", a.Slug)
}
