package controllers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juanrengga/seido-web/app/models"
	"github.com/juanrengga/seido-web/app/repository"
	"github.com/juanrengga/seido-web/internal/pkg/usercontext"
)

// fakePortfolioRepo records writes so handler tests run without a database.
type fakePortfolioRepo struct {
	created []*models.PortfolioProject
}

var _ repository.PortfolioRepository = (*fakePortfolioRepo)(nil)

func (f *fakePortfolioRepo) Create(_ context.Context, p *models.PortfolioProject) error {
	f.created = append(f.created, p)
	return nil
}

func (f *fakePortfolioRepo) GetByID(context.Context, uint64) (*models.PortfolioProject, error) {
	return nil, fmt.Errorf("not found")
}

func (f *fakePortfolioRepo) GetProjects(context.Context) ([]models.PortfolioProject, error) {
	return nil, nil
}

func (f *fakePortfolioRepo) GetPartners(context.Context) ([]models.PortfolioProject, error) {
	return nil, nil
}

func (f *fakePortfolioRepo) Update(context.Context, *models.PortfolioProject) error { return nil }

func (f *fakePortfolioRepo) Delete(context.Context, uint64) error { return nil }

func (f *fakePortfolioRepo) Count(context.Context) (int64, error) { return 0, nil }

func newMitraApp(repo repository.PortfolioRepository) *fiber.App {
	apc := &AdminPortfolioController{portfolioRepo: repo}

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(usercontext.KeyUserContext, usercontext.UserContext{
			UserID:     1,
			Username:   "admin",
			IsLoggedIn: true,
			IsAdmin:    true,
		})
		return c.Next()
	})
	app.Post("/admin/mitra/store", apc.HandleAdminMitraStore)
	return app
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", fiber.MIMEApplicationForm)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestHandleAdminMitraStoreCreatesPartner(t *testing.T) {
	repo := &fakePortfolioRepo{}
	app := newMitraApp(repo)

	resp := postForm(t, app, "/admin/mitra/store", url.Values{
		"name":   {"PT. Sinar Baja"},
		"images": {"https://assets.example.com/logo.png"},
	})

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/admin/mitra", resp.Header.Get("Location"))

	require.Len(t, repo.created, 1)
	partner := repo.created[0]
	assert.Equal(t, "PT. Sinar Baja", partner.Title)
	assert.Equal(t, models.CategoryPartnership, partner.Category)
	assert.Equal(t, models.ImageList{"https://assets.example.com/logo.png"}, partner.Images)
}

func TestHandleAdminMitraStoreRejectsTooManyImages(t *testing.T) {
	repo := &fakePortfolioRepo{}
	app := newMitraApp(repo)

	var lines []string
	for i := 0; i <= models.MaxProjectImages; i++ {
		lines = append(lines, fmt.Sprintf("https://assets.example.com/logo-%d.png", i))
	}

	resp := postForm(t, app, "/admin/mitra/store", url.Values{
		"name":   {"PT. Sinar Baja"},
		"images": {strings.Join(lines, "\n")},
	})

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/admin/mitra", resp.Header.Get("Location"))
	assert.Empty(t, repo.created, "an over-limit image list must never reach the repository")
}

func TestHandleAdminMitraStoreRejectsEmptyName(t *testing.T) {
	repo := &fakePortfolioRepo{}
	app := newMitraApp(repo)

	resp := postForm(t, app, "/admin/mitra/store", url.Values{
		"name": {"   "},
	})

	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Empty(t, repo.created)
}
