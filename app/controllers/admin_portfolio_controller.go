package controllers

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/sujit-baniya/flash"

	"github.com/juanrengga/seido-web/app/models"
	"github.com/juanrengga/seido-web/app/repository"
	"github.com/juanrengga/seido-web/internal/pkg/assetstore"
	"github.com/juanrengga/seido-web/internal/pkg/usercontext"
)

// AdminPortfolioController handles portfolio and partner management
type AdminPortfolioController struct {
	portfolioRepo repository.PortfolioRepository
	assets        *assetstore.Client
}

var adminPortfolioController *AdminPortfolioController

// InitializeAdminPortfolioController wires the controller. assets may be
// nil when the asset store is disabled; deletes then skip image cleanup.
func InitializeAdminPortfolioController(assets *assetstore.Client) {
	adminPortfolioController = &AdminPortfolioController{
		portfolioRepo: repository.GetGlobalFactory().GetPortfolioRepository(),
		assets:        assets,
	}
}

// GetAdminPortfolioController returns the initialized controller
func GetAdminPortfolioController() *AdminPortfolioController {
	return adminPortfolioController
}

func (apc *AdminPortfolioController) handleError(c *fiber.Ctx, route, message string, err error) error {
	fm := fiber.Map{
		"type":    "error",
		"message": message + ": " + err.Error(),
	}
	return flash.WithError(c, fm).Redirect(route)
}

func (apc *AdminPortfolioController) requireLogin(c *fiber.Ctx) bool {
	return usercontext.GetUserContext(c).IsLoggedIn
}

// HandleAdminPortfolio renders the portfolio management listing
func (apc *AdminPortfolioController) HandleAdminPortfolio(c *fiber.Ctx) error {
	projects, err := apc.portfolioRepo.GetProjects(c.UserContext())
	if err != nil {
		return apc.handleError(c, "/admin", "Gagal memuat portfolio", err)
	}

	return c.Render("admin/portfolio_index", layoutData(c, "Portfolio - Seido Admin", fiber.Map{
		"Projects": projects,
	}), "layouts/admin")
}

// HandleAdminPortfolioCreate renders the add-project form
func (apc *AdminPortfolioController) HandleAdminPortfolioCreate(c *fiber.Ctx) error {
	return c.Render("admin/portfolio_form", layoutData(c, "Proyek Baru - Seido Admin", fiber.Map{
		"Project": &models.PortfolioProject{},
		"Action":  "/admin/portfolio/store",
	}), "layouts/admin")
}

// parseImageList reads the newline-separated hidden field the upload widget
// fills with the public URLs of already-uploaded images.
func parseImageList(raw string) models.ImageList {
	images := models.ImageList{}
	for _, line := range strings.Split(raw, "\n") {
		if url := strings.TrimSpace(line); url != "" {
			images = append(images, url)
		}
	}
	return images
}

// HandleAdminPortfolioStore creates a project from the submitted form
func (apc *AdminPortfolioController) HandleAdminPortfolioStore(c *fiber.Ctx) error {
	if !apc.requireLogin(c) {
		return c.Redirect("/admin/login", fiber.StatusSeeOther)
	}

	project := &models.PortfolioProject{
		Title:       c.FormValue("title"),
		Category:    c.FormValue("category"),
		Description: c.FormValue("description"),
		Images:      parseImageList(c.FormValue("images")),
		AIHint:      c.FormValue("ai_hint"),
	}

	if err := project.Validate(); err != nil {
		return apc.handleError(c, "/admin/portfolio/create", "Proyek tidak valid", err)
	}

	if err := apc.portfolioRepo.Create(c.UserContext(), project); err != nil {
		return apc.handleError(c, "/admin/portfolio", "Gagal menyimpan proyek", err)
	}

	fm := fiber.Map{
		"type":    "success",
		"message": "Proyek berhasil dibuat",
	}
	return flash.WithSuccess(c, fm).Redirect("/admin/portfolio")
}

// HandleAdminPortfolioEdit renders the edit form for one project
func (apc *AdminPortfolioController) HandleAdminPortfolioEdit(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return apc.handleError(c, "/admin/portfolio", "ID proyek tidak valid", err)
	}

	project, err := apc.portfolioRepo.GetByID(c.UserContext(), id)
	if err != nil {
		return apc.handleError(c, "/admin/portfolio", "Proyek tidak ditemukan", err)
	}

	return c.Render("admin/portfolio_form", layoutData(c, "Edit Proyek - Seido Admin", fiber.Map{
		"Project": project,
		"Action":  fmt.Sprintf("/admin/portfolio/update/%d", project.ID),
	}), "layouts/admin")
}

// HandleAdminPortfolioUpdate patches a project from the submitted form
func (apc *AdminPortfolioController) HandleAdminPortfolioUpdate(c *fiber.Ctx) error {
	if !apc.requireLogin(c) {
		return c.Redirect("/admin/login", fiber.StatusSeeOther)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return apc.handleError(c, "/admin/portfolio", "ID proyek tidak valid", err)
	}

	project, err := apc.portfolioRepo.GetByID(c.UserContext(), id)
	if err != nil {
		return apc.handleError(c, "/admin/portfolio", "Proyek tidak ditemukan", err)
	}

	project.Title = c.FormValue("title", project.Title)
	project.Category = c.FormValue("category", project.Category)
	project.Description = c.FormValue("description", project.Description)
	project.AIHint = c.FormValue("ai_hint", project.AIHint)
	if raw := c.FormValue("images"); raw != "" {
		project.Images = parseImageList(raw)
	}

	if err := project.Validate(); err != nil {
		return apc.handleError(c, "/admin/portfolio", "Proyek tidak valid", err)
	}

	if err := apc.portfolioRepo.Update(c.UserContext(), project); err != nil {
		return apc.handleError(c, "/admin/portfolio", "Gagal memperbarui proyek", err)
	}

	fm := fiber.Map{
		"type":    "success",
		"message": "Proyek berhasil diperbarui",
	}
	return flash.WithSuccess(c, fm).Redirect("/admin/portfolio")
}

// HandleAdminPortfolioDelete removes a project and releases its images.
// Image cleanup runs first and is best-effort: an orphaned object in the
// store must never keep the record alive. There is no atomicity between
// the two steps.
func (apc *AdminPortfolioController) HandleAdminPortfolioDelete(c *fiber.Ctx) error {
	if !apc.requireLogin(c) {
		return c.Redirect("/admin/login", fiber.StatusSeeOther)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return apc.handleError(c, "/admin/portfolio", "ID proyek tidak valid", err)
	}

	project, err := apc.portfolioRepo.GetByID(c.UserContext(), id)
	if err != nil {
		return apc.handleError(c, "/admin/portfolio", "Proyek tidak ditemukan", err)
	}

	apc.releaseImages(c.UserContext(), project)

	if err := apc.portfolioRepo.Delete(c.UserContext(), id); err != nil {
		return apc.handleError(c, "/admin/portfolio", "Gagal menghapus proyek", err)
	}

	fm := fiber.Map{
		"type":    "success",
		"message": "Proyek berhasil dihapus",
	}
	return flash.WithSuccess(c, fm).Redirect("/admin/portfolio")
}

func (apc *AdminPortfolioController) releaseImages(ctx context.Context, project *models.PortfolioProject) {
	if apc.assets == nil {
		if len(project.Images) > 0 {
			fiberlog.Warnf("asset store disabled, leaving %d image(s) of project %d in place", len(project.Images), project.ID)
		}
		return
	}
	for _, url := range project.Images {
		apc.assets.Release(ctx, assetstore.BucketPortfolios, url)
	}
}

// ===== Mitra (partner) management =====
// Partners are portfolio rows carrying the reserved Partnership category.

// HandleAdminMitra renders the partner management listing
func (apc *AdminPortfolioController) HandleAdminMitra(c *fiber.Ctx) error {
	partners, err := apc.portfolioRepo.GetPartners(c.UserContext())
	if err != nil {
		return apc.handleError(c, "/admin", "Gagal memuat mitra", err)
	}

	return c.Render("admin/mitra", layoutData(c, "Mitra - Seido Admin", fiber.Map{
		"Partners": partners,
	}), "layouts/admin")
}

// HandleAdminMitraStore creates a partner entry with the fixed category
func (apc *AdminPortfolioController) HandleAdminMitraStore(c *fiber.Ctx) error {
	if !apc.requireLogin(c) {
		return c.Redirect("/admin/login", fiber.StatusSeeOther)
	}

	name := strings.TrimSpace(c.FormValue("name"))
	if name == "" {
		return apc.handleError(c, "/admin/mitra", "Mitra tidak valid", fmt.Errorf("nama mitra diperlukan"))
	}

	partner := &models.PortfolioProject{
		Title:       name,
		Category:    models.CategoryPartnership,
		Description: fmt.Sprintf("Mitra kerjasama dengan %s", name),
		Images:      parseImageList(c.FormValue("images")),
	}

	if err := partner.Validate(); err != nil {
		return apc.handleError(c, "/admin/mitra", "Mitra tidak valid", err)
	}

	if err := apc.portfolioRepo.Create(c.UserContext(), partner); err != nil {
		return apc.handleError(c, "/admin/mitra", "Gagal menyimpan mitra", err)
	}

	fm := fiber.Map{
		"type":    "success",
		"message": "Mitra berhasil ditambahkan",
	}
	return flash.WithSuccess(c, fm).Redirect("/admin/mitra")
}

// HandleAdminMitraDelete removes a partner entry. The category is verified
// first so this screen can never delete a regular project.
func (apc *AdminPortfolioController) HandleAdminMitraDelete(c *fiber.Ctx) error {
	if !apc.requireLogin(c) {
		return c.Redirect("/admin/login", fiber.StatusSeeOther)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return apc.handleError(c, "/admin/mitra", "ID mitra tidak valid", err)
	}

	partner, err := apc.portfolioRepo.GetByID(c.UserContext(), id)
	if err != nil {
		return apc.handleError(c, "/admin/mitra", "Mitra tidak ditemukan", err)
	}
	if !partner.IsPartner() {
		return apc.handleError(c, "/admin/mitra", "Bukan entri mitra", fmt.Errorf("kategori %s", partner.Category))
	}

	apc.releaseImages(c.UserContext(), partner)

	if err := apc.portfolioRepo.Delete(c.UserContext(), id); err != nil {
		return apc.handleError(c, "/admin/mitra", "Gagal menghapus mitra", err)
	}

	fm := fiber.Map{
		"type":    "success",
		"message": "Mitra berhasil dihapus",
	}
	return flash.WithSuccess(c, fm).Redirect("/admin/mitra")
}
