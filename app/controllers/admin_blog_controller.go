package controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/juanrengga/seido-web/app/models"
	"github.com/juanrengga/seido-web/app/repository"
	"github.com/juanrengga/seido-web/internal/pkg/content"
	"github.com/juanrengga/seido-web/internal/pkg/usercontext"
)

// AdminBlogController handles admin article CRUD using the repository pattern
type AdminBlogController struct {
	articleRepo repository.ArticleRepository
}

var adminBlogController *AdminBlogController

// InitializeAdminBlogController wires the controller with its repository
func InitializeAdminBlogController() {
	adminBlogController = &AdminBlogController{
		articleRepo: repository.GetGlobalFactory().GetArticleRepository(),
	}
}

// GetAdminBlogController returns the initialized controller
func GetAdminBlogController() *AdminBlogController {
	return adminBlogController
}

// handleError is a helper method for consistent error handling
func (abc *AdminBlogController) handleError(c *fiber.Ctx, message string, err error) error {
	fm := fiber.Map{
		"type":    "error",
		"message": message + ": " + err.Error(),
	}
	return flash.WithError(c, fm).Redirect("/admin/blog")
}

// requireLogin is the in-controller half of the two-layer session gate.
func (abc *AdminBlogController) requireLogin(c *fiber.Ctx) bool {
	return usercontext.GetUserContext(c).IsLoggedIn
}

// HandleAdminBlog renders the article management listing, drafts included
func (abc *AdminBlogController) HandleAdminBlog(c *fiber.Ctx) error {
	articles, err := abc.articleRepo.GetAll(c.UserContext())
	if err != nil {
		return abc.handleError(c, "Gagal memuat artikel", err)
	}

	return c.Render("admin/blog_index", layoutData(c, "Artikel - Seido Admin", fiber.Map{
		"Articles": articles,
	}), "layouts/admin")
}

// HandleAdminBlogCreate renders the article creation form
func (abc *AdminBlogController) HandleAdminBlogCreate(c *fiber.Ctx) error {
	return c.Render("admin/blog_form", layoutData(c, "Artikel Baru - Seido Admin", fiber.Map{
		"Article":    &models.Article{Status: models.StatusDraft},
		"Categories": models.ArticleCategories,
		"Action":     "/admin/blog/store",
	}), "layouts/admin")
}

// HandleAdminBlogStore creates a new article from the submitted form
func (abc *AdminBlogController) HandleAdminBlogStore(c *fiber.Ctx) error {
	if !abc.requireLogin(c) {
		return c.Redirect("/admin/login", fiber.StatusSeeOther)
	}

	article := &models.Article{
		Title:         c.FormValue("title"),
		Content:       c.FormValue("content"),
		Excerpt:       c.FormValue("excerpt"),
		FeaturedImage: c.FormValue("featured_image"),
		Author:        c.FormValue("author"),
		Status:        c.FormValue("status", models.StatusDraft),
		Category:      c.FormValue("category"),
	}
	if article.Author == "" {
		article.Author = usercontext.GetUsername(c)
	}

	if err := content.PrepareForSave(article, nil, time.Now()); err != nil {
		return abc.handleError(c, "Artikel tidak valid", err)
	}

	// Slug uniqueness is a store contract; on collision append a timestamp
	slugExists, err := abc.articleRepo.SlugExists(c.UserContext(), article.Slug)
	if err != nil {
		return abc.handleError(c, "Gagal memeriksa slug", err)
	}
	if slugExists {
		article.Slug = fmt.Sprintf("%s-%d", article.Slug, time.Now().Unix())
	}

	if err := abc.articleRepo.Create(c.UserContext(), article); err != nil {
		return abc.handleError(c, "Gagal menyimpan artikel", err)
	}

	fm := fiber.Map{
		"type":    "success",
		"message": "Artikel berhasil dibuat",
	}
	return flash.WithSuccess(c, fm).Redirect("/admin/blog")
}

// HandleAdminBlogEdit renders the edit form for one article
func (abc *AdminBlogController) HandleAdminBlogEdit(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return abc.handleError(c, "ID artikel tidak valid", err)
	}

	article, err := abc.articleRepo.GetByID(c.UserContext(), id)
	if err != nil {
		return abc.handleError(c, "Artikel tidak ditemukan", err)
	}

	return c.Render("admin/blog_form", layoutData(c, "Edit Artikel - Seido Admin", fiber.Map{
		"Article":    article,
		"Categories": models.ArticleCategories,
		"Action":     fmt.Sprintf("/admin/blog/update/%d", article.ID),
	}), "layouts/admin")
}

// HandleAdminBlogUpdate patches an article from the submitted form. The
// slug and publish timestamp are recomputed on every save, so publishing,
// unpublishing and republishing all derive consistent state.
func (abc *AdminBlogController) HandleAdminBlogUpdate(c *fiber.Ctx) error {
	if !abc.requireLogin(c) {
		return c.Redirect("/admin/login", fiber.StatusSeeOther)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return abc.handleError(c, "ID artikel tidak valid", err)
	}

	prev, err := abc.articleRepo.GetByID(c.UserContext(), id)
	if err != nil {
		return abc.handleError(c, "Artikel tidak ditemukan", err)
	}

	article := *prev
	article.Title = c.FormValue("title", prev.Title)
	article.Content = c.FormValue("content", prev.Content)
	article.Excerpt = c.FormValue("excerpt", prev.Excerpt)
	article.FeaturedImage = c.FormValue("featured_image", prev.FeaturedImage)
	article.Author = c.FormValue("author", prev.Author)
	article.Status = c.FormValue("status", prev.Status)
	article.Category = c.FormValue("category", prev.Category)

	if err := content.PrepareForSave(&article, prev, time.Now()); err != nil {
		return abc.handleError(c, "Artikel tidak valid", err)
	}

	if article.Slug != prev.Slug {
		slugExists, err := abc.articleRepo.SlugExistsExceptID(c.UserContext(), article.Slug, id)
		if err != nil {
			return abc.handleError(c, "Gagal memeriksa slug", err)
		}
		if slugExists {
			article.Slug = fmt.Sprintf("%s-%d", article.Slug, time.Now().Unix())
		}
	}

	if err := abc.articleRepo.Update(c.UserContext(), &article); err != nil {
		return abc.handleError(c, "Gagal memperbarui artikel", err)
	}

	fm := fiber.Map{
		"type":    "success",
		"message": "Artikel berhasil diperbarui",
	}
	return flash.WithSuccess(c, fm).Redirect("/admin/blog")
}

// HandleAdminBlogDelete permanently removes an article
func (abc *AdminBlogController) HandleAdminBlogDelete(c *fiber.Ctx) error {
	if !abc.requireLogin(c) {
		return c.Redirect("/admin/login", fiber.StatusSeeOther)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return abc.handleError(c, "ID artikel tidak valid", err)
	}

	if err := abc.articleRepo.Delete(c.UserContext(), id); err != nil {
		return abc.handleError(c, "Gagal menghapus artikel", err)
	}

	fm := fiber.Map{
		"type":    "success",
		"message": "Artikel berhasil dihapus",
	}
	return flash.WithSuccess(c, fm).Redirect("/admin/blog")
}
