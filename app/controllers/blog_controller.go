package controllers

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/juanrengga/seido-web/app/models"
	"github.com/juanrengga/seido-web/app/repository"
	"github.com/juanrengga/seido-web/internal/pkg/retry"
)

// featuredCount is 1 main post + 5 side posts in the featured grid.
const featuredCount = 6

// HandleBlogIndex renders the paginated public blog listing. Only published
// articles are ever queried; there is no parameter that can widen the
// filter to drafts.
func HandleBlogIndex(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetArticleRepository()

	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	category := c.Query("category")
	if category != "" && !models.IsValidCategory(category) {
		category = ""
	}

	var featured []models.Article
	var articles []models.Article
	var total int64

	ctx, cancel := readContext()
	defer cancel()

	err := retry.Do(ctx, readAttempts, readBaseDelay, func(ctx context.Context) error {
		var err error
		if featured, err = repo.GetRecentPublished(ctx, featuredCount); err != nil {
			return err
		}
		articles, total, err = repo.GetPublished(ctx, page, repository.DefaultPageSize, category)
		return err
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load articles, please try again")
	}

	return c.Render("blog/index", layoutData(c, "Blog - Seido", fiber.Map{
		"Featured":   featured,
		"Articles":   articles,
		"Page":       page,
		"PageCount":  repository.PageCount(total, repository.DefaultPageSize),
		"Total":      total,
		"Category":   category,
		"Categories": models.ArticleCategories,
	}), "layouts/main")
}

// HandleBlogShow renders a single published article by slug. Drafts return
// 404 even when the slug is guessed correctly.
func HandleBlogShow(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetArticleRepository()

	slug := c.Params("slug")

	var article *models.Article

	ctx, cancel := readContext()
	defer cancel()

	// Not-found is a terminal answer, only transient errors are retried.
	err := retry.Do(ctx, readAttempts, readBaseDelay, func(ctx context.Context) error {
		var err error
		article, err = repo.GetPublishedBySlug(ctx, slug)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			article = nil
			return nil
		}
		return err
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load article, please try again")
	}
	if article == nil {
		return c.Status(fiber.StatusNotFound).SendString("Article not found")
	}

	return c.Render("blog/show", layoutData(c, article.Title+" - Seido", fiber.Map{
		"Article": article,
	}), "layouts/main")
}
