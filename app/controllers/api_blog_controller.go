package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/juanrengga/seido-web/app/models"
	"github.com/juanrengga/seido-web/app/repository"
)

// HandleAPIArticles lists published articles as JSON, paginated the same
// way as the rendered blog listing.
func HandleAPIArticles(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetArticleRepository()

	page, _ := strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	category := c.Query("category")
	if category != "" && !models.IsValidCategory(category) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown category"})
	}

	articles, total, err := repo.GetPublished(c.UserContext(), page, repository.DefaultPageSize, category)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load articles"})
	}

	return c.JSON(fiber.Map{
		"articles":   articles,
		"page":       page,
		"page_count": repository.PageCount(total, repository.DefaultPageSize),
		"total":      total,
	})
}

// HandleAPIArticleBySlug returns one published article as JSON. Drafts are
// filtered in the query, so a guessed slug yields 404.
func HandleAPIArticleBySlug(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetArticleRepository()

	article, err := repo.GetPublishedBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "article not found"})
	}

	return c.JSON(article)
}

// HandleAPIPartners returns the partner strip entries as JSON for the
// scrolling partner widget.
func HandleAPIPartners(c *fiber.Ctx) error {
	partners, err := repository.GetGlobalFactory().GetPortfolioRepository().GetPartners(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to load partners"})
	}

	return c.JSON(fiber.Map{"partners": partners})
}
