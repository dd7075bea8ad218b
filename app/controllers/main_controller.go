package controllers

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/juanrengga/seido-web/app/models"
	"github.com/juanrengga/seido-web/app/repository"
	"github.com/juanrengga/seido-web/internal/pkg/retry"
)

// HandleHome renders the marketing home page with the partner strip and the
// newest portfolio entries.
func HandleHome(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetPortfolioRepository()

	var projects []models.PortfolioProject
	var partners []models.PortfolioProject

	ctx, cancel := readContext()
	defer cancel()

	err := retry.Do(ctx, readAttempts, readBaseDelay, func(ctx context.Context) error {
		var err error
		if projects, err = repo.GetProjects(ctx); err != nil {
			return err
		}
		partners, err = repo.GetPartners(ctx)
		return err
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load page data, please try again")
	}

	return c.Render("home", layoutData(c, "Seido - Manufaktur & Fabrikasi", fiber.Map{
		"Projects": projects,
		"Partners": partners,
	}), "layouts/main")
}

// HandleAbout renders the tentang-kami page
func HandleAbout(c *fiber.Ctx) error {
	return c.Render("tentang-kami", layoutData(c, "Tentang Kami - Seido", fiber.Map{}), "layouts/main")
}

// HandleServices renders the layanan catalog page
func HandleServices(c *fiber.Ctx) error {
	return c.Render("layanan", layoutData(c, "Layanan - Seido", fiber.Map{}), "layouts/main")
}

// HandleKontak renders the contact page with the submission form
func HandleKontak(c *fiber.Ctx) error {
	return c.Render("kontak", layoutData(c, "Kontak - Seido", fiber.Map{}), "layouts/main")
}

// HandlePortfolio renders the public portfolio listing, newest first. The
// category filter itself runs client-side; partnership entries stay out of
// this listing and appear in the partner strip instead.
func HandlePortfolio(c *fiber.Ctx) error {
	repo := repository.GetGlobalFactory().GetPortfolioRepository()

	var projects []models.PortfolioProject

	ctx, cancel := readContext()
	defer cancel()

	err := retry.Do(ctx, readAttempts, readBaseDelay, func(ctx context.Context) error {
		var err error
		projects, err = repo.GetProjects(ctx)
		return err
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load portfolio, please try again")
	}

	return c.Render("portfolio", layoutData(c, "Portfolio - Seido", fiber.Map{
		"Projects": projects,
	}), "layouts/main")
}
