package controllers

import (
	"github.com/gofiber/fiber/v2"
	fiberlog "github.com/gofiber/fiber/v2/log"

	"github.com/juanrengga/seido-web/app/models"
	"github.com/juanrengga/seido-web/app/repository"
	"github.com/juanrengga/seido-web/internal/pkg/notify"
)

// ContactController handles public contact form submissions
type ContactController struct {
	messageRepo repository.MessageRepository
	relay       *notify.Relay
}

var contactController *ContactController

// InitializeContactController wires the controller
func InitializeContactController(relay *notify.Relay) {
	contactController = &ContactController{
		messageRepo: repository.GetGlobalFactory().GetMessageRepository(),
		relay:       relay,
	}
}

// GetContactController returns the initialized controller
func GetContactController() *ContactController {
	return contactController
}

// HandleContactSubmit stores an inbound inquiry and then forwards it to the
// email relay. The durable insert decides the response; the relay runs
// strictly after it and its outcome is ignored.
func (cc *ContactController) HandleContactSubmit(c *fiber.Ctx) error {
	var req struct {
		Name    string `json:"name" form:"name"`
		Email   string `json:"email" form:"email"`
		Subject string `json:"subject" form:"subject"`
		Message string `json:"message" form:"message"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request"})
	}

	msg := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := msg.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "validation failed",
			"message": "Nama, email, subjek dan pesan wajib diisi dengan benar",
		})
	}

	if err := cc.messageRepo.Create(c.UserContext(), msg); err != nil {
		fiberlog.Errorf("contact insert failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "store failed",
			"message": "Gagal mengirim pesan. Silakan coba lagi nanti.",
		})
	}

	// Fire-and-forget; the record already exists
	cc.relay.SendContactNotification(msg)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":      msg.ID,
		"status":  msg.Status,
		"message": "Pesan berhasil dikirim! Kami akan segera menghubungi Anda.",
	})
}
