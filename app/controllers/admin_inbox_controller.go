package controllers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/juanrengga/seido-web/app/models"
	"github.com/juanrengga/seido-web/app/repository"
	"github.com/juanrengga/seido-web/internal/pkg/notify"
	"github.com/juanrengga/seido-web/internal/pkg/usercontext"
)

var errEmptyReply = errors.New("isi balasan diperlukan")

// AdminInboxController handles the contact message inbox
type AdminInboxController struct {
	messageRepo repository.MessageRepository
	relay       *notify.Relay
}

var adminInboxController *AdminInboxController

// InitializeAdminInboxController wires the controller
func InitializeAdminInboxController(relay *notify.Relay) {
	adminInboxController = &AdminInboxController{
		messageRepo: repository.GetGlobalFactory().GetMessageRepository(),
		relay:       relay,
	}
}

// GetAdminInboxController returns the initialized controller
func GetAdminInboxController() *AdminInboxController {
	return adminInboxController
}

func (aic *AdminInboxController) handleError(c *fiber.Ctx, message string, err error) error {
	fm := fiber.Map{
		"type":    "error",
		"message": message + ": " + err.Error(),
	}
	return flash.WithError(c, fm).Redirect("/admin/pesan-masuk")
}

func (aic *AdminInboxController) requireLogin(c *fiber.Ctx) bool {
	return usercontext.GetUserContext(c).IsLoggedIn
}

// HandleAdminInbox renders the inbox, optionally filtered to one tab
func (aic *AdminInboxController) HandleAdminInbox(c *fiber.Ctx) error {
	tab := c.Query("tab", "all")

	var messages []models.ContactMessage
	var err error
	switch tab {
	case models.MessageStatusUnread, models.MessageStatusRead, models.MessageStatusReplied:
		messages, err = aic.messageRepo.GetByStatus(c.UserContext(), tab)
	default:
		tab = "all"
		messages, err = aic.messageRepo.GetAll(c.UserContext())
	}
	if err != nil {
		return aic.handleError(c, "Gagal memuat pesan", err)
	}

	unread, err := aic.messageRepo.CountUnread(c.UserContext())
	if err != nil {
		unread = 0
	}

	return c.Render("admin/inbox", layoutData(c, "Pesan Masuk - Seido Admin", fiber.Map{
		"Messages":    messages,
		"Tab":         tab,
		"UnreadCount": unread,
	}), "layouts/admin")
}

// HandleAdminInboxMarkRead moves a message from unread to read
func (aic *AdminInboxController) HandleAdminInboxMarkRead(c *fiber.Ctx) error {
	if !aic.requireLogin(c) {
		return c.Redirect("/admin/login", fiber.StatusSeeOther)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return aic.handleError(c, "ID pesan tidak valid", err)
	}

	if err := aic.messageRepo.UpdateStatus(c.UserContext(), id, models.MessageStatusRead); err != nil {
		return aic.handleError(c, "Gagal mengubah status pesan", err)
	}

	return c.Redirect("/admin/pesan-masuk", fiber.StatusSeeOther)
}

// HandleAdminInboxReply stores a reply, marks the message as replied and
// forwards the reply to the sender best-effort. The reply record is the
// authoritative outcome; the relay result never changes the response.
func (aic *AdminInboxController) HandleAdminInboxReply(c *fiber.Ctx) error {
	if !aic.requireLogin(c) {
		return c.Redirect("/admin/login", fiber.StatusSeeOther)
	}

	id, err := parseIDParam(c)
	if err != nil {
		return aic.handleError(c, "ID pesan tidak valid", err)
	}

	body := strings.TrimSpace(c.FormValue("reply"))
	if body == "" {
		return aic.handleError(c, "Balasan kosong", errEmptyReply)
	}

	reply, err := aic.messageRepo.AddReply(c.UserContext(), id, body)
	if err != nil {
		return aic.handleError(c, "Gagal menyimpan balasan", err)
	}

	if msg, err := aic.messageRepo.GetByID(c.UserContext(), id); err == nil {
		aic.relay.SendReplyNotification(reply, msg)
	}

	fm := fiber.Map{
		"type":    "success",
		"message": "Balasan terkirim",
	}
	return flash.WithSuccess(c, fm).Redirect("/admin/pesan-masuk")
}
