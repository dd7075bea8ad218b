// Package notify forwards contact submissions and admin replies to an
// external email-relay endpoint. The relay is a side channel: it runs only
// after the authoritative database write committed, has no retry, and its
// failures are logged and swallowed.
package notify

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"github.com/juanrengga/seido-web/app/models"
	"github.com/juanrengga/seido-web/internal/pkg/env"
)

const defaultTimeout = 10 * time.Second

// Relay posts form-encoded notifications to a FormSubmit-style endpoint.
type Relay struct {
	endpoint string
	client   *http.Client
}

// NewRelay builds a relay from RELAY_ENDPOINT. An empty endpoint yields a
// disabled relay whose sends are silent no-ops.
func NewRelay() *Relay {
	return &Relay{
		endpoint: env.GetEnv("RELAY_ENDPOINT", ""),
		client:   &http.Client{Timeout: defaultTimeout},
	}
}

// NewRelayWithEndpoint is used by tests to point the relay at a stub server.
func NewRelayWithEndpoint(endpoint string) *Relay {
	return &Relay{
		endpoint: endpoint,
		client:   &http.Client{Timeout: defaultTimeout},
	}
}

// SendContactNotification forwards a freshly stored contact message.
// Always returns; never propagates an error to the caller.
func (r *Relay) SendContactNotification(msg *models.ContactMessage) {
	body := fmt.Sprintf("Subject: %s\n\n%s", msg.Subject, msg.Message)
	r.send(msg.Name, msg.Email, body, "Contact Form: "+msg.Subject)
}

// SendReplyNotification forwards an admin reply to the original sender.
func (r *Relay) SendReplyNotification(reply *models.Reply, msg *models.ContactMessage) {
	body := fmt.Sprintf("%s\n\n---\nBalasan untuk pesan Anda:\n%s", reply.Body, msg.Message)
	r.send("Seido Admin", msg.Email, body, "Re: "+msg.Subject)
}

func (r *Relay) send(name, email, message, subject string) {
	if r.endpoint == "" {
		return
	}

	form := url.Values{}
	form.Set("name", name)
	form.Set("email", email)
	form.Set("message", message)
	form.Set("_captcha", "false")
	form.Set("_subject", subject)

	resp, err := r.client.Post(r.endpoint, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		log.Errorf("[Notify] Relay request failed: %v", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Errorf("[Notify] Relay returned status %d", resp.StatusCode)
		return
	}

	log.Infof("[Notify] Forwarded notification %q", subject)
}
