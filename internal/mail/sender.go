// Package mail defines the transactional mail sender contract and the
// tenant-branded sender formatting. Message content templating lives with
// the booking flow, not here.
package mail

import (
	"context"
	"fmt"

	"github.com/seminar-portal/backend/internal/tenant"
)

// Message is one outbound transactional mail.
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// Sender is the external mail collaborator. Failures must propagate to the
// booking flow; implementations never report silent success.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// FormatFrom renders the RFC 5322 From header for a tenant's mail config,
// e.g. `WHGC Seminars <seminars@example.org>`.
func FormatFrom(mc tenant.MailConfig) string {
	return fmt.Sprintf("%s <%s>", mc.FromName, mc.FromEmail)
}
