package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/FatimaEzzahraLegchayri/workshop/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const brevoEndpoint = "https://api.brevo.com/v3/smtp/email"

// BrevoNotifier sends booking confirmations through the Brevo
// transactional-email API. It is strictly best-effort: every failure is
// logged and swallowed so a committed booking is never affected.
type BrevoNotifier struct {
	apiKey      string
	senderName  string
	senderEmail string
	client      *http.Client
	logger      logger.Logger
}

func NewBrevoNotifier(apiKey, senderName, senderEmail string, log logger.Logger) *BrevoNotifier {
	if apiKey == "" {
		log.Warn("brevo api key is empty, email notifications disabled")
	}

	return &BrevoNotifier{
		apiKey:      apiKey,
		senderName:  senderName,
		senderEmail: senderEmail,
		client:      &http.Client{Timeout: 10 * time.Second},
		logger:      log,
	}
}

type brevoParty struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

type brevoMessage struct {
	Sender      brevoParty   `json:"sender"`
	To          []brevoParty `json:"to"`
	Subject     string       `json:"subject"`
	HTMLContent string       `json:"htmlContent"`
	TextContent string       `json:"textContent"`
}

func (n *BrevoNotifier) NotifyBookingCreated(ctx context.Context, booking *domain.Booking, workshop *domain.Workshop) {
	if n.apiKey == "" {
		n.logger.Debug("notification skipped (brevo disabled)",
			logger.String("booking_id", booking.ID),
		)
		return
	}
	if booking.Email == nil {
		n.logger.Debug("notification skipped (no email)",
			logger.String("booking_id", booking.ID),
		)
		return
	}
	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.String("booking_id", booking.ID),
		)
		return
	}

	msg := brevoMessage{
		Sender:      brevoParty{Name: n.senderName, Email: n.senderEmail},
		To:          []brevoParty{{Name: booking.Name, Email: *booking.Email}},
		Subject:     fmt.Sprintf("Booking Confirmation: %s", workshop.Title),
		HTMLContent: htmlBody(booking, workshop),
		TextContent: textBody(booking, workshop),
	}

	if err := n.send(ctx, msg); err != nil {
		n.logger.Error("failed to send confirmation email",
			logger.String("booking_id", booking.ID),
			logger.String("error", err.Error()),
		)
	}
}

func (n *BrevoNotifier) send(ctx context.Context, msg brevoMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, brevoEndpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("content-type", "application/json")
	req.Header.Set("api-key", n.apiKey)

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("brevo responded %d", resp.StatusCode)
	}

	return nil
}

func htmlBody(b *domain.Booking, w *domain.Workshop) string {
	return fmt.Sprintf(
		`<html><body>
<h1>Booking Confirmation</h1>
<p>Dear %s,</p>
<p>Thank you for booking a workshop with My_Space! Your booking has been received.</p>
<h2>Workshop Details</h2>
<ul>
<li><b>Workshop:</b> %s</li>
<li><b>Date:</b> %s</li>
<li><b>Time:</b> %s - %s</li>
<li><b>Price:</b> %.2f DH</li>
</ul>
<p>We look forward to seeing you at the workshop!</p>
<p>Best regards,<br>The My_Space Team</p>
</body></html>`,
		b.Name, w.Title, w.Date.Format("Monday, January 2, 2006"), w.StartTime, w.EndTime, w.Price,
	)
}

func textBody(b *domain.Booking, w *domain.Workshop) string {
	return fmt.Sprintf(
		`Booking Confirmation

Dear %s,

Thank you for booking a workshop with My_Space! Your booking has been received.

Workshop Details:
- Workshop: %s
- Date: %s
- Time: %s - %s
- Price: %.2f DH

We look forward to seeing you at the workshop!

Best regards,
The My_Space Team
`,
		b.Name, w.Title, w.Date.Format("Monday, January 2, 2006"), w.StartTime, w.EndTime, w.Price,
	)
}
