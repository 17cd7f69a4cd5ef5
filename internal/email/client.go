package email

import (
	"crypto/tls"
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/wneessen/go-mail"

	"github.com/okiroth/gallery_backend/internal/domain"
)

// Client sends notification emails over SMTP.
type Client struct {
	host      string
	port      int
	user      string
	password  string
	fromName  string
	fromEmail string
}

func NewClient(host, portStr, user, password, fromName, fromEmail string) (*Client, error) {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP port: %w", err)
	}

	return &Client{
		host:      host,
		port:      port,
		user:      user,
		password:  password,
		fromName:  fromName,
		fromEmail: fromEmail,
	}, nil
}

// SendEmail sends a single HTML email.
func (c *Client) SendEmail(to, subject, htmlBody string) error {
	m := mail.NewMsg()

	if err := m.From(fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail)); err != nil {
		return fmt.Errorf("setting sender: %w", err)
	}
	if err := m.To(to); err != nil {
		return fmt.Errorf("setting recipient: %w", err)
	}
	m.Subject(subject)
	m.SetBodyString(mail.TypeTextHTML, htmlBody)

	client, err := mail.NewClient(c.host,
		mail.WithPort(c.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(c.user),
		mail.WithPassword(c.password),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTLSConfig(&tls.Config{
			ServerName: c.host,
		}),
	)
	if err != nil {
		return fmt.Errorf("creating SMTP client (host=%s port=%d): %w", c.host, c.port, err)
	}

	if err := client.DialAndSend(m); err != nil {
		return fmt.Errorf("sending email (host=%s port=%d): %w", c.host, c.port, err)
	}

	return nil
}

// SendMessageNotification forwards a contact or report submission to the
// site inbox.
func (c *Client) SendMessageNotification(inbox string, msg domain.ContactMessage) error {
	var subject string
	if msg.Kind == domain.MessageKindReport {
		subject = fmt.Sprintf("Item report: %s", msg.ItemName)
	} else {
		subject = fmt.Sprintf("Contact form message from %s", msg.Name)
	}
	return c.SendEmail(inbox, subject, renderMessageHTML(msg))
}

func renderMessageHTML(msg domain.ContactMessage) string {
	var rows strings.Builder
	row := func(label, value string) {
		if value == "" {
			return
		}
		fmt.Fprintf(&rows, `
			<tr>
				<td style="padding: 8px 12px; border-bottom: 1px solid #e0e0e0;"><strong>%s</strong></td>
				<td style="padding: 8px 12px; border-bottom: 1px solid #e0e0e0;">%s</td>
			</tr>`, label, html.EscapeString(value))
	}

	row("From", msg.Name)
	row("Email", msg.Email)
	row("Item", msg.ItemName)
	row("Category", msg.Category)
	row("Affiliate URL", msg.AffiliateURL)
	row("Image URL", msg.ImageURL)
	row("Message", msg.Message)
	row("Received", msg.CreatedAt.Format("2006-01-02 15:04"))

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="margin: 0; padding: 20px; font-family: Arial, sans-serif; background-color: #f4f4f4;">
	<table width="600" cellpadding="0" cellspacing="0" style="background-color: #ffffff; border-radius: 8px; margin: 0 auto;">
		<tr>
			<td style="background-color: #667eea; padding: 20px; text-align: center;">
				<h2 style="color: #ffffff; margin: 0;">New %s submission</h2>
			</td>
		</tr>
		<tr>
			<td style="padding: 20px;">
				<table width="100%%" cellpadding="0" cellspacing="0">%s
				</table>
			</td>
		</tr>
		<tr>
			<td style="padding: 15px; text-align: center; color: #999; font-size: 12px; border-top: 1px solid #e0e0e0;">
				Automated notification, do not reply directly
			</td>
		</tr>
	</table>
</body>
</html>`, msg.Kind, rows.String())
}
