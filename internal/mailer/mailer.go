package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Mailer dispatches donation receipts. Sends are best-effort: verification
// has already committed by the time a receipt goes out, so failures are
// logged by the caller and never propagated.
type Mailer interface {
	SendReceipt(ctx context.Context, to, donorName string, amount int64) error
}

// SMTPMailer sends receipts through a plain SMTP relay.
type SMTPMailer struct {
	addr      string
	auth      smtp.Auth
	from      string
	clientURL string
}

// NewSMTPMailer returns nil when no host is configured, disabling receipts.
func NewSMTPMailer(host, port, username, password, from, clientURL string) *SMTPMailer {
	if strings.TrimSpace(host) == "" {
		return nil
	}
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}
	return &SMTPMailer{
		addr:      host + ":" + port,
		auth:      auth,
		from:      from,
		clientURL: clientURL,
	}
}

// inr formats whole-rupee amounts with Indian digit grouping (1,50,000).
var inr = message.NewPrinter(language.MustParse("en-IN"))

func FormatAmount(amount int64) string {
	return inr.Sprintf("₹%d", amount)
}

func (m *SMTPMailer) SendReceipt(ctx context.Context, to, donorName string, amount int64) error {
	if m == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	b.WriteString("Subject: Donation Received! - GiveHope\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	fmt.Fprintf(&b, receiptHTML, donorName, FormatAmount(amount), m.clientURL)

	return smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(b.String()))
}

const receiptHTML = `<div style="font-family:sans-serif;max-width:600px;margin:auto">
  <h1>Donation Receipt</h1>
  <h2>Hello %s,</h2>
  <p>Thank you for your support! We have successfully received your donation.</p>
  <p style="font-size:28px;font-weight:bold">%s</p>
  <p>You can download your tax-exempt certificate from your dashboard.</p>
  <p><a href="%s/dashboard">Visit Dashboard</a></p>
</div>
`

var _ Mailer = (*SMTPMailer)(nil)
