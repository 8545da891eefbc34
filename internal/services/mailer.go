package services

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/wneessen/go-mail"

	"karthika_back_end/internal/models"
)

// Mailer sends the admin a heads-up when a lead-capture form comes in.
// Everything here is best effort: a dead SMTP server never fails a request.
type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
	adminTo  string
}

func NewMailer() *Mailer {
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if port == 0 {
		port = 587
	}
	return &Mailer{
		host:     os.Getenv("SMTP_HOST"),
		port:     port,
		username: os.Getenv("SMTP_USERNAME"),
		password: os.Getenv("SMTP_PASSWORD"),
		from:     os.Getenv("SMTP_FROM"),
		adminTo:  os.Getenv("ADMIN_EMAIL"),
	}
}

func (m *Mailer) configured() bool {
	return m.host != "" && m.adminTo != "" && m.from != ""
}

func (m *Mailer) send(subject, htmlBody string) {
	if !m.configured() {
		return
	}

	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		log.Println("⚠️ Mail from address invalid:", err)
		return
	}
	if err := msg.To(m.adminTo); err != nil {
		log.Println("⚠️ Mail admin address invalid:", err)
		return
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	client, err := mail.NewClient(m.host,
		mail.WithPort(m.port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(m.username),
		mail.WithPassword(m.password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		log.Println("⚠️ Mail client setup failed:", err)
		return
	}

	log.Println("📤 Sending lead notification to", m.adminTo)
	if err := client.DialAndSend(msg); err != nil {
		log.Println("⚠️ Lead notification failed:", err)
	}
}

// NotifyInstallationRequest emails the admin about a new installation lead.
func (m *Mailer) NotifyInstallationRequest(req models.InstallationRequest) {
	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">New installation request</h2>
		<table style="width: 100%%; border-collapse: collapse;">
			<tr><td style="padding: 6px; font-weight: bold;">Name</td><td style="padding: 6px;">%s</td></tr>
			<tr><td style="padding: 6px; font-weight: bold;">Phone</td><td style="padding: 6px;">%s</td></tr>
			<tr><td style="padding: 6px; font-weight: bold;">Email</td><td style="padding: 6px;">%s</td></tr>
			<tr><td style="padding: 6px; font-weight: bold;">PIN code</td><td style="padding: 6px;">%s</td></tr>
			<tr><td style="padding: 6px; font-weight: bold;">Cameras</td><td style="padding: 6px;">%d</td></tr>
			<tr><td style="padding: 6px; font-weight: bold;">Message</td><td style="padding: 6px;">%s</td></tr>
		</table>
	</div>
</body>
</html>`, req.Name, req.Phone, req.Email, req.Pincode, req.Cameras, req.Message)

	m.send("New installation request from "+req.Name, body)
}

// NotifyQuoteRequest emails the admin about a new quote lead.
func (m *Mailer) NotifyQuoteRequest(req models.QuoteRequest) {
	body := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">New quote request</h2>
		<table style="width: 100%%; border-collapse: collapse;">
			<tr><td style="padding: 6px; font-weight: bold;">Name</td><td style="padding: 6px;">%s</td></tr>
			<tr><td style="padding: 6px; font-weight: bold;">Email</td><td style="padding: 6px;">%s</td></tr>
			<tr><td style="padding: 6px; font-weight: bold;">Phone</td><td style="padding: 6px;">%s</td></tr>
			<tr><td style="padding: 6px; font-weight: bold;">City</td><td style="padding: 6px;">%s</td></tr>
			<tr><td style="padding: 6px; font-weight: bold;">Property type</td><td style="padding: 6px;">%s</td></tr>
			<tr><td style="padding: 6px; font-weight: bold;">Cameras</td><td style="padding: 6px;">%s</td></tr>
			<tr><td style="padding: 6px; font-weight: bold;">Requirements</td><td style="padding: 6px;">%s</td></tr>
		</table>
	</div>
</body>
</html>`, req.Name, req.Email, req.Phone, req.City, req.PropertyType, req.NumCameras, req.Requirements)

	m.send("New quote request from "+req.Name, body)
}
