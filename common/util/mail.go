package util

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/igniteworks/cert-ignite-api/common"
	"gopkg.in/gomail.v2"
)

func InitDialer() {
	dialer := gomail.NewDialer(*common.Config.MailHost, 587, *common.Config.MailUser, *common.Config.MailPass)
	common.Dialer = dialer
}

// Mailer delivers an issued certificate to its recipient.
type Mailer interface {
	SendCertificate(to string, name string, certificateURL string, pdf []byte) error
}

// GomailMailer sends certificate mails over the configured SMTP dialer.
type GomailMailer struct {
	dialer *gomail.Dialer
	from   string
}

var _ Mailer = (*GomailMailer)(nil)

func NewGomailMailer() *GomailMailer {
	return &GomailMailer{
		dialer: common.Dialer,
		from:   *common.Config.MailUser,
	}
}

// SendCertificate mails the rendered PDF as an attachment. gomail attaches
// from a file path, so the PDF bytes are staged in a temp file for the send.
func (m *GomailMailer) SendCertificate(to string, name string, certificateURL string, pdf []byte) error {
	tempFile, err := os.CreateTemp("", "certificate-*.pdf")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tempFile.Name())

	if _, err := tempFile.Write(pdf); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write certificate attachment: %w", err)
	}
	tempFile.Close()

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", m.from)
	mailer.SetHeader("To", to)
	mailer.SetHeader("Subject", "Your Certificate")
	mailer.SetBody("text/html", certificateMailBody(name, certificateURL))

	mailer.Attach(tempFile.Name(), gomail.Rename("Certificate.pdf"), gomail.SetHeader(map[string][]string{
		"Content-Type": {"application/pdf"},
	}))

	if err := m.dialer.DialAndSend(mailer); err != nil {
		slog.Error("Error Sending Mail", "error", err, "recipient", to)
		return err
	}

	slog.Info("Email sent successfully", "recipient", to)
	return nil
}

func certificateMailBody(name string, certificateURL string) string {
	return fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<style>
				body {
					font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
					line-height: 1.6;
					margin: 0;
					padding: 0;
					background: #e5e7eb;
				}
				.container {
					max-width: 600px;
					margin: 40px auto;
					background: #ffffff;
					border-radius: 16px;
					overflow: hidden;
				}
				.header {
					background: linear-gradient(135deg, #244dad 0%%, #1e3d8f 100%%);
					color: white;
					padding: 40px 32px;
					text-align: center;
				}
				.content {
					padding: 32px;
					color: #374151;
				}
				.button {
					display: inline-block;
					background: #244dad;
					color: white;
					padding: 12px 28px;
					border-radius: 100px;
					text-decoration: none;
					font-weight: 600;
				}
				.footer {
					padding: 24px 32px;
					text-align: center;
					font-size: 13px;
					color: #9ca3af;
					border-top: 1px solid #e5e7eb;
				}
			</style>
		</head>
		<body>
			<div class="container">
				<div class="header">
					<h1>Your Certificate Is Ready</h1>
				</div>
				<div class="content">
					<p>Dear %s,</p>
					<p>Congratulations! Your certificate has been issued and is attached to this email.</p>
					<p>You can also download it at any time:</p>
					<center>
						<a href="%s" class="button">Download Certificate</a>
					</center>
				</div>
				<div class="footer">
					<p><strong>Certificate Ignite</strong></p>
					<p>If you did not expect this email, please ignore it.</p>
				</div>
			</div>
		</body>
		</html>
	`, name, certificateURL)
}
