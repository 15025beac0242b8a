package notifications

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"net/smtp"
	"time"

	"github.com/dheerendra45/news-analyzer/domain"
)

// SMTPServiceImpl implements domain.NotificationService over SMTP. When no
// host is configured it runs in an explicit mock mode: the dispatch is logged
// and reported as success. That mode is for non-production use only and is
// never silent.
type SMTPServiceImpl struct {
	host      string
	port      int
	username  string
	password  string
	fromEmail string
	fromName  string
}

// NewSMTPService creates a new SMTP notification service.
func NewSMTPService(host string, port int, username, password, fromEmail, fromName string) domain.NotificationService {
	return &SMTPServiceImpl{
		host:      host,
		port:      port,
		username:  username,
		password:  password,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

var otpEmailTmpl = template.Must(template.New("otp").Parse(`<!DOCTYPE html>
<html>
<body style="margin:0;padding:40px 20px;background:#f4f5f3;font-family:-apple-system,sans-serif;">
  <div style="max-width:480px;margin:0 auto;background:#ffffff;border:1px solid #e8e8e8;">
    <div style="background:#0f0f0f;padding:32px;text-align:center;">
      <span style="font-size:24px;color:#ffffff;">Replace<span style="color:#c41e3a;">able</span>.ai</span>
    </div>
    <div style="padding:40px 32px;text-align:center;">
      <h1 style="font-size:24px;color:#0f0f0f;">Admin Login Verification</h1>
      <p style="font-size:16px;color:#6f6f6f;line-height:1.6;">
        Hello {{.Username}},<br><br>
        You're attempting to log in to the Admin Dashboard.
        Use the verification code below to complete your login.
      </p>
      <div style="background:#f4f5f3;border:2px dashed #c41e3a;padding:24px;margin:24px 0;">
        <span style="font-family:monospace;font-size:36px;font-weight:700;color:#c41e3a;letter-spacing:8px;">{{.Code}}</span>
      </div>
      <p style="font-size:14px;color:#8b8b8b;">This code expires in <strong>{{.Minutes}} minutes</strong></p>
      <p style="font-size:14px;color:#856404;">If you didn't request this code, ignore this email. Do not share it with anyone.</p>
    </div>
  </div>
</body>
</html>`))

// SendOTPEmail implements domain.NotificationService.
func (s *SMTPServiceImpl) SendOTPEmail(to, username, code string, validity time.Duration) error {
	subject := fmt.Sprintf("Your Login Code: %s - Replaceable.ai", code)

	if s.host == "" {
		log.Printf("MOCK_EMAIL_DISPATCH: to=%s subject=%q (smtp not configured, code not actually delivered)", to, subject)
		return nil
	}

	var body bytes.Buffer
	err := otpEmailTmpl.Execute(&body, struct {
		Username string
		Code     string
		Minutes  int
	}{username, code, int(validity.Minutes())})
	if err != nil {
		return fmt.Errorf("failed to render otp email: %w", err)
	}

	msg := bytes.Buffer{}
	fmt.Fprintf(&msg, "From: %s <%s>\r\n", s.fromName, s.fromEmail)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"utf-8\"\r\n")
	msg.WriteString("\r\n")
	msg.Write(body.Bytes())

	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{to}, msg.Bytes()); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

var _ domain.NotificationService = (*SMTPServiceImpl)(nil)
