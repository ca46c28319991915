package utils

import (
	"fmt"

	"inventory-app/config"

	"gopkg.in/gomail.v2"
)

// SendMail mengirim notifikasi email. No-op when SMTP is not configured.
func SendMail(toEmails []string, subject string, body string) error {
	if config.SMTPHost == "" || config.SMTPSender == "" || len(toEmails) == 0 {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.SMTPSender)
	msg.SetHeader("To", toEmails...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPSender, config.SMTPPassword)
	if err := dialer.DialAndSend(msg); err != nil {
		fmt.Println("Failed to send email:", err)
		return err
	}

	return nil
}
