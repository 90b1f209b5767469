package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
)

type EmailConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

func GetEmailConfig() *EmailConfig {
	return &EmailConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     os.Getenv("SMTP_PORT"),
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
	}
}

func SendEmail(to, subject, htmlBody string) error {
	config := GetEmailConfig()
	if config.Host == "" || config.Port == "" || config.From == "" {
		return fmt.Errorf("SMTP not configured")
	}

	headers := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n",
		config.From, to, subject)
	msg := []byte(headers + htmlBody)

	var auth smtp.Auth
	if config.Username != "" && config.Password != "" {
		auth = smtp.PlainAuth("", config.Username, config.Password, config.Host)
	}

	addr := config.Host + ":" + config.Port
	return smtp.SendMail(addr, auth, config.From, []string{to}, msg)
}

// SendSubscriberWelcome greets a new newsletter subscriber. Fire-and-forget:
// a mail failure never blocks the signup response.
func SendSubscriberWelcome(email, name string) {
	greeting := "there"
	if name != "" {
		greeting = strings.Split(name, " ")[0]
	}
	go func() {
		subject := "Welcome to Eugene Eats!"
		body := fmt.Sprintf(`<h2>Hi %s, welcome to Eugene Eats!</h2>
<p>Thanks for subscribing. Every week you'll get:</p>
<ul>
<li>New restaurant openings around Eugene</li>
<li>Our latest food guides and blog posts</li>
<li>Seasonal picks from local spots we love</li>
</ul>
<p>Hungry yet?</p>
<p>The Eugene Eats Team</p>`, greeting)
		if err := SendEmail(email, subject, body); err != nil {
			log.Printf("Failed to send welcome email to %s: %v", email, err)
		}
	}()
}
