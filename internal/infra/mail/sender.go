package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"
)

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

// SendLeadWon avisa que um lead chegou em Fechado.
// O destinatário é o email do próprio usuário (userID é o email no
// provedor de auth externo).
func (s *EmailSender) SendLeadWon(userID, leadName string) error {
	data := LeadMailData{LeadName: leadName}
	return s.send(userID, fmt.Sprintf("🎉 Lead fechado: %s", leadName), leadWonTemplate, data)
}

// SendLeadStale cobra um lead parado há muito tempo no funil.
func (s *EmailSender) SendLeadStale(userID, leadName string) error {
	data := LeadMailData{LeadName: leadName}
	return s.send(userID, fmt.Sprintf("⏰ Lead parado: %s", leadName), leadStaleTemplate, data)
}

func (s *EmailSender) send(to, subject, tmpl string, data LeadMailData) error {
	t, err := template.New("mail").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("erro ao ler template de email: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("erro ao processar template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}
