package notify

import (
	"bytes"
	"fmt"
	"html/template"

	"plotdesk/pkg/email"
)

// BookingConfirmation is the content of a token-payment confirmation mail.
type BookingConfirmation struct {
	CustomerName string
	Email        string
	Project      string
	PlotNumber   string
	AmountPaise  int64
	PaymentID    string
	OrderID      string
}

// LeadAcknowledgement is the content of an inquiry acknowledgement mail.
type LeadAcknowledgement struct {
	Name    string
	Email   string
	Project string
}

var bookingTmpl = template.Must(template.New("booking").Parse(`<html><body>
<p>Dear {{.Name}},</p>
<p>We have received your token payment of {{.Amount}} towards
{{if .PlotNumber}}plot {{.PlotNumber}} in {{end}}{{.Project}}.</p>
<p>Payment reference: {{.PaymentID}} (order {{.OrderID}}).</p>
<p>Our sales team will reach out with the allotment letter and next steps.</p>
<p>Warm regards,<br>Sales Desk</p>
</body></html>`))

var leadTmpl = template.Must(template.New("lead").Parse(`<html><body>
<p>Dear {{.Name}},</p>
<p>Thank you for your interest{{if .Project}} in {{.Project}}{{end}}. A site
visit coordinator will contact you within one working day.</p>
<p>Warm regards,<br>Sales Desk</p>
</body></html>`))

// BookingMessage renders the confirmation mail for a verified payment.
func BookingMessage(bc BookingConfirmation) (Message, error) {
	name := bc.CustomerName
	if name == "" {
		name = email.GreetingName(bc.Email)
	}
	data := struct {
		Name, Amount, Project, PlotNumber, PaymentID, OrderID string
	}{
		Name:       name,
		Amount:     fmt.Sprintf("₹%.2f", float64(bc.AmountPaise)/100),
		Project:    bc.Project,
		PlotNumber: bc.PlotNumber,
		PaymentID:  bc.PaymentID,
		OrderID:    bc.OrderID,
	}

	var buf bytes.Buffer
	if err := bookingTmpl.Execute(&buf, data); err != nil {
		return Message{}, fmt.Errorf("render booking mail: %w", err)
	}
	return Message{
		To:      bc.Email,
		Subject: "Token payment received - " + bc.Project,
		HTML:    buf.String(),
	}, nil
}

// LeadMessage renders the acknowledgement mail for a new inquiry.
func LeadMessage(la LeadAcknowledgement) (Message, error) {
	name := la.Name
	if name == "" {
		name = email.GreetingName(la.Email)
	}
	data := struct{ Name, Project string }{Name: name, Project: la.Project}

	var buf bytes.Buffer
	if err := leadTmpl.Execute(&buf, data); err != nil {
		return Message{}, fmt.Errorf("render lead mail: %w", err)
	}
	subject := "Thank you for your inquiry"
	if la.Project != "" {
		subject += " - " + la.Project
	}
	return Message{To: la.Email, Subject: subject, HTML: buf.String()}, nil
}
