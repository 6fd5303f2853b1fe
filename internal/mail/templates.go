package mail

import (
	"bytes"
	"fmt"
	"html/template"
)

// Template names a body layout.
type Template string

const (
	TemplateContact           Template = "contact"
	TemplateApplicationStatus Template = "application_status"
	TemplatePaymentReceipt    Template = "payment_receipt"
	TemplateNewOrder          Template = "new_order"
)

var templates = template.Must(template.New("mail").Parse(`
{{define "contact"}}<h2>New contact message</h2>
<p><strong>From:</strong> {{.Name}} &lt;{{.Email}}&gt;</p>
{{if .Phone}}<p><strong>Phone:</strong> {{.Phone}}</p>{{end}}
{{if .Subject}}<p><strong>Subject:</strong> {{.Subject}}</p>{{end}}
<p>{{.Message}}</p>{{end}}
{{define "application_status"}}<p>Hi {{.Name}},</p>
<p>Your application for <strong>{{.Position}}</strong> is now <strong>{{.Status}}</strong>.</p>{{end}}
{{define "payment_receipt"}}<p>Hi {{.Name}},</p>
<p>We received your payment (reference {{.Reference}}) for order {{.OrderID}}. Thank you!</p>{{end}}
{{define "new_order"}}<p>New order {{.OrderID}} from {{.Name}} &lt;{{.Email}}&gt;, total {{.Total}}.</p>{{end}}
`))

// Render executes the named template with data.
func Render(name Template, data any) (string, error) {
	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, string(name), data); err != nil {
		return "", fmt.Errorf("render email template %s: %w", name, err)
	}
	return body.String(), nil
}
