package notifications

import (
	htmltemplate "html/template"
	"strings"
	"text/template"
	"time"

	"storefront/internal/core/ports"
)

var textTemplates = template.Must(template.New("notifications").Parse(`
{{define "registration"}}Your verification code is: {{.Code}}

It expires at {{.ExpiresAt.Format "15:04 MST on Jan 2"}}.{{end}}

{{define "code"}}Hi {{.Name}},

{{if .Reissued}}The delivery agent is at your location.{{else}}Good news! Your order #{{.OrderID}} is out for delivery.{{end}}

YOUR SECURE DELIVERY CODE: {{.Code}}

Please share this code with the delivery agent to receive your package.{{end}}

{{define "failed"}}Hi {{.Name}},

We attempted to deliver your order #{{.OrderID}} but failed. Our delivery agent will try again soon.{{end}}

{{define "shipped"}}Hi {{.Name}},

Your rental item '{{.Item}}' has been shipped! It should arrive soon.{{end}}

{{define "overdue"}}URGENT: Hi {{.Name}},

Your rental for '{{.Item}}' is now OVERDUE. Please return it immediately to avoid further late fees.{{end}}

{{define "invoice"}}Hi {{.Name}},

Thank you for shopping with us. Your order #{{.OrderID}} was delivered{{if not .DeliveredAt.IsZero}} on {{.DeliveredAt.Format "Jan 2, 2006"}}{{end}}.
{{range .Lines}}
- {{.Kind}}: {{.Product}}{{if .Variant}} ({{.Variant}}){{end}}{{if .Period}}, {{.Period}}{{end}} x{{.Quantity}}  {{.Total}}{{end}}

Total: {{.Total}}
Shipped to: {{.Address}}{{end}}
`))

var invoiceHTML = htmltemplate.Must(htmltemplate.New("invoice").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #222;">
  <h2>Receipt for order #{{.OrderID}}</h2>
  <p>Hi {{.Name}}, thank you for shopping with us.</p>
  <p>Placed {{.PlacedAt.Format "Jan 2, 2006"}}{{if not .DeliveredAt.IsZero}}, delivered {{.DeliveredAt.Format "Jan 2, 2006"}}{{end}}</p>
  <table cellpadding="6" style="border-collapse: collapse; width: 100%;">
    <tr style="background: #f4f4f4;"><th align="left">Item</th><th align="left">Type</th><th align="left">Period</th><th align="right">Qty</th><th align="right">Amount</th></tr>
    {{range .Lines}}<tr>
      <td>{{.Product}}{{if .Variant}} ({{.Variant}}){{end}}</td>
      <td>{{.Kind}}</td>
      <td>{{.Period}}</td>
      <td align="right">{{.Quantity}}</td>
      <td align="right">{{.Total}}</td>
    </tr>
    {{end}}<tr><td colspan="4" align="right"><strong>Total</strong></td><td align="right"><strong>{{.Total}}</strong></td></tr>
  </table>
  <p>Shipped to: {{.Address}}</p>
</body>
</html>
`))

type registrationData struct {
	Code      string
	ExpiresAt time.Time
}

type codeData struct {
	ports.Recipient
	Code     string
	Reissued bool
}

type rentalData struct {
	ports.Recipient
	Item string
}

func renderText(name string, data any) (string, error) {
	var b strings.Builder
	if err := textTemplates.ExecuteTemplate(&b, name, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

func renderInvoiceHTML(invoice ports.Invoice) (string, error) {
	var b strings.Builder
	if err := invoiceHTML.Execute(&b, invoice); err != nil {
		return "", err
	}
	return b.String(), nil
}
