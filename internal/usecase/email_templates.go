package usecase

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"appraisal_booking/internal/domain/entities"
	"appraisal_booking/internal/domain/pricing"
)

type emailView struct {
	BusinessName   string
	ClientName     string
	ClientEmail    string
	ClientPhone    string
	Message        string
	Address        string
	ReferralSource string

	Quote       *pricing.Quote
	County      *entities.CountyData
	HasSchedule bool
	Date        string
	Time        string
	HasInvite   bool
}

var emailFuncs = map[string]any{
	"money": func(v float64) string { return fmt.Sprintf("$%.2f", v) },
	"yesno": func(b bool) string {
		if b {
			return "Yes"
		}
		return "No"
	},
}

const serviceRequestHTML = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #1f2933;">
  <h2>Thank you, {{.ClientName}}!</h2>
  <p>We received your service request for <strong>{{.Address}}</strong>.</p>
  {{if .Quote}}
  <h3>Service breakdown</h3>
  <table cellpadding="6" style="border-collapse: collapse;">
    {{range .Quote.LineItems}}<tr><td>{{.Name}}</td><td align="right">{{money .Price}}</td></tr>
    {{end}}<tr><td>Subtotal</td><td align="right">{{money .Quote.Subtotal}}</td></tr>
    {{if .Quote.DiscountApplied}}<tr><td>Discount ({{.Quote.DiscountCode}})</td><td align="right">-{{money .Quote.DiscountAmount}}</td></tr>
    {{end}}<tr><td><strong>Total</strong></td><td align="right"><strong>{{money .Quote.Total}}</strong></td></tr>
  </table>
  {{end}}
  {{if .County}}
  <h3>Property summary</h3>
  <ul>
    {{if .County.OwnerName}}<li>Owner: {{.County.OwnerName}}</li>{{end}}
    {{if .County.LastSalePrice}}<li>Last sale: {{money .County.LastSalePrice}}{{if .County.LastSaleDate}} on {{.County.LastSaleDate}}{{end}}</li>{{end}}
    {{if .County.YearBuilt}}<li>Year built: {{.County.YearBuilt}}</li>{{end}}
    {{if .County.SquareFootage}}<li>Living area: {{.County.SquareFootage}} sq ft</li>{{end}}
    {{if or .County.Block .County.Lot}}<li>Block / Lot / Qualifier: {{.County.Block}} / {{.County.Lot}} / {{.County.Qualifier}}</li>{{end}}
    {{if .County.Acreage}}<li>Acreage: {{printf "%.2f" .County.Acreage}}</li>{{end}}
    <li>Absentee owner: {{yesno .County.IsAbsenteeOwner}}</li>
    <li>Corporate owned: {{yesno .County.IsCorporateOwned}}</li>
  </ul>
  {{end}}
  {{if .HasSchedule}}
  <h3>Appointment</h3>
  <p>{{.Date}} at {{.Time}}{{if .HasInvite}}. A calendar invite is attached.{{end}}</p>
  {{end}}
  {{if .Message}}<h3>Your message</h3><p>{{.Message}}</p>{{end}}
  <p>Contact: {{.ClientEmail}}{{if .ClientPhone}} / {{.ClientPhone}}{{end}}</p>
  {{if .ReferralSource}}<p>Referral: {{.ReferralSource}}</p>{{end}}
  <p>{{.BusinessName}}</p>
</body>
</html>`

const serviceRequestText = `Thank you, {{.ClientName}}!

We received your service request for {{.Address}}.
{{if .Quote}}
Service breakdown:
{{range .Quote.LineItems}}  - {{.Name}}: {{money .Price}}
{{end}}  Subtotal: {{money .Quote.Subtotal}}
{{if .Quote.DiscountApplied}}  Discount ({{.Quote.DiscountCode}}): -{{money .Quote.DiscountAmount}}
{{end}}  Total: {{money .Quote.Total}}
{{end}}{{if .County}}
Property summary:
{{if .County.OwnerName}}  Owner: {{.County.OwnerName}}
{{end}}{{if .County.LastSalePrice}}  Last sale: {{money .County.LastSalePrice}}{{if .County.LastSaleDate}} on {{.County.LastSaleDate}}{{end}}
{{end}}{{if .County.YearBuilt}}  Year built: {{.County.YearBuilt}}
{{end}}{{if or .County.Block .County.Lot}}  Block / Lot / Qualifier: {{.County.Block}} / {{.County.Lot}} / {{.County.Qualifier}}
{{end}}{{if .County.Acreage}}  Acreage: {{printf "%.2f" .County.Acreage}}
{{end}}  Absentee owner: {{yesno .County.IsAbsenteeOwner}}
  Corporate owned: {{yesno .County.IsCorporateOwned}}
{{end}}{{if .HasSchedule}}
Appointment: {{.Date}} at {{.Time}}
{{end}}{{if .Message}}
Your message:
{{.Message}}
{{end}}
Contact: {{.ClientEmail}}{{if .ClientPhone}} / {{.ClientPhone}}{{end}}
{{.BusinessName}}
`

const contactStaffHTML = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif;">
  <h2>New contact form submission</h2>
  <p><strong>Name:</strong> {{.ClientName}}</p>
  <p><strong>Email:</strong> {{.ClientEmail}}</p>
  {{if .ClientPhone}}<p><strong>Phone:</strong> {{.ClientPhone}}</p>{{end}}
  <p><strong>Message:</strong></p>
  <p>{{.Message}}</p>
</body>
</html>`

const contactStaffText = `New contact form submission

Name: {{.ClientName}}
Email: {{.ClientEmail}}
{{if .ClientPhone}}Phone: {{.ClientPhone}}
{{end}}
Message:
{{.Message}}
`

const contactAckHTML = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif;">
  <h2>Thanks for reaching out, {{.ClientName}}!</h2>
  <p>We received your message and will get back to you shortly.</p>
  <p>{{.BusinessName}}</p>
</body>
</html>`

const contactAckText = `Thanks for reaching out, {{.ClientName}}!

We received your message and will get back to you shortly.

{{.BusinessName}}
`

type emailTemplate struct {
	html *htmltemplate.Template
	text *texttemplate.Template
}

func mustEmailTemplate(name, html, text string) emailTemplate {
	return emailTemplate{
		html: htmltemplate.Must(htmltemplate.New(name).Funcs(htmltemplate.FuncMap(emailFuncs)).Parse(html)),
		text: texttemplate.Must(texttemplate.New(name).Funcs(texttemplate.FuncMap(emailFuncs)).Parse(text)),
	}
}

var (
	serviceRequestTemplate = mustEmailTemplate("service_request", serviceRequestHTML, serviceRequestText)
	contactStaffTemplate   = mustEmailTemplate("contact_staff", contactStaffHTML, contactStaffText)
	contactAckTemplate     = mustEmailTemplate("contact_ack", contactAckHTML, contactAckText)
)

func (t emailTemplate) render(v emailView) (html string, text string, err error) {
	var hb, tb bytes.Buffer
	if err := t.html.Execute(&hb, v); err != nil {
		return "", "", fmt.Errorf("render html: %w", err)
	}
	if err := t.text.Execute(&tb, v); err != nil {
		return "", "", fmt.Errorf("render text: %w", err)
	}
	return hb.String(), tb.String(), nil
}
