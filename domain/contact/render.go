package contact

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	texttemplate "text/template"
)

const subjectPrefix = "New Contact Form Submission from "

const htmlBody = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #0f172a; border-bottom: 2px solid #0ea5e9; padding-bottom: 10px;">New Contact Inquiry</h2>
  <div style="background: #f8fafc; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
    <p><strong>Phone:</strong> <a href="tel:{{.Phone}}">{{.Phone}}</a></p>
  </div>
  <div style="background: #ffffff; padding: 20px; border-left: 4px solid #0ea5e9; margin: 20px 0;">
    <h3 style="color: #0f172a; margin-top: 0;">Message:</h3>
    <p style="line-height: 1.6; color: #334155;">{{.MessageHTML}}</p>
  </div>
  <p style="color: #64748b; font-size: 12px; margin-top: 30px;">Sent from Fahicart Website Contact Form</p>
</div>`

const textBody = `New Contact Inquiry

Name: {{.Name}}
Email: {{.Email}}
Phone: {{.Phone}}

Message:
{{.Message}}

Sent from Fahicart Website Contact Form
`

var (
	htmlTemplate = template.Must(template.New("inquiry.html").Parse(htmlBody))
	textTemplate = texttemplate.Must(texttemplate.New("inquiry.txt").Parse(textBody))
)

type inquiryView struct {
	Name        string
	Email       string
	Phone       string
	Message     string
	MessageHTML template.HTML
}

// RenderedInquiry is the email form of a submission.
type RenderedInquiry struct {
	Subject string
	HTML    string
	Text    string
}

// RenderInquiry produces the subject and both bodies. Every value is escaped
// in the HTML body; message newlines become <br> there and stay raw in text.
func RenderInquiry(req *SubmitInquiryRequest) (*RenderedInquiry, error) {
	view := inquiryView{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Message:     req.Message,
		MessageHTML: messageToHTML(req.Message),
	}

	var htmlBuf, textBuf bytes.Buffer
	if err := htmlTemplate.Execute(&htmlBuf, view); err != nil {
		return nil, fmt.Errorf("render html body: %w", err)
	}
	if err := textTemplate.Execute(&textBuf, view); err != nil {
		return nil, fmt.Errorf("render text body: %w", err)
	}

	return &RenderedInquiry{
		Subject: subjectPrefix + req.Name,
		HTML:    htmlBuf.String(),
		Text:    textBuf.String(),
	}, nil
}

func messageToHTML(message string) template.HTML {
	// Lines are escaped before joining, so the result is safe markup.
	lines := strings.Split(message, "\n")
	for i, line := range lines {
		lines[i] = template.HTMLEscapeString(line)
	}
	return template.HTML(strings.Join(lines, "<br>"))
}
