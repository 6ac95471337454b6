package service

import (
	"bytes"
	"text/template"
	"time"

	"github.com/techq/techq-be/internal/model"
)

// Templates receive already sanitized fields. text/template is used so the
// entities produced by the sanitizer are not escaped a second time.
var (
	businessEmailTmpl = template.Must(template.New("business").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333; border-bottom: 2px solid #0066cc; padding-bottom: 10px;">New Contact Form Submission</h2>
  <div style="background: #f9f9f9; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="color: #0066cc; margin-top: 0;">Contact Information</h3>
    <p><strong>Name:</strong> {{.FirstName}} {{.LastName}}</p>
    <p><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
    <p><strong>Phone:</strong> <a href="tel:{{.Phone}}">{{.Phone}}</a></p>
    <p><strong>Company:</strong> {{.Company}}</p>
    <p><strong>Service Interest:</strong> {{.Service}}</p>
  </div>
  <div style="background: #fff; padding: 20px; border: 1px solid #ddd; border-radius: 8px;">
    <h3 style="color: #0066cc; margin-top: 0;">Message</h3>
    <p style="line-height: 1.6; white-space: pre-wrap;">{{.Message}}</p>
  </div>
  <div style="margin-top: 20px; padding: 15px; background: #e7f3ff; border-radius: 8px;">
    <p style="margin: 0; font-size: 14px; color: #666;">This email was sent from the Tech Q contact form on {{.SentDate}} at {{.SentTime}}.</p>
  </div>
</div>
`))

	customerEmailTmpl = template.Must(template.New("customer").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #0066cc; border-bottom: 2px solid #0066cc; padding-bottom: 10px;">Thank You for Contacting Tech Q!</h2>
  <p style="font-size: 16px; line-height: 1.6;">Hi {{.FirstName}},</p>
  <p style="font-size: 16px; line-height: 1.6;">Thank you for reaching out to Tech Q! We have received your message and our team will review it shortly.</p>
  <div style="background: #f9f9f9; padding: 20px; border-radius: 8px; margin: 20px 0;">
    <h3 style="color: #0066cc; margin-top: 0;">What happens next?</h3>
    <ul style="line-height: 1.8;">
      <li>Our team will review your inquiry within 24 hours</li>
      <li>We'll contact you via email or phone to discuss your {{.Service}} needs</li>
      <li>We'll provide you with a customized solution proposal</li>
    </ul>
  </div>
  <div style="background: #e7f3ff; padding: 15px; border-radius: 8px; margin: 20px 0;">
    <p style="margin: 0; font-weight: bold; color: #0066cc;">Your Message Summary:</p>
    <p style="margin: 10px 0 0 0; font-style: italic;">"{{.Summary}}"</p>
  </div>
  <p style="font-size: 16px; line-height: 1.6;">If you have any urgent questions, feel free to contact us directly at:</p>
  <div style="background: #fff; padding: 15px; border: 1px solid #ddd; border-radius: 8px;">
    <p style="margin: 5px 0;"><strong>Email:</strong> {{.BusinessInbox}}</p>
    <p style="margin: 5px 0;"><strong>Phone:</strong> {{.BusinessPhone}}</p>
  </div>
  <p style="font-size: 16px; line-height: 1.6; margin-top: 20px;">Best regards,<br><strong>The Tech Q Team</strong></p>
</div>
`))
)

type businessEmailData struct {
	model.ContactSubmission
	SentDate string
	SentTime string
}

type customerEmailData struct {
	model.ContactSubmission
	Summary       string
	BusinessInbox string
	BusinessPhone string
}

func renderBusinessEmail(s model.ContactSubmission, sentAt time.Time) (string, error) {
	var buf bytes.Buffer
	err := businessEmailTmpl.Execute(&buf, businessEmailData{
		ContactSubmission: s,
		SentDate:          sentAt.Format("2006-01-02"),
		SentTime:          sentAt.Format("15:04:05 MST"),
	})
	return buf.String(), err
}

func renderCustomerEmail(s model.ContactSubmission, summary, inbox, phone string) (string, error) {
	var buf bytes.Buffer
	err := customerEmailTmpl.Execute(&buf, customerEmailData{
		ContactSubmission: s,
		Summary:           summary,
		BusinessInbox:     inbox,
		BusinessPhone:     phone,
	})
	return buf.String(), err
}
