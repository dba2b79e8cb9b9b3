package notification

import (
	"bytes"
	"fmt"
	"html/template"
)

// senderDisplayName is the From display name on every outgoing notice.
const senderDisplayName = "Mouthful Foods"

// DashboardURL is the vendor dashboard linked from approval notices.
const DashboardURL = "https://dashboard.mouthfulfoods.com/"

// SupportEmail is the contact address included in suspension notices.
const SupportEmail = "support@mouthfulfoods.com"

// Subjects for the three notice kinds.
const (
	SubjectApproved  = "Your Vendor Account is Approved 🎉"
	SubjectSuspended = "Account Suspended - Mouthful Foods"
	SubjectRejected  = "Application Rejected - Mouthful Foods"
)

// Vendor identifies the merchant a notice is addressed to.
type Vendor struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	BusinessName string `json:"businessName"`
}

// Email is a rendered subject and HTML body, ready for the Sender.
type Email struct {
	Subject string
	HTML    string
}

// All caller-supplied fields ({{.Name}}, {{.BusinessName}}, {{.Reason}}) are
// HTML-escaped on interpolation by html/template.
var approvalTmpl = template.Must(template.New("approval").Parse(`
      <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
        <h2 style="color: #4CAF50;">Hello {{.Name}}! 🎉</h2>
        <p style="font-size: 16px;">
          Congratulations! Your vendor account for <strong>{{.BusinessName}}</strong> has been approved.
        </p>
        <p style="font-size: 16px;">
          Your account is now <strong style="color: #4CAF50;">ACTIVE</strong>.
        </p>
        <div style="margin: 30px 0; text-align: center;">
          <a href="{{.DashboardURL}}"
             style="background-color: #4CAF50; color: white; padding: 12px 30px; text-decoration: none; border-radius: 5px; display: inline-block; font-weight: bold;">
            Access Dashboard
          </a>
        </div>
        <p style="font-size: 14px;">You can now:</p>
        <ul style="font-size: 14px;">
          <li>Manage your products</li>
          <li>View orders</li>
          <li>Track payments</li>
          <li>Update business information</li>
        </ul>
        <p style="font-size: 14px; color: #666; margin-top: 30px;">
          Best regards,<br>
          <strong>Mouthful Foods Admin Team</strong>
        </p>
      </div>
`))

var suspensionTmpl = template.Must(template.New("suspension").Parse(`
        <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
          <h2 style="color: #f44336;">Account Suspended</h2>
          <p>Hello {{.Name}},</p>
          <p>Your vendor account for <strong>{{.BusinessName}}</strong> has been suspended.</p>
          <div style="background-color: #ffebee; border-left: 4px solid #f44336; padding: 15px; margin: 20px 0;">
            <strong>Reason:</strong> {{.Reason}}
          </div>
          <p>Please contact us for more details or to resolve this issue.</p>
          <div style="margin: 20px 0;">
            <p><strong>Contact Support:</strong></p>
            <p>📧 Email: <a href="mailto:{{.SupportEmail}}">{{.SupportEmail}}</a></p>
            <p>📱 Or contact us through the Mouthful Foods app</p>
          </div>
          <p style="font-size: 14px; color: #666; margin-top: 30px;">
            Best regards,<br>
            <strong>Mouthful Foods Admin Team</strong>
          </p>
        </div>
`))

var rejectionTmpl = template.Must(template.New("rejection").Parse(`
        <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
          <h2 style="color: #f44336;">Application Rejected</h2>
          <p>Hello {{.Name}},</p>
          <p>Your vendor application for <strong>{{.BusinessName}}</strong> has been rejected.</p>
          <div style="background-color: #fff3cd; border-left: 4px solid #ffc107; padding: 15px; margin: 20px 0;">
            <strong>Reason:</strong> {{.Reason}}
          </div>
          <p>You are welcome to re-register with complete information through the Mouthful Foods mobile app.</p>
          <p style="font-size: 14px; color: #666; margin-top: 30px;">
            Best regards,<br>
            <strong>Mouthful Foods Admin Team</strong>
          </p>
        </div>
`))

// RenderApproval builds the account-approved notice for a vendor.
func RenderApproval(v Vendor) (Email, error) {
	data := struct {
		Vendor
		DashboardURL string
	}{v, DashboardURL}

	var buf bytes.Buffer
	if err := approvalTmpl.Execute(&buf, data); err != nil {
		return Email{}, fmt.Errorf("rendering approval template: %w", err)
	}
	return Email{Subject: SubjectApproved, HTML: buf.String()}, nil
}

// RenderSuspension builds the suspension or rejection notice. active selects
// the suspension phrasing; a pending application gets the rejection phrasing.
func RenderSuspension(v Vendor, reason string, active bool) (Email, error) {
	tmpl, subject := suspensionTmpl, SubjectSuspended
	if !active {
		tmpl, subject = rejectionTmpl, SubjectRejected
	}

	data := struct {
		Vendor
		Reason       string
		SupportEmail string
	}{v, reason, SupportEmail}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return Email{}, fmt.Errorf("rendering %s template: %w", tmpl.Name(), err)
	}
	return Email{Subject: subject, HTML: buf.String()}, nil
}
