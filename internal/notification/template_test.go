package notification_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouthful-foods/vendor-mailer/internal/notification"
)

var testVendor = notification.Vendor{
	Name:         "Ana",
	Email:        "ana@x.com",
	BusinessName: "Ana's Kitchen",
}

func TestRenderApproval(t *testing.T) {
	email, err := notification.RenderApproval(testVendor)
	require.NoError(t, err)

	assert.Equal(t, notification.SubjectApproved, email.Subject)
	assert.Contains(t, email.HTML, "Ana")
	assert.Contains(t, email.HTML, "ACTIVE")
	assert.Contains(t, email.HTML, notification.DashboardURL)
	assert.Contains(t, email.HTML, "Manage your products")
	// The apostrophe in the business name is escaped, not dropped.
	assert.Contains(t, email.HTML, "Ana&#39;s Kitchen")
}

func TestRenderApproval_Deterministic(t *testing.T) {
	a, err := notification.RenderApproval(testVendor)
	require.NoError(t, err)
	b, err := notification.RenderApproval(testVendor)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRenderSuspension_Active(t *testing.T) {
	email, err := notification.RenderSuspension(testVendor, "policy violation", true)
	require.NoError(t, err)

	assert.Equal(t, notification.SubjectSuspended, email.Subject)
	assert.Contains(t, email.Subject, "Suspended")
	assert.Contains(t, email.HTML, "policy violation")
	assert.Contains(t, email.HTML, "Account Suspended")
	assert.Contains(t, email.HTML, notification.SupportEmail)
}

func TestRenderSuspension_Rejected(t *testing.T) {
	email, err := notification.RenderSuspension(testVendor, "incomplete documents", false)
	require.NoError(t, err)

	assert.Equal(t, notification.SubjectRejected, email.Subject)
	assert.Contains(t, email.Subject, "Rejected")
	assert.Contains(t, email.HTML, "incomplete documents")
	assert.Contains(t, email.HTML, "Application Rejected")
	assert.Contains(t, email.HTML, "re-register")
}

func TestRender_EscapesCallerInput(t *testing.T) {
	v := notification.Vendor{
		Name:         `<script>alert(1)</script>`,
		Email:        "x@x.com",
		BusinessName: `<b>bold</b>`,
	}

	email, err := notification.RenderSuspension(v, `<img src=x onerror=alert(1)>`, true)
	require.NoError(t, err)

	assert.NotContains(t, email.HTML, "<script>")
	assert.NotContains(t, email.HTML, "<img src=x")
	assert.Contains(t, email.HTML, "&lt;script&gt;")

	approval, err := notification.RenderApproval(v)
	require.NoError(t, err)
	assert.NotContains(t, approval.HTML, "<b>bold</b>")
}
