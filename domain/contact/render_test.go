package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderInquiry(t *testing.T) {
	req := &SubmitInquiryRequest{
		Name:    "<b>Eve</b>",
		Email:   "eve@example.com",
		Phone:   "7771234567",
		Message: "first line\nsecond <script>alert(1)</script>",
	}

	rendered, err := RenderInquiry(req)
	require.NoError(t, err)

	assert.Equal(t, "New Contact Form Submission from <b>Eve</b>", rendered.Subject)

	assert.Contains(t, rendered.HTML, "&lt;b&gt;Eve&lt;/b&gt;")
	assert.NotContains(t, rendered.HTML, "<b>Eve</b>")
	assert.NotContains(t, rendered.HTML, "<script>")
	assert.Contains(t, rendered.HTML, "first line<br>second &lt;script&gt;")
	assert.Contains(t, rendered.HTML, `href="mailto:eve@example.com"`)
	assert.Contains(t, rendered.HTML, `href="tel:7771234567"`)
	assert.Contains(t, rendered.HTML, "Sent from Fahicart Website Contact Form")

	assert.Contains(t, rendered.Text, "Name: <b>Eve</b>")
	assert.Contains(t, rendered.Text, "first line\nsecond <script>alert(1)</script>")
	assert.NotContains(t, rendered.Text, "<br>")
}
