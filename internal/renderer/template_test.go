package renderer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCertificateTemplate_Render(t *testing.T) {
	tmpl, err := NewCertificateTemplate()
	require.NoError(t, err)

	data := TemplateData{
		Name: "Ana Silva",
		ID:   "abc123",
		Date: "01/01/2024",
	}

	html, err := tmpl.Render(data)
	require.NoError(t, err)

	assert.Contains(t, html, "Ana Silva")
	assert.Contains(t, html, "abc123")
	assert.Contains(t, html, "01/01/2024")
	assert.Contains(t, html, "data:image/png;base64,", "medal image should be inlined")
	assert.NotContains(t, html, "{{", "no unexpanded placeholders may remain")
}

func TestCertificateTemplate_RenderDeterministic(t *testing.T) {
	tmpl, err := NewCertificateTemplate()
	require.NoError(t, err)

	data := TemplateData{
		Name:      "Ana Silva",
		ID:        "abc123",
		Date:      "01/01/2024",
		VerifyURL: "https://verify.example.com/api/certificate/validate/abc123",
	}

	first, err := tmpl.Render(data)
	require.NoError(t, err)

	second, err := tmpl.Render(data)
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical input must render byte-identical output")
}

func TestCertificateTemplate_RenderQROnlyWithVerifyURL(t *testing.T) {
	tmpl, err := NewCertificateTemplate()
	require.NoError(t, err)

	without, err := tmpl.Render(TemplateData{Name: "Ana Silva", ID: "abc123", Date: "01/01/2024"})
	require.NoError(t, err)

	with, err := tmpl.Render(TemplateData{
		Name:      "Ana Silva",
		ID:        "abc123",
		Date:      "01/01/2024",
		VerifyURL: "https://verify.example.com/api/certificate/validate/abc123",
	})
	require.NoError(t, err)

	// One inline PNG for the medal, a second one for the QR.
	assert.Equal(t, 1, strings.Count(without, "data:image/png;base64,"))
	assert.Equal(t, 2, strings.Count(with, "data:image/png;base64,"))
}

func TestCertificateTemplate_RenderIncompleteData(t *testing.T) {
	tmpl, err := NewCertificateTemplate()
	require.NoError(t, err)

	tests := []struct {
		name string
		data TemplateData
	}{
		{"missing name", TemplateData{ID: "abc123", Date: "01/01/2024"}},
		{"missing id", TemplateData{Name: "Ana Silva", Date: "01/01/2024"}},
		{"missing date", TemplateData{Name: "Ana Silva", ID: "abc123"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, renderErr := tmpl.Render(tt.data)
			assert.Error(t, renderErr)
		})
	}
}

func TestCertificateTemplate_RenderEscapesMarkup(t *testing.T) {
	tmpl, err := NewCertificateTemplate()
	require.NoError(t, err)

	html, err := tmpl.Render(TemplateData{
		Name: `<script>alert("x")</script>`,
		ID:   "abc123",
		Date: "01/01/2024",
	})
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>")
}
