package renderer

import (
	"bytes"
	_ "embed"
	"encoding/base64"
	"fmt"
	"html/template"

	qrcode "github.com/skip2/go-qrcode"
)

//go:embed templates/certificate.html
var certificateTemplate string

//go:embed templates/medal.png
var medalPNG []byte

// TemplateData carries everything the certificate template needs.
// VerifyURL is optional; when set, a QR code pointing at it is rendered
// onto the certificate.
type TemplateData struct {
	Name      string
	ID        string
	Date      string
	VerifyURL string
}

// HTMLRenderer fills the certificate template with recipient data.
type HTMLRenderer interface {
	Render(data TemplateData) (string, error)
}

// CertificateTemplate renders the embedded certificate template. Output is
// deterministic for identical input data.
type CertificateTemplate struct {
	tmpl *template.Template
}

var _ HTMLRenderer = (*CertificateTemplate)(nil)

func NewCertificateTemplate() (*CertificateTemplate, error) {
	tmpl, err := template.New("certificate").Parse(certificateTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse certificate template: %w", err)
	}
	return &CertificateTemplate{tmpl: tmpl}, nil
}

func (t *CertificateTemplate) Render(data TemplateData) (string, error) {
	if data.Name == "" || data.ID == "" || data.Date == "" {
		return "", fmt.Errorf("template data incomplete: name, id and date are required")
	}

	vars := struct {
		Name  string
		ID    string
		Date  string
		Medal template.URL
		QR    template.URL
	}{
		Name:  data.Name,
		ID:    data.ID,
		Date:  data.Date,
		Medal: pngDataURI(medalPNG),
	}

	if data.VerifyURL != "" {
		qrBytes, qrErr := qrcode.Encode(data.VerifyURL, qrcode.Medium, 160)
		if qrErr != nil {
			return "", fmt.Errorf("failed to generate verification QR code: %w", qrErr)
		}
		vars.QR = pngDataURI(qrBytes)
	}

	var buf bytes.Buffer
	if execErr := t.tmpl.Execute(&buf, vars); execErr != nil {
		return "", fmt.Errorf("failed to render certificate template: %w", execErr)
	}

	return buf.String(), nil
}

// pngDataURI inlines image bytes for use in an <img> src attribute.
// template.URL keeps html/template from escaping the data scheme.
func pngDataURI(png []byte) template.URL {
	return template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png))
}
