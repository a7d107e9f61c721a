package util

// MockMailer is a mock mail sender for testing
type MockMailer struct {
	SendCertificateFunc func(to string, name string, certificateURL string, pdf []byte) error
}

var _ Mailer = (*MockMailer)(nil)

func NewMockMailer() *MockMailer {
	return &MockMailer{}
}

func (m *MockMailer) SendCertificate(to string, name string, certificateURL string, pdf []byte) error {
	if m.SendCertificateFunc != nil {
		return m.SendCertificateFunc(to, name, certificateURL, pdf)
	}
	return nil
}
