package certificatemodel

import (
	"github.com/igniteworks/cert-ignite-api/type/shared/model"
)

// MockCertificateRepository is a mock implementation for testing
type MockCertificateRepository struct {
	GetByIdFunc   func(certId string) (*model.Certificate, error)
	InsertFunc    func(cert *model.Certificate) (InsertOutcome, error)
	SetPdfUrlFunc func(certId string, pdfUrl string) error
}

// Ensure MockCertificateRepository implements ICertificateRepository
var _ ICertificateRepository = (*MockCertificateRepository)(nil)

// NewMockCertificateRepository creates a new mock repository
func NewMockCertificateRepository() *MockCertificateRepository {
	return &MockCertificateRepository{}
}

func (m *MockCertificateRepository) GetById(certId string) (*model.Certificate, error) {
	if m.GetByIdFunc != nil {
		return m.GetByIdFunc(certId)
	}
	return nil, nil
}

func (m *MockCertificateRepository) Insert(cert *model.Certificate) (InsertOutcome, error) {
	if m.InsertFunc != nil {
		return m.InsertFunc(cert)
	}
	return OutcomeInserted, nil
}

func (m *MockCertificateRepository) SetPdfUrl(certId string, pdfUrl string) error {
	if m.SetPdfUrlFunc != nil {
		return m.SetPdfUrlFunc(certId, pdfUrl)
	}
	return nil
}
