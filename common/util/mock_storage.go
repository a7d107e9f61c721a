package util

import "context"

// MockCertificateStorage is a mock blob store for testing
type MockCertificateStorage struct {
	UploadPDFFunc     func(ctx context.Context, objectName string, data []byte) (string, error)
	DownloadByURLFunc func(ctx context.Context, fileURL string) ([]byte, error)
}

var _ CertificateStorage = (*MockCertificateStorage)(nil)

func NewMockCertificateStorage() *MockCertificateStorage {
	return &MockCertificateStorage{}
}

func (m *MockCertificateStorage) UploadPDF(ctx context.Context, objectName string, data []byte) (string, error) {
	if m.UploadPDFFunc != nil {
		return m.UploadPDFFunc(ctx, objectName, data)
	}
	return "", nil
}

func (m *MockCertificateStorage) DownloadByURL(ctx context.Context, fileURL string) ([]byte, error) {
	if m.DownloadByURLFunc != nil {
		return m.DownloadByURLFunc(ctx, fileURL)
	}
	return nil, nil
}
