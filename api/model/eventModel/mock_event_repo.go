package eventmodel

import "context"

// MockEventRepository is a mock implementation for testing
type MockEventRepository struct {
	RecordFunc            func(ctx context.Context, certId string, stage string, status string, detail string) error
	ListByCertificateFunc func(ctx context.Context, certId string) ([]*IssuanceEvent, error)
}

var _ IEventRepository = (*MockEventRepository)(nil)

func NewMockEventRepository() *MockEventRepository {
	return &MockEventRepository{}
}

func (m *MockEventRepository) Record(ctx context.Context, certId string, stage string, status string, detail string) error {
	if m.RecordFunc != nil {
		return m.RecordFunc(ctx, certId, stage, status, detail)
	}
	return nil
}

func (m *MockEventRepository) ListByCertificate(ctx context.Context, certId string) ([]*IssuanceEvent, error) {
	if m.ListByCertificateFunc != nil {
		return m.ListByCertificateFunc(ctx, certId)
	}
	return []*IssuanceEvent{}, nil
}
