package certificatemodel

import (
	"errors"
	"log/slog"

	"github.com/igniteworks/cert-ignite-api/type/shared/model"
	"gorm.io/gorm"
)

// InsertOutcome reports what an Insert actually did. The repository performs
// a pre-write existence check on the identifier; a hit is reported as
// OutcomeConflict instead of being silently swallowed.
type InsertOutcome string

const (
	OutcomeInserted InsertOutcome = "inserted"
	OutcomeConflict InsertOutcome = "conflict"
)

// ICertificateRepository defines the interface for certificate record operations
type ICertificateRepository interface {
	GetById(certId string) (*model.Certificate, error)
	Insert(cert *model.Certificate) (InsertOutcome, error)
	SetPdfUrl(certId string, pdfUrl string) error
}

// CertificateRepository persists certificate records in Postgres
type CertificateRepository struct {
	db *gorm.DB
}

var _ ICertificateRepository = (*CertificateRepository)(nil)

func NewCertificateRepository(db *gorm.DB) *CertificateRepository {
	return &CertificateRepository{db: db}
}

// GetById returns the record for the exact identifier, or nil when no record exists.
func (r *CertificateRepository) GetById(certId string) (*model.Certificate, error) {
	cert := new(model.Certificate)
	queryErr := r.db.Where("id = ?", certId).First(cert).Error

	if queryErr != nil {
		if errors.Is(queryErr, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("Certificate GetById", "error", queryErr, "cert_id", certId)
		return nil, queryErr
	}

	return cert, nil
}

// Insert writes a new record unless one already exists for the identifier.
// The existence check and the write are not atomic; a concurrent insert
// between them can still slip through.
func (r *CertificateRepository) Insert(cert *model.Certificate) (InsertOutcome, error) {
	existing, queryErr := r.GetById(cert.ID)
	if queryErr != nil {
		return "", queryErr
	}

	if existing != nil {
		slog.Warn("Certificate Insert identifier collision", "cert_id", cert.ID)
		return OutcomeConflict, nil
	}

	if createErr := r.db.Create(cert).Error; createErr != nil {
		slog.Error("Certificate Insert", "error", createErr, "cert_id", cert.ID)
		return "", createErr
	}

	return OutcomeInserted, nil
}

// SetPdfUrl records the public URL of the rendered blob after a successful upload.
func (r *CertificateRepository) SetPdfUrl(certId string, pdfUrl string) error {
	updateErr := r.db.Model(&model.Certificate{}).Where("id = ?", certId).Update("pdf_url", pdfUrl).Error
	if updateErr != nil {
		slog.Error("Certificate SetPdfUrl", "error", updateErr, "cert_id", certId)
		return updateErr
	}
	return nil
}
