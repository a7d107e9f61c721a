package certificate_controller

import (
	certificatemodel "github.com/igniteworks/cert-ignite-api/api/model/certificateModel"
	eventmodel "github.com/igniteworks/cert-ignite-api/api/model/eventModel"
	"github.com/igniteworks/cert-ignite-api/common/util"
	"github.com/igniteworks/cert-ignite-api/internal/renderer"
)

// CertificateController handles certificate-related HTTP requests. Every
// collaborator is injected; the controller itself holds no process-wide state.
// The PDF engine is created per invocation through newEngine so each request
// gets its own scoped browser process.
type CertificateController struct {
	certRepo   certificatemodel.ICertificateRepository
	events     eventmodel.IEventRepository
	template   renderer.HTMLRenderer
	newEngine  func() (renderer.PDFEngine, error)
	storage    util.CertificateStorage
	mailer     util.Mailer
	signer     *renderer.CertificateSigner
	verifyHost string
}

// NewCertificateController creates a new certificate controller with injected dependencies
func NewCertificateController(
	certRepo certificatemodel.ICertificateRepository,
	events eventmodel.IEventRepository,
	template renderer.HTMLRenderer,
	newEngine func() (renderer.PDFEngine, error),
	storage util.CertificateStorage,
	mailer util.Mailer,
	signer *renderer.CertificateSigner,
	verifyHost string,
) *CertificateController {
	return &CertificateController{
		certRepo:   certRepo,
		events:     events,
		template:   template,
		newEngine:  newEngine,
		storage:    storage,
		mailer:     mailer,
		signer:     signer,
		verifyHost: verifyHost,
	}
}
