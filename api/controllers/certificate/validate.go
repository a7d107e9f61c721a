package certificate_controller

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/igniteworks/cert-ignite-api/type/payload"
	"github.com/igniteworks/cert-ignite-api/type/response"
)

// Validate looks up a certificate by its identifier and reports whether it
// was issued by this system.
func (ctrl *CertificateController) Validate(c *fiber.Ctx) error {
	certId := c.Params("certId")

	if certId == "" {
		slog.Warn("Certificate Validate attempt with empty ID")
		return response.SendFailed(c, "Certificate ID is required")
	}

	cert, err := ctrl.certRepo.GetById(certId)

	if err != nil {
		slog.Error("Certificate Validate lookup failed", "error", err, "cert_id", certId)
		return response.SendInternalError(c, err)
	}

	if cert == nil {
		slog.Warn("Validating non-existing certificate", "cert_id", certId)
		return response.SendFailed(c, "Certificate not found")
	}

	slog.Info("Certificate Validate successful", "cert_id", certId, "name", cert.Name)
	return response.SendSuccess(c, "Certificate is valid", payload.ValidateCertificateResult{
		Valid:       true,
		ID:          cert.ID,
		Name:        cert.Name,
		IssuedAt:    cert.CreatedAt,
		Certificate: cert.PdfURL,
	})
}
