package certificate_controller

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	eventmodel "github.com/igniteworks/cert-ignite-api/api/model/eventModel"
	"github.com/igniteworks/cert-ignite-api/type/response"
)

// SendMail delivers an already-rendered certificate to its recipient by
// email, with the PDF attached.
func (ctrl *CertificateController) SendMail(c *fiber.Ctx) error {
	certId := c.Params("certId")

	if certId == "" {
		slog.Warn("Certificate SendMail attempt with empty ID")
		return response.SendFailed(c, "Certificate ID is required")
	}

	cert, err := ctrl.certRepo.GetById(certId)

	if err != nil {
		slog.Error("Certificate SendMail lookup failed", "error", err, "cert_id", certId)
		return response.SendInternalError(c, err)
	}

	if cert == nil {
		slog.Warn("SendMail for non-existing certificate", "cert_id", certId)
		return response.SendFailed(c, "Certificate not found")
	}

	if cert.PdfURL == "" {
		slog.Warn("SendMail for certificate without a rendered PDF", "cert_id", certId)
		return response.SendFailed(c, "Certificate has not been rendered yet")
	}

	ctx := context.Background()

	pdf, downloadErr := ctrl.storage.DownloadByURL(ctx, cert.PdfURL)
	if downloadErr != nil {
		slog.Error("Certificate SendMail download failed", "error", downloadErr, "cert_id", certId)
		return response.SendInternalError(c, downloadErr)
	}

	if mailErr := ctrl.mailer.SendCertificate(cert.Email, cert.Name, cert.PdfURL, pdf); mailErr != nil {
		slog.Error("Certificate SendMail delivery failed", "error", mailErr, "cert_id", certId, "recipient", cert.Email)
		ctrl.recordEvent(ctx, certId, eventmodel.StageMailSent, eventmodel.StatusFailed, mailErr.Error())
		return response.SendInternalError(c, mailErr)
	}

	ctrl.recordEvent(ctx, certId, eventmodel.StageMailSent, eventmodel.StatusSuccess, cert.Email)

	slog.Info("Certificate mail sent", "cert_id", certId, "recipient", cert.Email)
	return response.SendSuccess(c, "Certificate mail sent", map[string]any{
		"id":        certId,
		"recipient": cert.Email,
	})
}
