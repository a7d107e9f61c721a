package certificate_controller

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/igniteworks/cert-ignite-api/type/response"
)

// GetEvents returns the issuance event trail for a certificate, newest first.
func (ctrl *CertificateController) GetEvents(c *fiber.Ctx) error {
	certId := c.Params("certId")

	if certId == "" {
		slog.Warn("Certificate GetEvents attempt with empty ID")
		return response.SendFailed(c, "Certificate ID is required")
	}

	events, err := ctrl.events.ListByCertificate(context.Background(), certId)

	if err != nil {
		slog.Error("Certificate GetEvents failed", "error", err, "cert_id", certId)
		return response.SendInternalError(c, err)
	}

	return response.SendSuccess(c, "Issuance events fetched", events)
}
