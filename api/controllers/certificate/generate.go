package certificate_controller

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	certificatemodel "github.com/igniteworks/cert-ignite-api/api/model/certificateModel"
	eventmodel "github.com/igniteworks/cert-ignite-api/api/model/eventModel"
	"github.com/igniteworks/cert-ignite-api/common/util"
	"github.com/igniteworks/cert-ignite-api/internal/renderer"
	"github.com/igniteworks/cert-ignite-api/type/payload"
	"github.com/igniteworks/cert-ignite-api/type/response"
	"github.com/igniteworks/cert-ignite-api/type/shared/model"
)

const issueDateFormat = "02/01/2006"

// renderTimeout bounds the headless-browser print step.
const renderTimeout = 60 * time.Second

// Generate issues a new certificate: persists the record, renders the
// certificate PDF through a scoped headless browser, uploads it and returns
// the public URL. A failure after the record insert leaves the record behind
// with no blob; there is no compensating cleanup.
func (ctrl *CertificateController) Generate(c *fiber.Ctx) error {
	body := new(payload.GenerateCertificatePayload)

	if err := c.BodyParser(body); err != nil {
		return response.SendFailed(c, "Failed to parse body")
	}

	if err := util.ValidateStruct(body); err != nil {
		errors := util.GetValidationErrors(err)
		return response.SendFailed(c, errors[0])
	}

	certId := uuid.New().String()
	issuedAt := time.Now().Format(issueDateFormat)

	outcome, insertErr := ctrl.certRepo.Insert(&model.Certificate{
		ID:        certId,
		Name:      body.Name,
		Email:     body.Email,
		CreatedAt: issuedAt,
	})

	if insertErr != nil {
		slog.Error("Certificate Generate insert failed", "error", insertErr, "cert_id", certId)
		return response.SendInternalError(c, insertErr)
	}

	if outcome == certificatemodel.OutcomeConflict {
		slog.Warn("Certificate Generate identifier conflict", "cert_id", certId)
		return response.SendConflict(c, "Certificate already exists")
	}

	ctx := context.Background()
	ctrl.recordEvent(ctx, certId, eventmodel.StageRecordCreated, eventmodel.StatusSuccess, "")

	html, renderErr := ctrl.template.Render(renderer.TemplateData{
		Name:      body.Name,
		ID:        certId,
		Date:      issuedAt,
		VerifyURL: ctrl.verifyURL(certId),
	})

	if renderErr != nil {
		slog.Error("Certificate Generate template render failed", "error", renderErr, "cert_id", certId)
		return response.SendError(c, "Failed to render certificate template")
	}

	pdf, printErr := ctrl.printPDF(ctx, html)
	if printErr != nil {
		slog.Error("Certificate Generate PDF render failed", "error", printErr, "cert_id", certId)
		ctrl.recordEvent(ctx, certId, eventmodel.StagePdfRendered, eventmodel.StatusFailed, printErr.Error())
		return response.SendError(c, "Failed to render certificate PDF")
	}
	ctrl.recordEvent(ctx, certId, eventmodel.StagePdfRendered, eventmodel.StatusSuccess, "")

	if ctrl.signer != nil {
		signed, signErr := ctrl.signer.SignPDF(pdf, certId)
		if signErr != nil {
			slog.Warn("Certificate Generate signing skipped", "error", signErr, "cert_id", certId)
		} else {
			pdf = signed
		}
	}

	url, uploadErr := ctrl.storage.UploadPDF(ctx, certId+".pdf", pdf)
	if uploadErr != nil {
		slog.Error("Certificate Generate upload failed", "error", uploadErr, "cert_id", certId)
		ctrl.recordEvent(ctx, certId, eventmodel.StagePdfUploaded, eventmodel.StatusFailed, uploadErr.Error())
		return response.SendError(c, "Failed to upload certificate PDF")
	}
	ctrl.recordEvent(ctx, certId, eventmodel.StagePdfUploaded, eventmodel.StatusSuccess, url)

	if urlErr := ctrl.certRepo.SetPdfUrl(certId, url); urlErr != nil {
		// The blob exists and the URL is derivable from the id; log and move on.
		slog.Warn("Certificate Generate failed to store PDF URL", "error", urlErr, "cert_id", certId)
	}

	slog.Info("Certificate Generate completed", "cert_id", certId, "url", url)

	return response.SendCreated(c, "Certificate issued successfully", payload.GenerateCertificateResult{
		ID:  certId,
		URL: url,
	})
}

// printPDF runs the scoped browser render. The engine is closed on every
// exit path so the browser process never outlives the invocation.
func (ctrl *CertificateController) printPDF(ctx context.Context, html string) ([]byte, error) {
	engine, engineErr := ctrl.newEngine()
	if engineErr != nil {
		return nil, fmt.Errorf("failed to acquire PDF renderer: %w", engineErr)
	}
	defer engine.Close()

	renderCtx, cancel := context.WithTimeout(ctx, renderTimeout)
	defer cancel()

	return engine.Render(renderCtx, html)
}

func (ctrl *CertificateController) verifyURL(certId string) string {
	return fmt.Sprintf("%s/api/certificate/validate/%s", ctrl.verifyHost, certId)
}

// recordEvent appends to the issuance trail best effort; the trail never
// fails a request.
func (ctrl *CertificateController) recordEvent(ctx context.Context, certId string, stage string, status string, detail string) {
	if err := ctrl.events.Record(ctx, certId, stage, status, detail); err != nil {
		slog.Warn("Certificate event record failed", "error", err, "cert_id", certId, "stage", stage)
	}
}
