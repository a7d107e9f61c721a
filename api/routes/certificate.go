package routes

import (
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"
	certificate_controller "github.com/igniteworks/cert-ignite-api/api/controllers/certificate"
	certificatemodel "github.com/igniteworks/cert-ignite-api/api/model/certificateModel"
	eventmodel "github.com/igniteworks/cert-ignite-api/api/model/eventModel"
	"github.com/igniteworks/cert-ignite-api/common"
	"github.com/igniteworks/cert-ignite-api/common/util"
	"github.com/igniteworks/cert-ignite-api/internal/renderer"
)

func SetupCertificateRoutes(router fiber.Router) {
	template, templateErr := renderer.NewCertificateTemplate()
	if templateErr != nil {
		slog.Error("Failed to load certificate template", "error", templateErr)
		os.Exit(1)
	}

	signer, signerErr := renderer.NewCertificateSigner()
	if signerErr != nil {
		slog.Warn("PDF signing unavailable", "error", signerErr)
		signer = nil
	}

	ctrl := certificate_controller.NewCertificateController(
		certificatemodel.NewCertificateRepository(common.Gorm),
		eventmodel.NewEventRepository(common.Mongo),
		template,
		renderer.NewPDFEngine,
		util.NewMinioStorage(common.MinIOClient, *common.Config.MinIoEndpoint, *common.Config.BucketCertificate),
		util.NewGomailMailer(),
		signer,
		*common.Config.VerifyHost,
	)

	certificateGroup := router.Group("certificate")

	certificateGroup.Post("", ctrl.Generate)
	certificateGroup.Get("validate/:certId", ctrl.Validate)
	certificateGroup.Post("mail/:certId", ctrl.SendMail)
	certificateGroup.Get("events/:certId", ctrl.GetEvents)
}
