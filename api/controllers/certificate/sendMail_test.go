package certificate_controller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	certificate_controller "github.com/igniteworks/cert-ignite-api/api/controllers/certificate"
	eventmodel "github.com/igniteworks/cert-ignite-api/api/model/eventModel"
	"github.com/igniteworks/cert-ignite-api/type/shared/model"
)

func postMail(t *testing.T, ctrl *certificate_controller.CertificateController, certId string) (int, map[string]any) {
	t.Helper()

	app := fiber.New()
	app.Post("/certificate/mail/:certId", ctrl.SendMail)

	resp, err := app.Test(httptest.NewRequest("POST", "/certificate/mail/"+certId, nil))
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}

	var parsed map[string]any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	return resp.StatusCode, parsed
}

func TestCertificateController_SendMail(t *testing.T) {
	rendered := &model.Certificate{
		ID:        "cert-123",
		Name:      "Ana Silva",
		Email:     "ana@example.com",
		CreatedAt: "15/03/2026",
		PdfURL:    "https://files.example.com/certificates/cert-123.pdf",
	}
	pdfBytes := []byte("%PDF-1.4 stored")

	lookupRendered := func(deps *testDeps) {
		deps.certRepo.GetByIdFunc = func(certId string) (*model.Certificate, error) {
			if certId == rendered.ID {
				return rendered, nil
			}
			return nil, nil
		}
		deps.storage.DownloadByURLFunc = func(ctx context.Context, fileURL string) ([]byte, error) {
			if fileURL != rendered.PdfURL {
				return nil, errors.New("object not found")
			}
			return pdfBytes, nil
		}
	}

	tests := []struct {
		name           string
		certId         string
		setup          func(deps *testDeps)
		wantStatusCode int
		check          func(t *testing.T, deps *testDeps, body map[string]any)
	}{
		{
			name:           "successful delivery",
			certId:         "cert-123",
			setup:          lookupRendered,
			wantStatusCode: fiber.StatusOK,
			check: func(t *testing.T, deps *testDeps, body map[string]any) {
				data, _ := body["data"].(map[string]any)
				if data["recipient"] != rendered.Email {
					t.Errorf("Expected recipient %q, got %v", rendered.Email, data["recipient"])
				}
			},
		},
		{
			name:           "unknown certificate",
			certId:         "nope",
			wantStatusCode: fiber.StatusBadRequest,
		},
		{
			name:   "certificate without a rendered pdf",
			certId: "cert-123",
			setup: func(deps *testDeps) {
				deps.certRepo.GetByIdFunc = func(certId string) (*model.Certificate, error) {
					return &model.Certificate{ID: certId, Name: "Ana Silva", Email: "ana@example.com"}, nil
				}
				deps.mailer.SendCertificateFunc = func(to string, name string, certificateURL string, pdf []byte) error {
					t.Error("Mailer must not be called without a rendered PDF")
					return nil
				}
			},
			wantStatusCode: fiber.StatusBadRequest,
			check: func(t *testing.T, deps *testDeps, body map[string]any) {
				if body["message"] != "Certificate has not been rendered yet" {
					t.Errorf("Unexpected message %v", body["message"])
				}
			},
		},
		{
			name:   "blob download failure",
			certId: "cert-123",
			setup: func(deps *testDeps) {
				lookupRendered(deps)
				deps.storage.DownloadByURLFunc = func(ctx context.Context, fileURL string) ([]byte, error) {
					return nil, errors.New("bucket unavailable")
				}
			},
			wantStatusCode: fiber.StatusInternalServerError,
		},
		{
			name:   "smtp failure recorded as failed event",
			certId: "cert-123",
			setup: func(deps *testDeps) {
				lookupRendered(deps)
				deps.mailer.SendCertificateFunc = func(to string, name string, certificateURL string, pdf []byte) error {
					return errors.New("smtp timeout")
				}
			},
			wantStatusCode: fiber.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := newTestDeps()

			var recordedStages []string
			var recordedStatuses []string
			deps.events.RecordFunc = func(ctx context.Context, certId string, stage string, status string, detail string) error {
				recordedStages = append(recordedStages, stage)
				recordedStatuses = append(recordedStatuses, status)
				return nil
			}

			if tt.setup != nil {
				tt.setup(deps)
			}

			ctrl := newTestController(deps)
			status, body := postMail(t, ctrl, tt.certId)

			if status != tt.wantStatusCode {
				t.Errorf("Expected status code %d, got %d", tt.wantStatusCode, status)
			}

			switch tt.name {
			case "successful delivery":
				if len(recordedStages) != 1 || recordedStages[0] != eventmodel.StageMailSent || recordedStatuses[0] != eventmodel.StatusSuccess {
					t.Errorf("Expected a single mail_sent success event, got %v/%v", recordedStages, recordedStatuses)
				}
			case "smtp failure recorded as failed event":
				if len(recordedStages) != 1 || recordedStages[0] != eventmodel.StageMailSent || recordedStatuses[0] != eventmodel.StatusFailed {
					t.Errorf("Expected a single mail_sent failed event, got %v/%v", recordedStages, recordedStatuses)
				}
			}

			if tt.check != nil {
				tt.check(t, deps, body)
			}
		})
	}
}

func TestCertificateController_SendMail_AttachesStoredPdf(t *testing.T) {
	deps := newTestDeps()

	cert := &model.Certificate{
		ID:        "cert-123",
		Name:      "Ana Silva",
		Email:     "ana@example.com",
		CreatedAt: "15/03/2026",
		PdfURL:    "https://files.example.com/certificates/cert-123.pdf",
	}
	stored := []byte("%PDF-1.4 stored")

	deps.certRepo.GetByIdFunc = func(certId string) (*model.Certificate, error) {
		return cert, nil
	}
	deps.storage.DownloadByURLFunc = func(ctx context.Context, fileURL string) ([]byte, error) {
		return stored, nil
	}

	var sentTo string
	var sentPdf []byte
	deps.mailer.SendCertificateFunc = func(to string, name string, certificateURL string, pdf []byte) error {
		sentTo = to
		sentPdf = pdf
		return nil
	}

	ctrl := newTestController(deps)
	status, _ := postMail(t, ctrl, cert.ID)

	if status != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d", status)
	}

	if sentTo != cert.Email {
		t.Errorf("Expected mail to %q, got %q", cert.Email, sentTo)
	}

	if !bytes.Equal(sentPdf, stored) {
		t.Error("Mailed PDF does not match the stored object")
	}
}
