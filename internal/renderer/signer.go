package renderer

import (
	"bytes"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	digitorus_pdf "github.com/digitorus/pdf"
	"github.com/digitorus/pdfsign/sign"
	"github.com/igniteworks/cert-ignite-api/common"
)

// CertificateSigner applies a digital signature to rendered PDFs when signing
// is enabled in the configuration. Signing failures degrade to the unsigned
// PDF rather than failing the issuance.
type CertificateSigner struct {
	certificate *x509.Certificate
	privateKey  *rsa.PrivateKey
	enabled     bool
}

func NewCertificateSigner() (*CertificateSigner, error) {
	if common.Config.SigningEnabled == nil || !*common.Config.SigningEnabled {
		slog.Info("PDF signing disabled in configuration")
		return &CertificateSigner{enabled: false}, nil
	}

	if common.Config.SigningCertPath == nil || common.Config.SigningKeyPath == nil {
		return nil, fmt.Errorf("signing enabled but certificate or key path not configured")
	}

	certificate, certErr := loadSigningCertificate(*common.Config.SigningCertPath)
	if certErr != nil {
		return nil, certErr
	}

	privateKey, keyErr := loadSigningKey(*common.Config.SigningKeyPath)
	if keyErr != nil {
		return nil, keyErr
	}

	slog.Info("Certificate signer initialized",
		"cert_subject", certificate.Subject.String(),
		"cert_expiry", certificate.NotAfter)

	return &CertificateSigner{
		certificate: certificate,
		privateKey:  privateKey,
		enabled:     true,
	}, nil
}

func loadSigningCertificate(path string) (*x509.Certificate, error) {
	certPEM, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read certificate file %s: %w", path, err)
	}

	block, _ := pem.Decode(certPEM)
	if block == nil {
		return nil, fmt.Errorf("failed to decode certificate PEM from %s", path)
	}

	certificate, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse certificate: %w", err)
	}

	return certificate, nil
}

func loadSigningKey(path string) (*rsa.PrivateKey, error) {
	keyPEM, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key file %s: %w", path, err)
	}

	block, _ := pem.Decode(keyPEM)
	if block == nil {
		return nil, fmt.Errorf("failed to decode private key PEM from %s", path)
	}

	privateKey, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err == nil {
		return privateKey, nil
	}

	// PKCS8 fallback
	key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	rsaKey, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("private key is not RSA format")
	}

	return rsaKey, nil
}

func (s *CertificateSigner) IsEnabled() bool {
	return s.enabled
}

// SignPDF signs the PDF in place. On any signing failure the original bytes
// are returned so issuance still succeeds.
func (s *CertificateSigner) SignPDF(pdfBytes []byte, certificateID string) ([]byte, error) {
	if !s.enabled {
		return pdfBytes, nil
	}

	if len(pdfBytes) == 0 {
		return pdfBytes, fmt.Errorf("empty PDF bytes")
	}

	signData := sign.SignData{
		Signature: sign.SignDataSignature{
			Info: sign.SignDataSignatureInfo{
				Name:     "Certificate Ignite",
				Location: "Certificate Ignite Platform",
				Reason:   fmt.Sprintf("Certificate authenticity for %s", certificateID),
				Date:     time.Now(),
			},
			CertType:   sign.CertificationSignature,
			DocMDPPerm: sign.AllowFillingExistingFormFieldsAndSignaturesPerms,
		},
		Signer:      s.privateKey,
		Certificate: s.certificate,
	}

	inputReader := bytes.NewReader(pdfBytes)
	var outputBuffer bytes.Buffer

	// pdfsign can panic on malformed input; recover so a bad PDF falls back
	// to the unsigned bytes.
	var signingErr error
	func() {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("Panic during PDF signing", "panic", r, "cert_id", certificateID)
				signingErr = fmt.Errorf("pdf signing panicked: %v", r)
			}
		}()

		pdfReader, readerErr := digitorus_pdf.NewReader(inputReader, int64(len(pdfBytes)))
		if readerErr != nil {
			signingErr = readerErr
			return
		}

		inputReader.Seek(0, io.SeekStart)
		signingErr = sign.Sign(inputReader, &outputBuffer, pdfReader, int64(len(pdfBytes)), signData)
	}()

	if signingErr != nil || outputBuffer.Len() == 0 {
		slog.Warn("PDF signing failed, returning unsigned PDF", "error", signingErr, "cert_id", certificateID)
		return pdfBytes, nil
	}

	slog.Info("PDF signed", "cert_id", certificateID, "original_size", len(pdfBytes), "signed_size", outputBuffer.Len())
	return outputBuffer.Bytes(), nil
}
