package payload

type GenerateCertificatePayload struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type GenerateCertificateResult struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type ValidateCertificateResult struct {
	Valid       bool   `json:"valid"`
	ID          string `json:"id"`
	Name        string `json:"name"`
	IssuedAt    string `json:"issued_at"`
	Certificate string `json:"certificate_url,omitempty"`
}
