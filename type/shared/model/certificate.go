package model

// Certificate is one issued certificate record. CreatedAt is the issue date
// formatted as DD/MM/YYYY at insert time, not a timestamp column.
type Certificate struct {
	ID        string `gorm:"column:id;primaryKey" json:"id"`
	Name      string `gorm:"column:name" json:"name"`
	Email     string `gorm:"column:email" json:"email"`
	CreatedAt string `gorm:"column:created_at" json:"created_at"`
	PdfURL    string `gorm:"column:pdf_url" json:"pdf_url"`
}

func (Certificate) TableName() string {
	return "certificates"
}
