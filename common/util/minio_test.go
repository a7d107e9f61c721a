package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractObjectNameFromURL(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		bucketName string
		want       string
		wantErr    bool
	}{
		{
			name:       "certificate object",
			url:        "https://files.example.com/certificates/abc123.pdf",
			bucketName: "certificates",
			want:       "abc123.pdf",
		},
		{
			name:       "nested object path",
			url:        "https://files.example.com/certificates/2026/03/abc123.pdf",
			bucketName: "certificates",
			want:       "2026/03/abc123.pdf",
		},
		{
			name:       "empty url",
			url:        "",
			bucketName: "certificates",
			wantErr:    true,
		},
		{
			name:       "bucket not in url",
			url:        "https://files.example.com/other-bucket/abc123.pdf",
			bucketName: "certificates",
			wantErr:    true,
		},
		{
			name:       "bucket with no object",
			url:        "https://files.example.com/certificates/",
			bucketName: "certificates",
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractObjectNameFromURL(tt.url, tt.bucketName)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMinioStorage_ObjectURL(t *testing.T) {
	storage := NewMinioStorage(nil, "files.example.com", "certificates")

	url := storage.ObjectURL("abc123.pdf")
	assert.Equal(t, "https://files.example.com/certificates/abc123.pdf", url)

	// Round trip: the URL we build must resolve back to the same object name.
	objectName, err := ExtractObjectNameFromURL(url, "certificates")
	require.NoError(t, err)
	assert.Equal(t, "abc123.pdf", objectName)
}
