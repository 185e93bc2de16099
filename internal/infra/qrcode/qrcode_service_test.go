package qrcode

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			require.NotNil(t, svc)
		})
	}
}

func TestGenerateOptInQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")
	locationID := uuid.New()

	png, err := svc.GenerateOptInQR(locationID)
	require.NoError(t, err)
	assert.NotEmpty(t, png)

	// PNG magic bytes
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, png[:4])
}

func TestParseOptInQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")
	locationID := uuid.New()

	payload, err := json.Marshal(QRCodeData{
		LocationID: locationID.String(),
		Type:       "opt-in",
	})
	require.NoError(t, err)

	parsed, err := svc.ParseOptInQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, locationID, parsed)
}

func TestParseOptInQR_InvalidPayloads(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	_, err := svc.ParseOptInQR("not json")
	assert.Error(t, err)

	wrongType, _ := json.Marshal(QRCodeData{LocationID: uuid.NewString(), Type: "subscription"})
	_, err = svc.ParseOptInQR(string(wrongType))
	assert.Error(t, err)

	badID, _ := json.Marshal(QRCodeData{LocationID: "nope", Type: "opt-in"})
	_, err = svc.ParseOptInQR(string(badID))
	assert.Error(t, err)
}
