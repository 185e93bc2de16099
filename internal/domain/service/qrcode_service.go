package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateOptInQR generates a QR code pointing at a location's opt-in page
	GenerateOptInQR(locationID uuid.UUID) ([]byte, error)

	// ParseOptInQR parses QR code data and returns the location ID
	ParseOptInQR(qrData string) (uuid.UUID, error)
}
