package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateRoutePlanQR generates a QR code that lets another device open a route plan
	GenerateRoutePlanQR(planID uuid.UUID) ([]byte, error)

	// ParseRoutePlanQR parses QR code data and returns the route plan ID
	ParseRoutePlanQR(qrData string) (uuid.UUID, error)
}
