package service

import "dispatch/internal/domain/entity"

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateContractQR renders a PNG QR code identifying the subscriber contract
	GenerateContractQR(subscriber *entity.Subscriber) ([]byte, error)

	// ParseContractQR extracts the contract number from the QR payload
	ParseContractQR(qrData string) (string, error)
}
