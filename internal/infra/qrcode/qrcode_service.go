package qrcode

import (
	"encoding/json"
	"fmt"
	"strings"

	"dispatch/internal/domain/entity"
	"dispatch/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const contractQRType = "contract"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	ContractNumber string `json:"contract_number"`
	Address        string `json:"address,omitempty"`
	Type           string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateContractQR generates a QR code for a subscriber contract card
func (s *qrcodeService) GenerateContractQR(subscriber *entity.Subscriber) ([]byte, error) {
	data := QRCodeData{
		ContractNumber: subscriber.ContractNumber,
		Address:        entity.JoinNonEmpty(", ", subscriber.AddressLine(), subscriber.House),
		Type:           contractQRType,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseContractQR parses QR code data and returns the contract number
func (s *qrcodeService) ParseContractQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != contractQRType {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	contract := strings.TrimSpace(data.ContractNumber)
	if contract == "" {
		return "", fmt.Errorf("QR code has no contract number")
	}

	return contract, nil
}
