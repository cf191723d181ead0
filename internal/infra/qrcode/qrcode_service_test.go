package qrcode

import (
	"encoding/json"
	"testing"

	"dispatch/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSubscriber() *entity.Subscriber {
	return &entity.Subscriber{
		ContractNumber: "1001",
		City:           "Ангарск",
		Street:         "Кулибина",
		House:          "22",
	}
}

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
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateContractQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GenerateContractQR(testSubscriber())
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_ParseContractQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	valid, err := json.Marshal(QRCodeData{ContractNumber: "1001", Address: "Ангарск Кулибина, 22", Type: "contract"})
	require.NoError(t, err)
	wrongType, err := json.Marshal(QRCodeData{ContractNumber: "1001", Type: "subscription"})
	require.NoError(t, err)
	blank, err := json.Marshal(QRCodeData{ContractNumber: "  ", Type: "contract"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		data    string
		want    string
		wantErr string
	}{
		{name: "valid", data: string(valid), want: "1001"},
		{name: "invalid json", data: "invalid json", wantErr: "failed to unmarshal QR code data"},
		{name: "wrong type", data: string(wrongType), wantErr: "invalid QR code type"},
		{name: "blank contract", data: string(blank), wantErr: "no contract number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.ParseContractQR(tt.data)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
