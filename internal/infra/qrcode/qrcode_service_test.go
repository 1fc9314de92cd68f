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
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateRoutePlanQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	planID := uuid.New()

	qrBytes, err := service.GenerateRoutePlanQR(planID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_ParseRoutePlanQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	planID := uuid.New()

	t.Run("round trip", func(t *testing.T) {
		payload, err := json.Marshal(QRCodeData{
			PlanID: planID.String(),
			Type:   "route_plan",
		})
		require.NoError(t, err)

		parsed, err := service.ParseRoutePlanQR(string(payload))
		require.NoError(t, err)
		assert.Equal(t, planID, parsed)
	})

	t.Run("wrong type", func(t *testing.T) {
		payload, err := json.Marshal(QRCodeData{
			PlanID: planID.String(),
			Type:   "subscription",
		})
		require.NoError(t, err)

		_, err = service.ParseRoutePlanQR(string(payload))
		assert.Error(t, err)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		_, err := service.ParseRoutePlanQR("not json")
		assert.Error(t, err)
	})

	t.Run("invalid UUID", func(t *testing.T) {
		payload, err := json.Marshal(QRCodeData{
			PlanID: "not-a-uuid",
			Type:   "route_plan",
		})
		require.NoError(t, err)

		_, err = service.ParseRoutePlanQR(string(payload))
		assert.Error(t, err)
	})
}
