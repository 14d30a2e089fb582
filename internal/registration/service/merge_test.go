package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmgate/internal/registration/models"
)

func strPtr(s string) *string { return &s }

func int64Ptr(n int64) *int64 { return &n }

func TestMergeFarmValueFallback(t *testing.T) {
	defaults := &models.FarmInput{
		Address:        "default address",
		AreaSize:       json.Number("3"),
		SpacingA:       json.Number("10"),
		PlantationDate: "2026-01-15",
		SoilType:       strPtr("Black Cotton"),
	}

	t.Run("group value wins when present", func(t *testing.T) {
		merged := mergeFarm(&models.FarmInput{Address: "group address"}, defaults)
		assert.Equal(t, "group address", merged.Address)
	})

	t.Run("empty group value falls back", func(t *testing.T) {
		merged := mergeFarm(&models.FarmInput{}, defaults)
		assert.Equal(t, "default address", merged.Address)
		assert.Equal(t, json.Number("3"), merged.AreaSize)
		assert.Equal(t, json.Number("10"), merged.SpacingA)
		assert.Equal(t, "2026-01-15", merged.PlantationDate)
		require.NotNil(t, merged.SoilType)
		assert.Equal(t, "Black Cotton", *merged.SoilType)
	})

	t.Run("nil group uses defaults wholesale", func(t *testing.T) {
		merged := mergeFarm(nil, defaults)
		require.NotNil(t, merged)
		assert.Equal(t, "default address", merged.Address)
	})

	t.Run("both nil yields nil", func(t *testing.T) {
		assert.Nil(t, mergeFarm(nil, nil))
	})
}

func TestMergeFarmPresenceFallback(t *testing.T) {
	defaults := &models.FarmInput{
		PlantationType: strPtr("adsali"),
		PlantingMethod: strPtr("3_bud"),
	}

	t.Run("absent key falls back to default", func(t *testing.T) {
		merged := mergeFarm(&models.FarmInput{}, defaults)
		require.NotNil(t, merged.PlantationType)
		assert.Equal(t, "adsali", *merged.PlantationType)
	})

	t.Run("explicit empty value is respected, not replaced", func(t *testing.T) {
		merged := mergeFarm(&models.FarmInput{PlantationType: strPtr("")}, defaults)
		require.NotNil(t, merged.PlantationType)
		assert.Equal(t, "", *merged.PlantationType)
		assert.Nil(t, merged.PlantationTypeID)
	})

	t.Run("explicit id shadows default text", func(t *testing.T) {
		merged := mergeFarm(&models.FarmInput{PlantationTypeID: int64Ptr(7)}, defaults)
		require.NotNil(t, merged.PlantationTypeID)
		assert.Equal(t, int64(7), *merged.PlantationTypeID)
		assert.Nil(t, merged.PlantationType)
	})

	t.Run("numeric-looking default is promoted to an id reference", func(t *testing.T) {
		merged := mergeFarm(&models.FarmInput{}, &models.FarmInput{PlantationType: strPtr("42")})
		require.NotNil(t, merged.PlantationTypeID)
		assert.Equal(t, int64(42), *merged.PlantationTypeID)
		assert.Nil(t, merged.PlantationType)
	})

	t.Run("numeric-looking group value stays free text", func(t *testing.T) {
		merged := mergeFarm(&models.FarmInput{PlantingMethod: strPtr("9")}, defaults)
		assert.Nil(t, merged.PlantingMethodID)
		require.NotNil(t, merged.PlantingMethod)
		assert.Equal(t, "9", *merged.PlantingMethod)
	})
}
