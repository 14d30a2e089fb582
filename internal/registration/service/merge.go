package service

import (
	"encoding/json"
	"strconv"
	"strings"

	"farmgate/internal/registration/models"
)

// mergeFarm folds the request's top-level farm defaults into one plot
// group's farm block and returns the effective farm input.
//
// Two fallback rules apply, per field:
//
//   - value fallback: the group's value wins when non-empty, otherwise the
//     default is used. Applies to address, area size, plantation date,
//     spacing and the soil/crop references.
//   - presence fallback: the group's value wins whenever the key was present
//     at all, even if its value is falsy. Only a wholly absent key falls
//     back. Applies to plantation type and planting method, where an
//     explicit empty value means "none" rather than "inherit".
//
// A top-level free-text plantation/planting value that is all digits is
// promoted to an id reference. Group-level values are never promoted: they
// stay free text and go through the lookup cascade.
func mergeFarm(group, defaults *models.FarmInput) *models.FarmInput {
	if group == nil && defaults == nil {
		return nil
	}
	if defaults == nil {
		defaults = &models.FarmInput{}
	}
	if group == nil {
		group = &models.FarmInput{}
	}

	merged := &models.FarmInput{}

	// Value-fallback fields.
	merged.Address = firstNonEmpty(group.Address, defaults.Address)
	merged.PlantationDate = firstNonEmpty(group.PlantationDate, defaults.PlantationDate)
	merged.AreaSize = firstNonEmptyNumber(group.AreaSize, defaults.AreaSize)
	merged.SpacingA = firstNonEmptyNumber(group.SpacingA, defaults.SpacingA)
	merged.SpacingB = firstNonEmptyNumber(group.SpacingB, defaults.SpacingB)
	merged.SoilTypeID = firstNonNilID(group.SoilTypeID, defaults.SoilTypeID)
	merged.SoilType = firstNonEmptyText(group.SoilType, defaults.SoilType)
	merged.CropTypeID = firstNonNilID(group.CropTypeID, defaults.CropTypeID)
	merged.CropType = firstNonEmptyText(group.CropType, defaults.CropType)

	// Presence-fallback fields.
	merged.PlantationTypeID, merged.PlantationType = mergeReference(
		group.PlantationTypeID, group.PlantationType,
		defaults.PlantationTypeID, defaults.PlantationType)
	merged.PlantingMethodID, merged.PlantingMethod = mergeReference(
		group.PlantingMethodID, group.PlantingMethod,
		defaults.PlantingMethodID, defaults.PlantingMethod)

	return merged
}

// mergeReference applies presence fallback: the group pair wins when either
// key was present, as-is. Only when the default pair is selected is a
// numeric-looking free-text value promoted to an id reference; a group's
// free text always flows through the cascade even when it is all digits.
func mergeReference(groupID *int64, groupText *string, defaultID *int64, defaultText *string) (*int64, *string) {
	if groupID != nil || groupText != nil {
		return groupID, groupText
	}
	if defaultID == nil && defaultText != nil {
		if n, ok := numericText(*defaultText); ok {
			return &n, nil
		}
	}
	return defaultID, defaultText
}

func numericText(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func firstNonEmpty(a, b string) string {
	if strings.TrimSpace(a) != "" {
		return a
	}
	return b
}

func firstNonEmptyNumber(a, b json.Number) json.Number {
	if a.String() != "" {
		return a
	}
	return b
}

func firstNonEmptyText(a, b *string) *string {
	if a != nil && strings.TrimSpace(*a) != "" {
		return a
	}
	return b
}

func firstNonNilID(a, b *int64) *int64 {
	if a != nil {
		return a
	}
	return b
}
