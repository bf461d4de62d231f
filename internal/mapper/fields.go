package mapper

import (
	"strings"

	"github.com/leadbridge/dialer-sync-api/internal/highlevel"
	"go.uber.org/zap"
)

// ProjectCustomFields maps a flat value bag onto the location's custom
// field schema and returns values keyed by CRM field id. Only non-empty
// values with a matching definition produce an entry. Definitions whose
// fieldKey has no namespace dot are logged and skipped, never an error.
//
// The "disposition" field carries a repeat marker: when the new value
// equals the stored value minus its trailing dot, the stored value is
// written back with one more dot appended. This makes a re-sent identical
// disposition visually distinguishable in the CRM ("No Answer" vs
// "No Answer.") without inventing a separate flag field.
func ProjectCustomFields(values map[string]string, defs []highlevel.CustomFieldDefinition, logger *zap.Logger) map[string]string {
	result := make(map[string]string)

	for _, def := range defs {
		parts := strings.Split(def.FieldKey, ".")
		if len(parts) < 2 {
			logger.Warn("custom field key has no namespace, skipping",
				zap.String("field_id", def.ID),
				zap.String("field_key", def.FieldKey),
			)
			continue
		}
		shortName := parts[1]

		value, ok := values[shortName]
		if !ok || value == "" {
			continue
		}

		if shortName == "disposition" && value == strings.TrimSuffix(def.Value, ".") {
			result[def.ID] = def.Value + "."
			continue
		}
		result[def.ID] = value
	}

	return result
}
