package firestore

import "time"

// The mobile app writes these documents without a schema, so fields are read
// leniently: a missing or mistyped field decodes to its zero value instead of
// failing the whole read.

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func boolField(m map[string]any, key string) bool {
	b, _ := m[key].(bool)
	return b
}

func int64Field(m map[string]any, key string) int64 {
	switch v := m[key].(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	}
	return 0
}

func mapField(m map[string]any, key string) map[string]any {
	sub, _ := m[key].(map[string]any)
	return sub
}

// timeField accepts Firestore timestamps and RFC 3339 strings.
func timeField(m map[string]any, key string) *time.Time {
	switch v := m[key].(type) {
	case time.Time:
		t := v.UTC()
		return &t
	case string:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}
