// Package push builds Airwave notification payloads and sends them through
// the transport in pkg/airwave. Payload variants are explicit structs with
// optional members; building compacts them into FieldMaps that carry only
// the fields that were actually set.
package push

// FieldMap is a JSON-object payload fragment. A FieldMap never contains a
// key whose value is nil: absent fields are omitted, not nulled.
type FieldMap map[string]any

// setIfPresent copies *v into m when the optional was set.
func setIfPresent[T any](m FieldMap, key string, v *T) {
	if v != nil {
		m[key] = *v
	}
}

// setIfAny copies an untyped optional (fields that accept more than one
// JSON shape, e.g. an alert that may be a string or an object).
func setIfAny(m FieldMap, key string, v any) {
	if v != nil {
		m[key] = v
	}
}

// setIfMap copies a nested block when it has content.
func setIfMap(m FieldMap, key string, v FieldMap) {
	if len(v) > 0 {
		m[key] = v
	}
}

// setIfSelector copies an audience-style value: a selector FieldMap, the
// "all" broadcast string, or any other non-nil shape. Empty maps count as
// absent.
func setIfSelector(m FieldMap, key string, v any) {
	switch s := v.(type) {
	case nil:
	case FieldMap:
		setIfMap(m, key, s)
	case map[string]any:
		setIfMap(m, key, FieldMap(s))
	default:
		m[key] = v
	}
}

// String returns a pointer to s, for filling optional builder fields inline.
func String(s string) *string { return &s }

// Int returns a pointer to i.
func Int(i int) *int { return &i }

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }
