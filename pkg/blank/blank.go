// Package blank removes empty string values from decoded JSON payloads so a
// partial update cannot clear a field by accident.
package blank

// Strip returns a copy of payload without keys whose value is "". Nested
// objects and arrays are walked. Numbers, booleans and nulls are kept.
func Strip(payload map[string]any) map[string]any {
	if payload == nil {
		return nil
	}

	out := make(map[string]any, len(payload))
	for k, v := range payload {
		if s, ok := v.(string); ok && s == "" {
			continue
		}
		out[k] = stripValue(v)
	}

	return out
}

func stripValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return Strip(t)
	case []any:
		items := make([]any, len(t))
		for i, item := range t {
			items[i] = stripValue(item)
		}
		return items
	default:
		return v
	}
}
