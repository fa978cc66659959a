package commands

import "cumulus/internal/format"

// field converts a decoded API value into a displayable cell. Missing
// values render as a dash so table shapes stay stable.
func field(v any) format.Value {
	if v == nil {
		return format.Text("-")
	}
	return format.Raw{V: v}
}

// lookup walks nested maps by key, returning nil when any level is absent.
func lookup(v any, keys ...string) any {
	current := v
	for _, key := range keys {
		record, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current = record[key]
	}
	return current
}

// keyValueTable returns an empty two-column table for detail views.
func keyValueTable() *format.Table {
	return format.NewTable("name", "value")
}
