package enums

import "fmt"

// ViewMode describes the product listing layouts the UI can render.
type ViewMode string

const (
	ViewModeGrid ViewMode = "grid"
	ViewModeList ViewMode = "list"
)

var validViewModes = []ViewMode{
	ViewModeGrid,
	ViewModeList,
}

// IsValid reports whether the value matches the canonical view mode enum.
func (v ViewMode) IsValid() bool {
	for _, candidate := range validViewModes {
		if candidate == v {
			return true
		}
	}
	return false
}

// ParseViewMode converts the raw string to ViewMode.
func ParseViewMode(value string) (ViewMode, error) {
	for _, candidate := range validViewModes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid view mode %q", value)
}
