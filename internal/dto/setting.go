package dto

// UpdateSettingsRequest carries a batch of key/value writes. Values are
// stored as strings verbatim; interpretation is the caller's concern.
type UpdateSettingsRequest struct {
	Settings map[string]string `json:"settings" validate:"required,min=1"`
}

// SettingsResponse flattens stored settings into a single object keyed by
// setting name.
type SettingsResponse map[string]string
