package dto

// Suggestion is one autocomplete entry. DisplayName is a shortened form of
// FullName (first address components only).
type Suggestion struct {
	DisplayName string `json:"display_name"`
	FullName    string `json:"full_name"`
}
