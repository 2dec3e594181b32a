package dto

// CreateCreatorRequest is the payload for registering a new creator.
// Only the display name is mandatory; everything else falls back to
// catalog defaults.
type CreateCreatorRequest struct {
	DisplayName      string     `json:"display_name" validate:"required,min=1,max=200"`
	Description      *string    `json:"description" validate:"omitempty,max=2000"`
	AvatarURL        *string    `json:"avatar_url" validate:"omitempty,max=500"`
	Status           *string    `json:"status" validate:"omitempty,oneof=active inactive"`
	Viewers          *int64     `json:"viewers" validate:"omitempty,gte=0"`
	IsFeatured       *BoolValue `json:"is_featured"`
	FeaturedPriority *int64     `json:"featured_priority" validate:"omitempty,gte=0"`
	IsPaidMember     *BoolValue `json:"is_paid_member"`
	Platforms        []string   `json:"platforms" validate:"omitempty,dive,min=1"`
}

// UpdateCreatorRequest is the payload for a partial creator update. Every
// field is a pointer so absent keys can be told apart from zero values;
// nil means "leave unchanged".
type UpdateCreatorRequest struct {
	DisplayName      *string    `json:"display_name" validate:"omitempty,min=1,max=200"`
	Description      *string    `json:"description" validate:"omitempty,max=2000"`
	AvatarURL        *string    `json:"avatar_url" validate:"omitempty,max=500"`
	Status           *string    `json:"status" validate:"omitempty,oneof=active inactive"`
	Viewers          *int64     `json:"viewers" validate:"omitempty,gte=0"`
	IsFeatured       *BoolValue `json:"is_featured"`
	FeaturedPriority *int64     `json:"featured_priority" validate:"omitempty,gte=0"`
	IsPaidMember     *BoolValue `json:"is_paid_member"`
	Platforms        *[]string  `json:"platforms" validate:"omitempty,dive,min=1"`
}

// AvatarUploadResponse reports the stored avatar location after upload.
type AvatarUploadResponse struct {
	AvatarURL string `json:"avatar_url"`
}
