package repository

import (
	"fmt"

	"github.com/psycheverse/creator-admin-api/internal/models"
)

// CreatorUpdate carries a sparse set of creator field assignments. A nil
// pointer means "not supplied, leave unchanged"; presence is never inferred
// from zero values, so viewers=0 or is_featured=false are legitimate
// assignments. Boolean fields arrive already normalized by the DTO layer.
type CreatorUpdate struct {
	DisplayName      *string
	Description      *string
	AvatarURL        *string
	Status           *string
	Viewers          *int64
	IsFeatured       *bool
	FeaturedPriority *int64
	IsPaidMember     *bool
	Platforms        *models.PlatformList
}

// Empty reports whether no field was supplied.
func (u CreatorUpdate) Empty() bool {
	return u.DisplayName == nil &&
		u.Description == nil &&
		u.AvatarURL == nil &&
		u.Status == nil &&
		u.Viewers == nil &&
		u.IsFeatured == nil &&
		u.FeaturedPriority == nil &&
		u.IsPaidMember == nil &&
		u.Platforms == nil
}

// compile renders SET clauses for the supplied fields in schema column
// order with sequential placeholders, keeping generated statements
// reproducible.
func (u CreatorUpdate) compile() ([]string, []interface{}) {
	var clauses []string
	var args []interface{}

	assign := func(column string, value interface{}) {
		args = append(args, value)
		clauses = append(clauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if u.DisplayName != nil {
		assign("display_name", *u.DisplayName)
	}
	if u.Description != nil {
		assign("description", *u.Description)
	}
	if u.AvatarURL != nil {
		assign("avatar_url", *u.AvatarURL)
	}
	if u.Status != nil {
		assign("status", *u.Status)
	}
	if u.Viewers != nil {
		assign("viewers", *u.Viewers)
	}
	if u.IsFeatured != nil {
		assign("is_featured", *u.IsFeatured)
	}
	if u.FeaturedPriority != nil {
		assign("featured_priority", *u.FeaturedPriority)
	}
	if u.IsPaidMember != nil {
		assign("is_paid_member", *u.IsPaidMember)
	}
	if u.Platforms != nil {
		assign("platforms", *u.Platforms)
	}

	return clauses, args
}
