package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// CreatorStatusActive is the default lifecycle status for new creators.
const CreatorStatusActive = "active"

// PlatformList stores the platforms a creator publishes on as a JSONB array.
type PlatformList []string

// Value implements driver.Valuer for JSONB storage.
func (p PlatformList) Value() (driver.Value, error) {
	if p == nil {
		p = PlatformList{}
	}
	return json.Marshal(p)
}

// Scan implements sql.Scanner for JSONB storage.
func (p *PlatformList) Scan(src interface{}) error {
	if src == nil {
		*p = PlatformList{}
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported platforms type %T", src)
	}
	if len(raw) == 0 {
		*p = PlatformList{}
		return nil
	}
	return json.Unmarshal(raw, p)
}

// Creator represents one catalog entry in the directory.
type Creator struct {
	ID               int64        `db:"id" json:"id"`
	DisplayName      string       `db:"display_name" json:"display_name"`
	Description      *string      `db:"description" json:"description,omitempty"`
	AvatarURL        *string      `db:"avatar_url" json:"avatar_url,omitempty"`
	Status           string       `db:"status" json:"status"`
	Viewers          int64        `db:"viewers" json:"viewers"`
	IsFeatured       bool         `db:"is_featured" json:"is_featured"`
	FeaturedPriority int64        `db:"featured_priority" json:"featured_priority"`
	IsPaidMember     bool         `db:"is_paid_member" json:"is_paid_member"`
	Platforms        PlatformList `db:"platforms" json:"platforms"`
	CreatedAt        time.Time    `db:"created_at" json:"created_at"`
}
