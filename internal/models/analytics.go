package models

// CreatorStats is a point-in-time aggregate over the creators catalog.
// All four counters come from one grouped query so the snapshot is
// internally consistent; TotalViewers is coalesced to zero on an empty
// catalog rather than null.
type CreatorStats struct {
	TotalCreators    int64 `db:"total_creators" json:"total"`
	ActiveCreators   int64 `db:"active_creators" json:"active"`
	FeaturedCreators int64 `db:"featured_creators" json:"featured"`
	TotalViewers     int64 `db:"total_viewers" json:"totalViewers"`
}
