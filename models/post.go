package models

import "time"

// Post is a piece of content owned by its creator.
type Post struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatorID   int64     `json:"creator_id"`
	IsPrivate   bool      `json:"is_private"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewPost is the creation payload. CreatorID is taken from the
// authenticated caller, never from the body.
type NewPost struct {
	CreatorID   int64    `json:"-"`
	Title       string   `json:"title" validate:"required,max=255"`
	Description string   `json:"description" validate:"max=10000"`
	IsPrivate   bool     `json:"is_private"`
	Tags        []string `json:"tags" validate:"max=50,dive,max=64"`
}

// PostUpdate carries a partial post update. A nil field keeps its value;
// a non-nil Tags replaces the whole tag set, an empty slice clears it.
type PostUpdate struct {
	Title       *string   `json:"title" validate:"omitnil,min=1,max=255"`
	Description *string   `json:"description" validate:"omitnil,max=10000"`
	IsPrivate   *bool     `json:"is_private"`
	Tags        *[]string `json:"tags"`
}

// Pagination bounds applied by the post service.
const (
	MinPage         = 1
	MinPageSize     = 1
	MaxPageSize     = 100
	DefaultPageSize = 10
)

// PostPage is one page of a creator's posts, newest first.
type PostPage struct {
	Items      []Post `json:"posts"`
	Total      int64  `json:"total"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
	TotalPages int    `json:"total_pages"`
}
