package rpc

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/MKhiriev/go-post-hub/models"
)

// Post is the wire form of a post.
type Post struct {
	ID          int64
	Title       string
	Description string
	CreatorID   int64
	IsPrivate   bool
	Tags        []string
	CreatedAt   *timestamppb.Timestamp
	UpdatedAt   *timestamppb.Timestamp
}

type CreatePostRequest struct {
	CreatorID   int64
	Title       string
	Description string
	IsPrivate   bool
	Tags        []string
}

type GetPostRequest struct {
	ID       int64
	ViewerID int64
}

// UpdatePostRequest carries only the fields to change. A nil field is absent;
// a present empty tags list clears the tags.
type UpdatePostRequest struct {
	ID          int64
	CallerID    int64
	Title       *string
	Description *string
	IsPrivate   *bool
	Tags        *[]string
}

type DeletePostRequest struct {
	ID       int64
	CallerID int64
}

type ListPostsRequest struct {
	CreatorID int64
	Page      int32
	PageSize  int32
}

type ListPostsResponse struct {
	Posts      []*Post
	Total      int64
	Page       int32
	PageSize   int32
	TotalPages int32
}

// PostFromModel converts a domain post to its wire form.
func PostFromModel(post models.Post) *Post {
	tags := post.Tags
	if tags == nil {
		tags = []string{}
	}

	return &Post{
		ID:          post.ID,
		Title:       post.Title,
		Description: post.Description,
		CreatorID:   post.CreatorID,
		IsPrivate:   post.IsPrivate,
		Tags:        tags,
		CreatedAt:   timestamppb.New(post.CreatedAt),
		UpdatedAt:   timestamppb.New(post.UpdatedAt),
	}
}

// Model converts the wire post back to the domain type.
func (p *Post) Model() models.Post {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}

	return models.Post{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		CreatorID:   p.CreatorID,
		IsPrivate:   p.IsPrivate,
		Tags:        tags,
		CreatedAt:   asTime(p.CreatedAt),
		UpdatedAt:   asTime(p.UpdatedAt),
	}
}

func (r *CreatePostRequest) Model() models.NewPost {
	return models.NewPost{
		CreatorID:   r.CreatorID,
		Title:       r.Title,
		Description: r.Description,
		IsPrivate:   r.IsPrivate,
		Tags:        r.Tags,
	}
}

func (r *UpdatePostRequest) Model() models.PostUpdate {
	return models.PostUpdate{
		Title:       r.Title,
		Description: r.Description,
		IsPrivate:   r.IsPrivate,
		Tags:        r.Tags,
	}
}

// PageFromModel converts a domain page to the list response.
func PageFromModel(page models.PostPage) *ListPostsResponse {
	posts := make([]*Post, 0, len(page.Items))
	for _, post := range page.Items {
		posts = append(posts, PostFromModel(post))
	}

	return &ListPostsResponse{
		Posts:      posts,
		Total:      page.Total,
		Page:       int32(page.Page),
		PageSize:   int32(page.PageSize),
		TotalPages: int32(page.TotalPages),
	}
}

func (r *ListPostsResponse) Model() models.PostPage {
	items := make([]models.Post, 0, len(r.Posts))
	for _, post := range r.Posts {
		items = append(items, post.Model())
	}

	return models.PostPage{
		Items:      items,
		Total:      r.Total,
		Page:       int(r.Page),
		PageSize:   int(r.PageSize),
		TotalPages: int(r.TotalPages),
	}
}

func asTime(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}
