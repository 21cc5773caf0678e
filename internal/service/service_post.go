package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-post-hub/internal/logger"
	"github.com/MKhiriev/go-post-hub/internal/store"
	"github.com/MKhiriev/go-post-hub/internal/utils"
	"github.com/MKhiriev/go-post-hub/models"
)

// postService is the concrete implementation of PostService. Ownership is
// checked against the stored creator before any write.
type postService struct {
	postRepository store.PostRepository
	clock          utils.Clock
	logger         *logger.Logger
}

// NewPostService constructs a PostService backed by postRepository.
func NewPostService(postRepository store.PostRepository, clock utils.Clock, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		clock:          clock,
		logger:         logger,
	}
}

func (p *postService) Create(ctx context.Context, newPost models.NewPost) (models.Post, error) {
	now := p.clock.Now().UTC()

	post, err := p.postRepository.Create(ctx, models.Post{
		Title:       newPost.Title,
		Description: newPost.Description,
		CreatorID:   newPost.CreatorID,
		IsPrivate:   newPost.IsPrivate,
		Tags:        normalizeTags(newPost.Tags),
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return models.Post{}, fmt.Errorf("post creation ended with error: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("post_id", post.ID).Int64("creator_id", post.CreatorID).Msg("post created")
	return post, nil
}

// Get returns the post if viewerID may read it. Private posts are visible
// to their creator only.
func (p *postService) Get(ctx context.Context, id, viewerID int64) (models.Post, error) {
	post, err := p.find(ctx, id)
	if err != nil {
		return models.Post{}, err
	}

	if post.IsPrivate && post.CreatorID != viewerID {
		return models.Post{}, ErrForbidden
	}

	return post, nil
}

// Update applies update when callerID owns the post. The tag set, when
// present, replaces the stored one.
func (p *postService) Update(ctx context.Context, id, callerID int64, update models.PostUpdate) (models.Post, error) {
	if _, err := p.owned(ctx, id, callerID); err != nil {
		return models.Post{}, err
	}

	if update.Tags != nil {
		tags := normalizeTags(*update.Tags)
		update.Tags = &tags
	}

	post, err := p.postRepository.Update(ctx, id, update, p.clock.Now().UTC())
	if errors.Is(err, store.ErrPostNotFound) {
		return models.Post{}, ErrPostNotFound
	}
	if err != nil {
		return models.Post{}, fmt.Errorf("post update ended with error: %w", err)
	}

	return post, nil
}

// Delete removes the post when callerID owns it.
func (p *postService) Delete(ctx context.Context, id, callerID int64) error {
	if _, err := p.owned(ctx, id, callerID); err != nil {
		return err
	}

	err := p.postRepository.Delete(ctx, id)
	if errors.Is(err, store.ErrPostNotFound) {
		return ErrPostNotFound
	}
	if err != nil {
		return fmt.Errorf("post deletion ended with error: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("post_id", id).Msg("post deleted")
	return nil
}

// List returns one page of creatorID's posts, newest first. page is floored
// to 1 and pageSize is clamped to [1, 100].
func (p *postService) List(ctx context.Context, creatorID int64, page, pageSize int) (models.PostPage, error) {
	page, pageSize = clampPage(page, pageSize)

	total, err := p.postRepository.CountByCreator(ctx, creatorID)
	if err != nil {
		return models.PostPage{}, fmt.Errorf("post count ended with error: %w", err)
	}

	items, err := p.postRepository.ListByCreator(ctx, creatorID, uint64(pageSize), uint64(page-1)*uint64(pageSize))
	if err != nil {
		return models.PostPage{}, fmt.Errorf("post listing ended with error: %w", err)
	}
	if items == nil {
		items = []models.Post{}
	}

	return models.PostPage{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

func (p *postService) find(ctx context.Context, id int64) (models.Post, error) {
	post, err := p.postRepository.Get(ctx, id)
	if errors.Is(err, store.ErrPostNotFound) {
		return models.Post{}, ErrPostNotFound
	}
	if err != nil {
		return models.Post{}, fmt.Errorf("post search ended with error: %w", err)
	}

	return post, nil
}

// owned returns the post if callerID is its creator. The creator never
// changes, so the check stays valid for the write that follows.
func (p *postService) owned(ctx context.Context, id, callerID int64) (models.Post, error) {
	post, err := p.find(ctx, id)
	if err != nil {
		return models.Post{}, err
	}

	if post.CreatorID != callerID {
		logger.FromContext(ctx).Debug().Int64("post_id", id).Int64("caller_id", callerID).Msg("caller does not own post")
		return models.Post{}, ErrForbidden
	}

	return post, nil
}

func clampPage(page, pageSize int) (int, int) {
	page = max(page, models.MinPage)
	pageSize = min(max(pageSize, models.MinPageSize), models.MaxPageSize)
	return page, pageSize
}

func totalPages(total int64, pageSize int) int {
	size := int64(pageSize)
	return int((total + size - 1) / size)
}

// normalizeTags trims names, drops blanks and keeps the first occurrence of
// each name.
func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		normalized = append(normalized, tag)
	}

	return normalized
}
