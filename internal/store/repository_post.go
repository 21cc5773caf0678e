package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/go-post-hub/internal/logger"
	"github.com/MKhiriev/go-post-hub/models"
)

// postRepository is the SQL implementation of [PostRepository]. Posts live
// in the "posts" table; tags are shared rows in "tags" linked through
// "post_tags".
type postRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPostRepository constructs a [PostRepository] backed by db.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	logger.Debug().Msg("creating post repository")
	return &postRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts post together with its tags. Unknown tag names are created
// inside the same transaction.
func (r *postRepository) Create(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	var created models.Post
	err := r.db.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		query, args, err := buildInsertPostQuery(r.db.builder, post)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		created, err = scanPost(tx.QueryRowContext(ctx, query, args...))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		if err = r.attachTags(ctx, tx, created.ID, post.Tags); err != nil {
			return err
		}
		created.Tags = append([]string{}, post.Tags...)
		slices.Sort(created.Tags)

		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*postRepository.Create").Int64("creator_id", post.CreatorID).Msg("error creating post")
		return models.Post{}, err
	}

	return created, nil
}

// Get returns the post with id and its tags or [ErrPostNotFound].
func (r *postRepository) Get(ctx context.Context, id int64) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPostQuery(r.db.builder, id)
	if err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	post, err := scanPost(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Post{}, ErrPostNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*postRepository.Get").Int64("post_id", id).Msg("error selecting post")
		return models.Post{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	posts := []models.Post{post}
	if err = r.loadTags(ctx, r.db, posts); err != nil {
		log.Err(err).Str("func", "*postRepository.Get").Int64("post_id", id).Msg("error loading tags")
		return models.Post{}, err
	}

	return posts[0], nil
}

// Update applies the present fields of update in one transaction. When
// update.Tags is set the tag links are replaced, not merged.
func (r *postRepository) Update(ctx context.Context, id int64, update models.PostUpdate, updatedAt time.Time) (models.Post, error) {
	log := logger.FromContext(ctx)

	var updated models.Post
	err := r.db.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		query, args, err := buildUpdatePostQuery(r.db.builder, id, update, updatedAt)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		updated, err = scanPost(tx.QueryRowContext(ctx, query, args...))
		if errors.Is(err, sql.ErrNoRows) {
			return ErrPostNotFound
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		if update.Tags != nil {
			if err = r.detachTags(ctx, tx, id); err != nil {
				return err
			}
			if err = r.attachTags(ctx, tx, id, *update.Tags); err != nil {
				return err
			}
		}

		posts := []models.Post{updated}
		if err = r.loadTags(ctx, tx, posts); err != nil {
			return err
		}
		updated = posts[0]

		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrPostNotFound) {
			log.Err(err).Str("func", "*postRepository.Update").Int64("post_id", id).Msg("error updating post")
		}
		return models.Post{}, err
	}

	return updated, nil
}

// Delete removes the post and its tag links. Tags themselves are kept.
func (r *postRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	err := r.db.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		if err := r.detachTags(ctx, tx, id); err != nil {
			return err
		}

		query, args, err := buildDeletePostQuery(r.db.builder, id)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if affected == 0 {
			return ErrPostNotFound
		}

		return nil
	})
	if err != nil && !errors.Is(err, ErrPostNotFound) {
		log.Err(err).Str("func", "*postRepository.Delete").Int64("post_id", id).Msg("error deleting post")
	}

	return err
}

// ListByCreator returns one page of the creator's posts, newest first.
func (r *postRepository) ListByCreator(ctx context.Context, creatorID int64, limit, offset uint64) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPostsQuery(r.db.builder, creatorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*postRepository.ListByCreator").Int64("creator_id", creatorID).Msg("error listing posts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0, limit)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		posts = append(posts, post)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if err = r.loadTags(ctx, r.db, posts); err != nil {
		log.Err(err).Str("func", "*postRepository.ListByCreator").Int64("creator_id", creatorID).Msg("error loading tags")
		return nil, err
	}

	return posts, nil
}

// CountByCreator returns the number of posts owned by creatorID.
func (r *postRepository) CountByCreator(ctx context.Context, creatorID int64) (int64, error) {
	query, args, err := buildCountPostsQuery(r.db.builder, creatorID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*postRepository.CountByCreator").Msg("error counting posts")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return total, nil
}

// attachTags creates missing tags by name, then links them to postID.
func (r *postRepository) attachTags(ctx context.Context, tx DBTX, postID int64, names []string) error {
	if len(names) == 0 {
		return nil
	}

	query, args, err := buildInsertTagsQuery(r.db.builder, names)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	query, args, err = buildSelectTagIDsQuery(r.db.builder, names)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tagIDs := make([]int64, 0, len(names))
	for rows.Next() {
		var tagID int64
		if err = rows.Scan(&tagID); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		tagIDs = append(tagIDs, tagID)
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	query, args, err = buildInsertPostTagsQuery(r.db.builder, postID, tagIDs)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *postRepository) detachTags(ctx context.Context, tx DBTX, postID int64) error {
	query, args, err := buildDeletePostTagsQuery(r.db.builder, postID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// loadTags fills the Tags field of every post in place. Posts without tags
// get an empty, non-nil slice.
func (r *postRepository) loadTags(ctx context.Context, q DBTX, posts []models.Post) error {
	if len(posts) == 0 {
		return nil
	}

	ids := make([]int64, len(posts))
	index := make(map[int64]int, len(posts))
	for i := range posts {
		ids[i] = posts[i].ID
		index[posts[i].ID] = i
		posts[i].Tags = []string{}
	}

	query, args, err := buildSelectPostTagsQuery(r.db.builder, ids)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			postID int64
			name   string
		)
		if err = rows.Scan(&postID, &name); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if i, ok := index[postID]; ok {
			posts[i].Tags = append(posts[i].Tags, name)
		}
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return nil
}

func scanPost(row rowScanner) (models.Post, error) {
	var post models.Post
	err := row.Scan(
		&post.ID, &post.Title, &post.Description, &post.CreatorID,
		&post.IsPrivate, &post.CreatedAt, &post.UpdatedAt,
	)
	return post, err
}
