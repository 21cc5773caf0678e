package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-post-hub/models"
)

var userColumns = []string{
	"id", "login", "password_hash", "email",
	"first_name", "last_name", "birth_date", "phone_number",
	"created_at", "updated_at",
}

var postColumns = []string{
	"id", "title", "description", "creator_id", "is_private", "created_at", "updated_at",
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert("users").
		Columns("login", "password_hash", "email", "created_at", "updated_at").
		Values(user.Login, user.PasswordHash, user.Email, user.CreatedAt, user.UpdatedAt).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildSelectUserQuery(b sq.StatementBuilderType, column string, value any) (string, []any, error) {
	return b.Select(userColumns...).
		From("users").
		Where(sq.Eq{column: value}).
		ToSql()
}

func buildUpdateUserQuery(b sq.StatementBuilderType, id int64, update models.UserUpdate, updatedAt time.Time) (string, []any, error) {
	query := b.Update("users").Set("updated_at", updatedAt)

	if update.FirstName != nil {
		query = query.Set("first_name", *update.FirstName)
	}
	if update.LastName != nil {
		query = query.Set("last_name", *update.LastName)
	}
	if update.BirthDate != nil {
		query = query.Set("birth_date", *update.BirthDate)
	}
	if update.Email != nil {
		query = query.Set("email", *update.Email)
	}
	if update.PhoneNumber != nil {
		query = query.Set("phone_number", *update.PhoneNumber)
	}

	return query.Where(sq.Eq{"id": id}).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildInsertPostQuery(b sq.StatementBuilderType, post models.Post) (string, []any, error) {
	return b.Insert("posts").
		Columns("title", "description", "creator_id", "is_private", "created_at", "updated_at").
		Values(post.Title, post.Description, post.CreatorID, post.IsPrivate, post.CreatedAt, post.UpdatedAt).
		Suffix(returning(postColumns)).
		ToSql()
}

func buildSelectPostQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(postColumns...).
		From("posts").
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildUpdatePostQuery(b sq.StatementBuilderType, id int64, update models.PostUpdate, updatedAt time.Time) (string, []any, error) {
	query := b.Update("posts").Set("updated_at", updatedAt)

	if update.Title != nil {
		query = query.Set("title", *update.Title)
	}
	if update.Description != nil {
		query = query.Set("description", *update.Description)
	}
	if update.IsPrivate != nil {
		query = query.Set("is_private", *update.IsPrivate)
	}

	return query.Where(sq.Eq{"id": id}).
		Suffix(returning(postColumns)).
		ToSql()
}

func buildDeletePostQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete("posts").Where(sq.Eq{"id": id}).ToSql()
}

func buildDeletePostTagsQuery(b sq.StatementBuilderType, postID int64) (string, []any, error) {
	return b.Delete("post_tags").Where(sq.Eq{"post_id": postID}).ToSql()
}

// buildInsertTagsQuery creates the missing tags; existing names are skipped.
func buildInsertTagsQuery(b sq.StatementBuilderType, names []string) (string, []any, error) {
	query := b.Insert("tags").Columns("name")
	for _, name := range names {
		query = query.Values(name)
	}

	return query.Suffix("ON CONFLICT (name) DO NOTHING").ToSql()
}

func buildSelectTagIDsQuery(b sq.StatementBuilderType, names []string) (string, []any, error) {
	return b.Select("id").
		From("tags").
		Where(sq.Eq{"name": names}).
		ToSql()
}

func buildInsertPostTagsQuery(b sq.StatementBuilderType, postID int64, tagIDs []int64) (string, []any, error) {
	query := b.Insert("post_tags").Columns("post_id", "tag_id")
	for _, tagID := range tagIDs {
		query = query.Values(postID, tagID)
	}

	return query.ToSql()
}

func buildSelectPostTagsQuery(b sq.StatementBuilderType, postIDs []int64) (string, []any, error) {
	return b.Select("pt.post_id", "t.name").
		From("post_tags pt").
		Join("tags t ON t.id = pt.tag_id").
		Where(sq.Eq{"pt.post_id": postIDs}).
		OrderBy("pt.post_id", "t.name").
		ToSql()
}

func buildListPostsQuery(b sq.StatementBuilderType, creatorID int64, limit, offset uint64) (string, []any, error) {
	return b.Select(postColumns...).
		From("posts").
		Where(sq.Eq{"creator_id": creatorID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(limit).
		Offset(offset).
		ToSql()
}

func buildCountPostsQuery(b sq.StatementBuilderType, creatorID int64) (string, []any, error) {
	return b.Select("COUNT(*)").
		From("posts").
		Where(sq.Eq{"creator_id": creatorID}).
		ToSql()
}
