package gateway

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-post-hub/internal/logger"
	"github.com/MKhiriev/go-post-hub/internal/utils"
	"github.com/MKhiriev/go-post-hub/models"
)

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, _ := utils.GetUserIDFromContext(ctx)

	var newPost models.NewPost
	if err := json.NewDecoder(r.Body).Decode(&newPost); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}
	if err := h.validator.Validate(ctx, newPost); err != nil {
		h.writeError(w, r, err)
		return
	}
	newPost.CreatorID = callerID

	post, err := h.posts.CreatePost(ctx, newPost)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("post_id", post.ID).Msg("post created")
	if _, err = utils.WriteJSON(w, post, http.StatusCreated); err != nil {
		log.Err(err).Msg("error writing response")
	}
}

// listPosts returns a page of the caller's own posts. Absent paging
// parameters default to the first page of [models.DefaultPageSize] posts;
// out-of-range values are clamped by the posts service.
func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, _ := utils.GetUserIDFromContext(ctx)

	page, err := queryInt(r, "page", models.MinPage)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	pageSize, err := queryInt(r, "page_size", models.DefaultPageSize)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	posts, err := h.posts.ListPosts(ctx, callerID, page, pageSize)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, posts, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing response")
	}
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, _ := utils.GetUserIDFromContext(ctx)

	postID, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	post, err := h.posts.GetPost(ctx, postID, callerID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, post, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing response")
	}
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, _ := utils.GetUserIDFromContext(ctx)

	postID, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	var update models.PostUpdate
	if err = json.NewDecoder(r.Body).Decode(&update); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}
	if err = h.validator.Validate(ctx, update); err != nil {
		h.writeError(w, r, err)
		return
	}

	post, err := h.posts.UpdatePost(ctx, postID, callerID, update)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("post_id", post.ID).Msg("post updated")
	if _, err = utils.WriteJSON(w, post, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing response")
	}
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	callerID, _ := utils.GetUserIDFromContext(ctx)

	postID, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err = h.posts.DeletePost(ctx, postID, callerID); err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("post_id", postID).Msg("post deleted")
	w.WriteHeader(http.StatusNoContent)
}

// pathID parses the {id} route parameter as a positive integer.
func pathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: id must be a positive integer, got %q", ErrInvalidParam, raw)
	}
	return id, nil
}

// queryInt parses the query parameter name as a 32-bit integer, returning def
// when it is absent.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}

	value, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a 32-bit integer, got %q", ErrInvalidParam, name, raw)
	}
	return int(value), nil
}
