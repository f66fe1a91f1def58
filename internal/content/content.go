// Package content manages posts and comments: creation with slug assignment,
// soft deletion, and the read queries behind moderator dashboards. All posts
// start life as drafts; the moderation engine owns every later transition.
package content

import (
	"fmt"
	"log"
	"strings"

	"devblogg/backend/internal/apperr"
	"devblogg/backend/internal/config"
	"devblogg/backend/internal/models"
	"devblogg/backend/internal/storage"
)

// Service is the content store.
type Service struct {
	Storage storage.Storage
}

// NewService creates a content service.
func NewService(s storage.Storage) *Service {
	return &Service{Storage: s}
}

// CreatePostInput carries the author-supplied fields of a new post.
type CreatePostInput struct {
	Title   string   `json:"title"`
	Summary string   `json:"summary"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// CreatePost creates a DRAFT post with a unique slug derived from the title.
// Collisions get numeric suffixes (-2, -3, ...); the insert is retried on the
// unique-constraint violation so concurrent creations with the same title
// stay race-safe. Soft-deleted posts keep their slug reserved.
func (s *Service) CreatePost(principal models.Principal, input CreatePostInput) (*models.Post, error) {
	if principal.IsBanned {
		return nil, apperr.New(apperr.KindForbidden, "banned users cannot create posts")
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, apperr.New(apperr.KindValidation, "title is required")
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, apperr.New(apperr.KindValidation, "content is required")
	}

	base := Slugify(input.Title)
	if base == "" {
		base = "post"
	}

	for attempt := 1; attempt <= config.SlugMaxAttempts; attempt++ {
		slug := base
		if attempt > 1 {
			slug = fmt.Sprintf("%s-%d", base, attempt)
		}

		post := &models.Post{
			AuthorID: principal.UserID,
			Title:    strings.TrimSpace(input.Title),
			Slug:     slug,
			Summary:  input.Summary,
			Content:  input.Content,
			Tags:     input.Tags,
			Status:   models.PostStatusDraft,
		}
		err := s.Storage.CreatePost(post)
		if err == nil {
			return post, nil
		}
		if !apperr.Is(err, apperr.KindDuplicateSlug) {
			return nil, err
		}
	}

	log.Printf("ERROR: gave up assigning a slug for %q after %d attempts", base, config.SlugMaxAttempts)
	return nil, apperr.Internal()
}

// GetPost loads a post by ID; soft-deleted posts are absent.
func (s *Service) GetPost(postID string) (*models.Post, error) {
	return s.Storage.GetPostByID(postID)
}

// GetPostBySlug loads a post by slug; soft-deleted posts are absent.
func (s *Service) GetPostBySlug(slug string) (*models.Post, error) {
	return s.Storage.GetPostBySlug(slug)
}

// DeletePost soft-deletes a post. Only the author or an admin may do this;
// the row is retained for the audit trail and the slug stays taken.
func (s *Service) DeletePost(principal models.Principal, postID string) error {
	post, err := s.Storage.GetPostByID(postID)
	if err != nil {
		return err
	}
	if post.AuthorID != principal.UserID && !principal.IsAdmin() {
		return apperr.New(apperr.KindForbidden, "only the author or an admin can delete a post")
	}
	return s.Storage.SoftDeletePost(postID)
}

// AddComment attaches a comment to a post, optionally as a reply. The parent
// must be a live comment on the same post.
func (s *Service) AddComment(principal models.Principal, postID string, parentID *string, body string) (*models.Comment, error) {
	if principal.IsBanned {
		return nil, apperr.New(apperr.KindForbidden, "banned users cannot comment")
	}
	if strings.TrimSpace(body) == "" {
		return nil, apperr.New(apperr.KindValidation, "comment content is required")
	}

	if _, err := s.Storage.GetPostByID(postID); err != nil {
		return nil, err
	}
	if parentID != nil {
		parent, err := s.Storage.GetCommentByID(*parentID)
		if err != nil {
			return nil, err
		}
		if parent.PostID != postID {
			return nil, apperr.New(apperr.KindValidation, "parent comment belongs to a different post")
		}
	}

	comment := &models.Comment{
		PostID:   postID,
		AuthorID: principal.UserID,
		ParentID: parentID,
		Content:  body,
	}
	if err := s.Storage.CreateComment(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteComment soft-deletes a comment, independent of its post. Author or
// admin only.
func (s *Service) DeleteComment(principal models.Principal, commentID string) error {
	comment, err := s.Storage.GetCommentByID(commentID)
	if err != nil {
		return err
	}
	if comment.AuthorID != principal.UserID && !principal.IsAdmin() {
		return apperr.New(apperr.KindForbidden, "only the author or an admin can delete a comment")
	}
	return s.Storage.SoftDeleteComment(commentID)
}

// CommentsForPost lists a post's live comments in thread order.
func (s *Service) CommentsForPost(postID string) ([]models.Comment, error) {
	if _, err := s.Storage.GetPostByID(postID); err != nil {
		return nil, err
	}
	return s.Storage.CommentsForPost(postID)
}

// PostsByStatus lists non-deleted posts in a pipeline status.
func (s *Service) PostsByStatus(status models.PostStatus) ([]models.Post, error) {
	return s.Storage.PostsByStatus(status)
}

// ClaimedBy lists the posts a moderator currently holds for review.
func (s *Service) ClaimedBy(moderatorID string) ([]models.Post, error) {
	return s.Storage.PostsClaimedBy(moderatorID)
}
