// Package moderation owns the post publication state machine: submission,
// claim exclusivity, approve/reject with admin override, ban/unban, and the
// report-threshold escalation. Every actor-driven state change appends exactly
// one ModerationLog row in the same transaction as the mutation.
package moderation

import (
	"log"
	"strings"
	"time"

	"devblogg/backend/internal/apperr"
	"devblogg/backend/internal/config"
	"devblogg/backend/internal/models"
	"devblogg/backend/internal/storage"
)

// Service is the moderation engine.
type Service struct {
	Storage storage.Storage

	// ReportThreshold is strict: a post escalates once its report count
	// exceeds it.
	ReportThreshold int64
}

// NewService creates a moderation engine with the default report threshold.
func NewService(s storage.Storage) *Service {
	return &Service{Storage: s, ReportThreshold: config.ReportThreshold}
}

// requireModerator rejects banned principals and non-moderation roles.
func requireModerator(principal models.Principal) error {
	if principal.IsBanned {
		return apperr.New(apperr.KindForbidden, "banned users cannot perform moderation actions")
	}
	if !principal.CanModerate() {
		return apperr.New(apperr.KindForbidden, "moderator or admin role required")
	}
	return nil
}

// SubmitForReview moves the author's own DRAFT post into the PENDING queue.
func (s *Service) SubmitForReview(principal models.Principal, postID string) (*models.Post, error) {
	if principal.IsBanned {
		return nil, apperr.New(apperr.KindForbidden, "banned users cannot submit posts")
	}

	post, err := s.Storage.GetPostByID(postID)
	if err != nil {
		return nil, err
	}
	if post.AuthorID != principal.UserID {
		return nil, apperr.New(apperr.KindForbidden, "only the author can submit a post for review")
	}
	if post.Status != models.PostStatusDraft {
		return nil, apperr.New(apperr.KindInvalidTransition, "only draft posts can be submitted for review")
	}

	moved, err := s.Storage.UpdatePostStatus(postID, models.PostStatusDraft, models.PostStatusPending)
	if err != nil {
		return nil, err
	}
	if !moved {
		return nil, apperr.New(apperr.KindInvalidTransition, "post is no longer a draft")
	}

	s.publish(models.ModerationEvent{
		Type:    models.EventPostPending,
		PostID:  postID,
		ActorID: principal.UserID,
		Status:  models.PostStatusPending.String(),
	})
	return s.Storage.GetPostByID(postID)
}

// Claim gives the moderator exclusive review assignment on the post. A repeat
// claim by the current assignee is a no-op that preserves the original claim
// time and writes no log; a claim on a post held by someone else fails with
// AlreadyClaimed. The unclaimed check and the write are a single atomic
// conditional update, so of two concurrent claims exactly one wins.
func (s *Service) Claim(principal models.Principal, postID string) (*models.Post, error) {
	if err := requireModerator(principal); err != nil {
		return nil, err
	}

	post, err := s.Storage.GetPostByID(postID)
	if err != nil {
		return nil, err
	}
	if post.Status != models.PostStatusPending && post.Status != models.PostStatusInReview {
		// Resolved posts keep their assignment, so the status decides first:
		// a claim on a PUBLISHED or REJECTED post is a bad transition, not a
		// claim conflict.
		return nil, apperr.New(apperr.KindInvalidTransition, "post is not awaiting review")
	}
	if post.Claimed() {
		if post.ClaimedBy(principal.UserID) {
			return post, nil
		}
		return nil, apperr.New(apperr.KindAlreadyClaimed, "post is already claimed by another moderator")
	}

	now := time.Now().UTC()
	entry := &models.ModerationLog{
		Action:       models.ActionClaimPost,
		ActorID:      principal.UserID,
		TargetPostID: &post.ID,
		Metadata:     models.Metadata{"from_status": post.Status.String()},
	}
	claimed, err := s.Storage.ClaimPost(postID, principal.UserID, now, entry)
	if err != nil {
		return nil, err
	}
	if !claimed {
		// Lost the race: someone else claimed between the read and the write.
		return nil, apperr.New(apperr.KindAlreadyClaimed, "post is already claimed by another moderator")
	}

	s.publish(models.ModerationEvent{
		Type:    models.EventPostClaimed,
		PostID:  postID,
		ActorID: principal.UserID,
		Status:  models.PostStatusInReview.String(),
	})
	return s.Storage.GetPostByID(postID)
}

// Approve publishes an IN_REVIEW post. Only the assigned moderator may act,
// unless the actor is an admin, in which case the override is recorded in the
// log metadata.
func (s *Service) Approve(principal models.Principal, postID string) (*models.Post, error) {
	return s.resolve(principal, postID, models.PostStatusPublished, "")
}

// Reject declines an IN_REVIEW post. The reason is mandatory and is stored on
// the audit entry. Same actor rule as Approve.
func (s *Service) Reject(principal models.Principal, postID, reason string) (*models.Post, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, apperr.New(apperr.KindValidation, "a reason is required to reject a post")
	}
	return s.resolve(principal, postID, models.PostStatusRejected, reason)
}

func (s *Service) resolve(principal models.Principal, postID string, to models.PostStatus, reason string) (*models.Post, error) {
	if err := requireModerator(principal); err != nil {
		return nil, err
	}

	post, err := s.Storage.GetPostByID(postID)
	if err != nil {
		return nil, err
	}
	if post.Status != models.PostStatusInReview {
		return nil, apperr.New(apperr.KindInvalidTransition, "post is not in review")
	}

	override := false
	if !post.ClaimedBy(principal.UserID) {
		if !principal.IsAdmin() {
			return nil, apperr.New(apperr.KindNotAssignedModerator, "post is assigned to a different moderator")
		}
		override = true
	}

	action := models.ActionApprovePost
	eventType := models.EventPostApproved
	var publishedAt *time.Time
	if to == models.PostStatusPublished {
		now := time.Now().UTC()
		publishedAt = &now
	} else {
		action = models.ActionRejectPost
		eventType = models.EventPostRejected
	}

	entry := &models.ModerationLog{
		Action:       action,
		ActorID:      principal.UserID,
		TargetPostID: &post.ID,
		Metadata:     models.Metadata{},
	}
	if reason != "" {
		entry.Reason = &reason
	}
	if override {
		entry.Metadata["admin_override"] = true
	}

	resolved, err := s.Storage.ResolvePost(postID, to, publishedAt, entry)
	if err != nil {
		return nil, err
	}
	if !resolved {
		return nil, apperr.New(apperr.KindInvalidTransition, "post is no longer in review")
	}

	s.publish(models.ModerationEvent{
		Type:    eventType,
		PostID:  postID,
		ActorID: principal.UserID,
		Status:  to.String(),
	})
	return s.Storage.GetPostByID(postID)
}

// BanUser flags the target account as banned. Already-banned targets are a
// no-op without a new audit entry. Enforcement of "banned users cannot post"
// happens at the authoring boundary; existing content is left untouched.
func (s *Service) BanUser(principal models.Principal, targetUserID, reason string) (*models.User, error) {
	return s.setBanned(principal, targetUserID, reason, true)
}

// UnbanUser clears the ban flag. Not-banned targets are a no-op.
func (s *Service) UnbanUser(principal models.Principal, targetUserID string) (*models.User, error) {
	return s.setBanned(principal, targetUserID, "", false)
}

func (s *Service) setBanned(principal models.Principal, targetUserID, reason string, banned bool) (*models.User, error) {
	if err := requireModerator(principal); err != nil {
		return nil, err
	}
	if principal.UserID == targetUserID {
		return nil, apperr.New(apperr.KindValidation, "cannot ban or unban yourself")
	}

	user, err := s.Storage.GetUserByID(targetUserID)
	if err != nil {
		return nil, err
	}
	if user.IsBanned == banned {
		return user, nil
	}

	action := models.ActionBanUser
	eventType := models.EventUserBanned
	var bannedAt *time.Time
	if banned {
		now := time.Now().UTC()
		bannedAt = &now
	} else {
		action = models.ActionUnbanUser
		eventType = models.EventUserUnbanned
	}

	entry := &models.ModerationLog{
		Action:       action,
		ActorID:      principal.UserID,
		TargetUserID: &user.ID,
		Metadata:     models.Metadata{"target_role": string(user.Role)},
	}
	if reason != "" {
		entry.Reason = &reason
	}

	if err := s.Storage.SetUserBanned(targetUserID, banned, bannedAt, entry); err != nil {
		return nil, err
	}

	s.publish(models.ModerationEvent{
		Type:    eventType,
		UserID:  targetUserID,
		ActorID: principal.UserID,
	})
	return s.Storage.GetUserByID(targetUserID)
}

// CheckReportThreshold recounts the post's reports and pulls it back into
// review once the count strictly exceeds the threshold and the post is
// PENDING or PUBLISHED. The transition is system-triggered and deliberately
// not written to the moderation log; only actor-driven actions are audited.
func (s *Service) CheckReportThreshold(postID string) (bool, error) {
	count, err := s.Storage.CountReports(postID)
	if err != nil {
		return false, err
	}
	if count <= s.ReportThreshold {
		return false, nil
	}

	escalated, err := s.Storage.EscalatePost(postID)
	if err != nil {
		return false, err
	}
	if escalated {
		s.publish(models.ModerationEvent{
			Type:        models.EventPostEscalated,
			PostID:      postID,
			Status:      models.PostStatusInReview.String(),
			ReportCount: count,
		})
	}
	return escalated, nil
}

// LogsFor exposes the audit trail for a target, newest first.
func (s *Service) LogsFor(targetPostID, targetUserID *string) ([]models.ModerationLog, error) {
	return s.Storage.LogsFor(targetPostID, targetUserID)
}

// publish fans an event out to dashboards and notifiers. Delivery failures
// must not undo a committed state change, so they are only logged.
func (s *Service) publish(event models.ModerationEvent) {
	event.At = time.Now().UTC()
	if err := s.Storage.PublishEvent(event); err != nil {
		log.Printf("WARNING: dropping %s event: %v", event.Type, err)
	}
}
