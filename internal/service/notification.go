package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"docshare/internal/model"
	"docshare/internal/repository"
)

// NotificationService manages the append-only notification feed. Rows
// are created by the sharing workflow and only ever mutated through the
// read/unread transition.
type NotificationService interface {
	// Create appends an unread notification for the target user, who must
	// exist.
	Create(ctx context.Context, targetUserID, content string, relatedDocumentID, relatedActorID *string) (*model.Notification, error)

	// MarkRead flags one notification as read. Only the target user may
	// do so; marking an already-read notification again is a no-op.
	MarkRead(ctx context.Context, actorID, id string) error

	// MarkAllRead flags every unread notification of the user as read.
	MarkAllRead(ctx context.Context, userID string) error

	// ListUnread returns the user's unread notifications, newest first.
	ListUnread(ctx context.Context, userID string) ([]model.Notification, error)

	// ListRead returns the user's read notifications, newest first.
	ListRead(ctx context.Context, userID string) ([]model.Notification, error)
}

type notificationService struct {
	repo  repository.NotificationRepository
	users repository.UserRepository
}

// NewNotificationService constructs a new NotificationService.
func NewNotificationService(repo repository.NotificationRepository, users repository.UserRepository) NotificationService {
	return &notificationService{repo: repo, users: users}
}

func (s *notificationService) Create(ctx context.Context, targetUserID, content string, relatedDocumentID, relatedActorID *string) (*model.Notification, error) {
	if targetUserID == "" {
		return nil, ErrIDRequired
	}
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}
	if _, err := s.users.FindByID(ctx, targetUserID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	n := &model.Notification{
		ID:                uuid.New().String(),
		UserID:            targetUserID,
		Content:           content,
		IsRead:            false,
		CreatedAt:         time.Now().UTC(),
		RelatedDocumentID: relatedDocumentID,
		RelatedUserID:     relatedActorID,
	}
	return s.repo.Create(ctx, n)
}

func (s *notificationService) MarkRead(ctx context.Context, actorID, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if n.UserID != actorID {
		return ErrForbidden
	}
	if n.IsRead {
		return nil
	}
	return s.repo.MarkRead(ctx, id)
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrIDRequired
	}
	return s.repo.MarkAllRead(ctx, userID)
}

func (s *notificationService) ListUnread(ctx context.Context, userID string) ([]model.Notification, error) {
	if userID == "" {
		return nil, ErrIDRequired
	}
	return s.repo.ListByUser(ctx, userID, false)
}

func (s *notificationService) ListRead(ctx context.Context, userID string) ([]model.Notification, error) {
	if userID == "" {
		return nil, ErrIDRequired
	}
	return s.repo.ListByUser(ctx, userID, true)
}
