package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"docshare/internal/model"
	"docshare/internal/permission"
	"docshare/internal/repository"
)

// SharingService orchestrates the lifecycle of a collaboration grant:
// absent -> granted -> (updated)* -> absent. Every transition requires
// the actor to be the document's owner; an edit grant does not confer
// sharing rights. State changes propagate to the grantee as
// notifications.
type SharingService interface {
	// Share grants granteeID the given level on the document, or updates
	// the level when a grant already exists. The bool result reports
	// whether the grant was newly created. The grantee is notified.
	Share(ctx context.Context, actorID, documentID, granteeID string, level model.Permission) (*model.Collaboration, bool, error)

	// Unshare revokes granteeID's grant and notifies them.
	Unshare(ctx context.Context, actorID, documentID, granteeID string) error

	// EffectivePermission resolves the permission userID actually has on
	// the document after ownership and grant state.
	EffectivePermission(ctx context.Context, userID, documentID string) (model.Permission, error)

	// HasPermission reports whether userID's effective permission is at
	// least required.
	HasPermission(ctx context.Context, userID, documentID string, required model.Permission) (bool, error)

	// ListCollaborators returns the grants on a document. Owner only.
	ListCollaborators(ctx context.Context, actorID, documentID string) ([]model.Collaboration, error)

	// ListSharedWith returns the grants held by a user.
	ListSharedWith(ctx context.Context, userID string) ([]model.Collaboration, error)
}

type sharingService struct {
	docs    repository.DocumentRepository
	users   repository.UserRepository
	collabs repository.CollaborationRepository
	notifs  NotificationService
}

// NewSharingService constructs a new SharingService.
func NewSharingService(docs repository.DocumentRepository, users repository.UserRepository, collabs repository.CollaborationRepository, notifs NotificationService) SharingService {
	return &sharingService{docs: docs, users: users, collabs: collabs, notifs: notifs}
}

func (s *sharingService) Share(ctx context.Context, actorID, documentID, granteeID string, level model.Permission) (*model.Collaboration, bool, error) {
	if !level.Valid() {
		return nil, false, ErrInvalidPermission
	}
	doc, err := s.findDocument(ctx, documentID)
	if err != nil {
		return nil, false, err
	}
	if !doc.IsOwnedBy(actorID) {
		return nil, false, ErrForbidden
	}
	if granteeID == doc.OwnerID {
		return nil, false, ErrInvalidGrantee
	}
	grantee, err := s.users.FindByID(ctx, granteeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, ErrNotFound
		}
		return nil, false, err
	}
	actor, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		return nil, false, err
	}

	grant, created, err := s.collabs.Upsert(ctx, &model.Collaboration{
		ID:         uuid.New().String(),
		DocumentID: doc.ID,
		UserID:     grantee.ID,
		Permission: level,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		return nil, false, err
	}

	content := fmt.Sprintf("%s has shared a document '%s' with you.", actor.Username, doc.Title)
	if !created {
		content = fmt.Sprintf("%s has changed your access to the document '%s'.", actor.Username, doc.Title)
	}
	if _, err := s.notifs.Create(ctx, grantee.ID, content, &doc.ID, &actor.ID); err != nil {
		return nil, false, fmt.Errorf("notify grantee: %w", err)
	}
	return grant, created, nil
}

func (s *sharingService) Unshare(ctx context.Context, actorID, documentID, granteeID string) error {
	doc, err := s.findDocument(ctx, documentID)
	if err != nil {
		return err
	}
	if !doc.IsOwnedBy(actorID) {
		return ErrForbidden
	}
	actor, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		return err
	}

	if err := s.collabs.Delete(ctx, doc.ID, granteeID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}

	content := fmt.Sprintf("%s has removed you from the document '%s'.", actor.Username, doc.Title)
	if _, err := s.notifs.Create(ctx, granteeID, content, &doc.ID, &actor.ID); err != nil {
		return fmt.Errorf("notify grantee: %w", err)
	}
	return nil
}

func (s *sharingService) EffectivePermission(ctx context.Context, userID, documentID string) (model.Permission, error) {
	doc, err := s.findDocument(ctx, documentID)
	if err != nil {
		return model.PermissionNone, err
	}
	grant, err := s.collabs.FindByDocumentAndUser(ctx, doc.ID, userID)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return model.PermissionNone, err
		}
		grant = nil
	}
	return permission.Effective(userID, doc, grant), nil
}

func (s *sharingService) HasPermission(ctx context.Context, userID, documentID string, required model.Permission) (bool, error) {
	perm, err := s.EffectivePermission(ctx, userID, documentID)
	if err != nil {
		return false, err
	}
	return perm.Satisfies(required), nil
}

func (s *sharingService) ListCollaborators(ctx context.Context, actorID, documentID string) ([]model.Collaboration, error) {
	doc, err := s.findDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if !doc.IsOwnedBy(actorID) {
		return nil, ErrForbidden
	}
	return s.collabs.ListByDocument(ctx, doc.ID)
}

func (s *sharingService) ListSharedWith(ctx context.Context, userID string) ([]model.Collaboration, error) {
	if userID == "" {
		return nil, ErrIDRequired
	}
	return s.collabs.ListByUser(ctx, userID)
}

func (s *sharingService) findDocument(ctx context.Context, id string) (*model.Document, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	doc, err := s.docs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}
