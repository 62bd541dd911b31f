package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"docshare/internal/config"
	"docshare/internal/model"
	"docshare/internal/permission"
	"docshare/internal/repository"
	"docshare/internal/storage"
)

// presignExpiry is how long a download URL stays valid.
const presignExpiry = 15 * time.Minute

// UploadInput carries the metadata of a document upload. The file bytes
// arrive separately as a stream.
type UploadInput struct {
	Title       string
	Description string
	Filename    string
	ContentType string
	Size        int64
	IsPublic    bool
}

// UpdateDocumentInput carries the mutable document fields.
type UpdateDocumentInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	IsPublic    bool   `json:"is_public"`
}

// DocumentListResult is the service-level DTO for paginated documents.
type DocumentListResult struct {
	Items []model.Document `json:"data"`
	Total int              `json:"total"`
}

// DocumentService defines the use cases for handling documents. Every
// operation takes the explicit acting user; access is resolved through
// the permission evaluator, never through ambient state.
type DocumentService interface {
	// Upload streams the content to object storage and saves metadata to
	// the DB, rolling the storage object back if the DB save fails.
	Upload(ctx context.Context, actorID string, r io.Reader, in UploadInput) (*model.Document, error)

	// Get returns a document the actor can at least view.
	Get(ctx context.Context, actorID, id string) (*model.Document, error)

	// Download returns a presigned URL for a document the actor can view.
	Download(ctx context.Context, actorID, id string) (string, error)

	// Update edits title/description/visibility; requires edit permission.
	Update(ctx context.Context, actorID, id string, in UpdateDocumentInput) (*model.Document, error)

	// Delete removes the blob and, in one transaction, the document row
	// and all its grants. Owner only.
	Delete(ctx context.Context, actorID, id string) error

	// ListOwned returns the user's own documents, newest first.
	ListOwned(ctx context.Context, userID string, limit, offset int) (*DocumentListResult, error)
}

type documentService struct {
	store   storage.Storage
	repo    repository.DocumentRepository
	collabs repository.CollaborationRepository
	uploads config.UploadConfig
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(store storage.Storage, repo repository.DocumentRepository, collabs repository.CollaborationRepository, uploads config.UploadConfig) DocumentService {
	return &documentService{store: store, repo: repo, collabs: collabs, uploads: uploads}
}

// effective resolves the actor's permission on doc by loading the grant
// state and delegating to the pure evaluator.
func (s *documentService) effective(ctx context.Context, actorID string, doc *model.Document) (model.Permission, error) {
	grant, err := s.collabs.FindByDocumentAndUser(ctx, doc.ID, actorID)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return model.PermissionNone, err
		}
		grant = nil
	}
	return permission.Effective(actorID, doc, grant), nil
}

func (s *documentService) extensionAllowed(ext string) bool {
	for _, allowed := range s.uploads.AllowedExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

func (s *documentService) Upload(ctx context.Context, actorID string, r io.Reader, in UploadInput) (*model.Document, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, ErrTitleRequired
	}
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(in.Filename), "."))
	if ext == "" || !s.extensionAllowed(ext) {
		return nil, ErrFileTypeNotAllowed
	}
	if in.Size <= 0 || in.Size > s.uploads.MaxSizeBytes {
		return nil, ErrFileTooLarge
	}

	// Generate the stored object name with a UUID to prevent collisions.
	key := filepath.ToSlash(filepath.Join("documents", uuid.New().String()+"."+ext))

	objInfo, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        in.Size,
		ContentType: in.ContentType,
		Metadata: map[string]string{
			"original-filename": in.Filename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	now := time.Now().UTC()
	doc := &model.Document{
		ID:           uuid.New().String(),
		Title:        strings.TrimSpace(in.Title),
		Description:  in.Description,
		OwnerID:      actorID,
		StoragePath:  objInfo.Key,
		FileType:     ext,
		FileSize:     objInfo.Size,
		ContentType:  in.ContentType,
		IsPublic:     in.IsPublic,
		UploadedAt:   now,
		LastModified: now,
	}
	stored, err := s.repo.Create(ctx, doc)
	if err != nil {
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

func (s *documentService) Get(ctx context.Context, actorID, id string) (*model.Document, error) {
	doc, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	perm, err := s.effective(ctx, actorID, doc)
	if err != nil {
		return nil, err
	}
	if !perm.Satisfies(model.PermissionView) {
		return nil, ErrForbidden
	}
	return doc, nil
}

func (s *documentService) Download(ctx context.Context, actorID, id string) (string, error) {
	doc, err := s.Get(ctx, actorID, id)
	if err != nil {
		return "", err
	}
	url, err := s.store.PresignGet(ctx, doc.StoragePath, presignExpiry)
	if err != nil {
		return "", fmt.Errorf("presign download: %w", err)
	}
	return url, nil
}

func (s *documentService) Update(ctx context.Context, actorID, id string, in UpdateDocumentInput) (*model.Document, error) {
	doc, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	perm, err := s.effective(ctx, actorID, doc)
	if err != nil {
		return nil, err
	}
	if !perm.Satisfies(model.PermissionEdit) {
		return nil, ErrForbidden
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, ErrTitleRequired
	}

	doc.Title = strings.TrimSpace(in.Title)
	doc.Description = in.Description
	doc.IsPublic = in.IsPublic
	doc.LastModified = time.Now().UTC()

	return s.repo.Update(ctx, doc)
}

func (s *documentService) Delete(ctx context.Context, actorID, id string) error {
	doc, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	// Deleting is reserved to the owner; an edit grant is not enough.
	if !doc.IsOwnedBy(actorID) {
		return ErrForbidden
	}
	// Delete from storage first; if this fails, keep DB rows so the
	// storage reference is not lost.
	if err := s.store.Delete(ctx, doc.StoragePath); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	if err := s.repo.DeleteWithGrants(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *documentService) ListOwned(ctx context.Context, userID string, limit, offset int) (*DocumentListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.ListByOwner(ctx, userID, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &DocumentListResult{Items: res.Items, Total: res.Total}, nil
}

func (s *documentService) find(ctx context.Context, id string) (*model.Document, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}
