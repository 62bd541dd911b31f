package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"docshare/internal/model"
	"docshare/internal/repository"
)

var documentRowColumns = []string{
	"id", "title", "description", "owner_id", "storage_path", "file_type",
	"file_size", "content_type", "is_public", "uploaded_at", "last_modified",
}

func documentRow(doc *model.Document) *sqlmock.Rows {
	return sqlmock.NewRows(documentRowColumns).
		AddRow(doc.ID, doc.Title, doc.Description, doc.OwnerID, doc.StoragePath,
			doc.FileType, doc.FileSize, doc.ContentType, doc.IsPublic,
			doc.UploadedAt, doc.LastModified)
}

func TestDocumentPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	doc := &model.Document{
		ID:           "test-uuid",
		Title:        "Report",
		Description:  "quarterly numbers",
		OwnerID:      "owner-1",
		StoragePath:  "documents/test.pdf",
		FileType:     "pdf",
		FileSize:     123,
		ContentType:  "application/pdf",
		IsPublic:     false,
		UploadedAt:   now,
		LastModified: now,
	}

	mock.ExpectQuery("INSERT INTO documents").
		WithArgs(doc.ID, doc.Title, doc.Description, doc.OwnerID, doc.StoragePath,
			doc.FileType, doc.FileSize, doc.ContentType, doc.IsPublic,
			doc.UploadedAt, doc.LastModified).
		WillReturnRows(documentRow(doc))

	result, err := repo.Create(ctx, doc)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, doc.ID, result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		now := time.Now().UTC()
		doc := &model.Document{ID: "test-id", Title: "Report", OwnerID: "owner-1",
			StoragePath: "documents/a.pdf", FileType: "pdf", FileSize: 100,
			ContentType: "application/pdf", UploadedAt: now, LastModified: now}

		mock.ExpectQuery("SELECT (.+) FROM documents WHERE id = ?").
			WithArgs("test-id").
			WillReturnRows(documentRow(doc))

		got, err := repo.FindByID(ctx, "test-id")

		assert.NoError(t, err)
		assert.Equal(t, "test-id", got.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM documents WHERE id = ?").
			WithArgs("missing-id").
			WillReturnError(sql.ErrNoRows)

		got, err := repo.FindByID(ctx, "missing-id")

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, got)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentPostgres_ListByOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT COUNT").
		WithArgs("owner-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	rows := sqlmock.NewRows(documentRowColumns).
		AddRow("doc-2", "Newest", "", "owner-1", "documents/b.pdf", "pdf", 10, "application/pdf", false, now, now).
		AddRow("doc-1", "Older", "", "owner-1", "documents/a.pdf", "pdf", 10, "application/pdf", true, now.Add(-time.Hour), now.Add(-time.Hour))

	mock.ExpectQuery("SELECT (.+) FROM documents").
		WithArgs("owner-1", 2, 0).
		WillReturnRows(rows)

	res, err := repo.ListByOwner(ctx, "owner-1", repository.PageQuery{Limit: 2, Offset: 0})

	assert.NoError(t, err)
	assert.Equal(t, 12, res.Total)
	assert.Len(t, res.Items, 2)
	assert.Equal(t, "doc-2", res.Items[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentPostgres_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewDocumentPostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	doc := &model.Document{ID: "doc-1", Title: "New title", Description: "d",
		OwnerID: "owner-1", StoragePath: "documents/a.pdf", FileType: "pdf",
		FileSize: 10, ContentType: "application/pdf", IsPublic: true,
		UploadedAt: now, LastModified: now}

	mock.ExpectQuery("UPDATE documents").
		WithArgs(doc.ID, doc.Title, doc.Description, doc.IsPublic, doc.LastModified).
		WillReturnRows(documentRow(doc))

	got, err := repo.Update(ctx, doc)

	assert.NoError(t, err)
	assert.Equal(t, "New title", got.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentPostgres_DeleteWithGrants(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes grants and document in one transaction", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
		}
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM collaborations WHERE document_id").
			WithArgs("doc-1").
			WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectExec("DELETE FROM documents WHERE id").
			WithArgs("doc-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		repo := NewDocumentPostgres(db)
		assert.NoError(t, repo.DeleteWithGrants(ctx, "doc-1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing document rolls back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
		}
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM collaborations WHERE document_id").
			WithArgs("missing-id").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("DELETE FROM documents WHERE id").
			WithArgs("missing-id").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		repo := NewDocumentPostgres(db)
		assert.ErrorIs(t, repo.DeleteWithGrants(ctx, "missing-id"), sql.ErrNoRows)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("grant delete failure rolls back", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
		}
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM collaborations WHERE document_id").
			WithArgs("doc-1").
			WillReturnError(errors.New("db down"))
		mock.ExpectRollback()

		repo := NewDocumentPostgres(db)
		err = repo.DeleteWithGrants(ctx, "doc-1")
		assert.EqualError(t, err, "delete grants: db down")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
