package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"docshare/internal/model"
	repoMocks "docshare/internal/repository/mocks"
)

func TestNotificationService_Create(t *testing.T) {
	ctx := context.Background()
	docID := "doc-1"
	actorID := "owner-1"

	tests := []struct {
		name       string
		targetID   string
		content    string
		setupMocks func(mRepo *repoMocks.MockNotificationRepository, mUsers *repoMocks.MockUserRepository)
		wantErr    error
	}{
		{
			name:     "happy path creates unread",
			targetID: "user-2",
			content:  "alice has shared a document 'Notes' with you.",
			setupMocks: func(mRepo *repoMocks.MockNotificationRepository, mUsers *repoMocks.MockUserRepository) {
				mUsers.On("FindByID", ctx, "user-2").Return(&model.User{ID: "user-2"}, nil)
				mRepo.On("Create", ctx, mock.MatchedBy(func(n *model.Notification) bool {
					return n.UserID == "user-2" && !n.IsRead && n.ID != "" &&
						n.RelatedDocumentID != nil && *n.RelatedDocumentID == docID &&
						n.RelatedUserID != nil && *n.RelatedUserID == actorID
				})).Return(&model.Notification{ID: "n-1"}, nil)
			},
		},
		{
			name:       "empty target",
			targetID:   "",
			content:    "hi",
			setupMocks: func(_ *repoMocks.MockNotificationRepository, _ *repoMocks.MockUserRepository) {},
			wantErr:    ErrIDRequired,
		},
		{
			name:       "blank content",
			targetID:   "user-2",
			content:    "   ",
			setupMocks: func(_ *repoMocks.MockNotificationRepository, _ *repoMocks.MockUserRepository) {},
			wantErr:    ErrValidation,
		},
		{
			name:     "target must exist",
			targetID: "ghost-9",
			content:  "hi",
			setupMocks: func(_ *repoMocks.MockNotificationRepository, mUsers *repoMocks.MockUserRepository) {
				mUsers.On("FindByID", ctx, "ghost-9").Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockNotificationRepository)
			mUsers := new(repoMocks.MockUserRepository)
			tt.setupMocks(mRepo, mUsers)

			svc := NewNotificationService(mRepo, mUsers)
			n, err := svc.Create(ctx, tt.targetID, tt.content, &docID, &actorID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, n)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, n)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestNotificationService_MarkRead(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		actorID    string
		id         string
		setupMocks func(mRepo *repoMocks.MockNotificationRepository)
		wantErr    error
	}{
		{
			name:    "happy path",
			actorID: "user-2",
			id:      "n-1",
			setupMocks: func(mRepo *repoMocks.MockNotificationRepository) {
				mRepo.On("FindByID", ctx, "n-1").Return(&model.Notification{ID: "n-1", UserID: "user-2"}, nil)
				mRepo.On("MarkRead", ctx, "n-1").Return(nil)
			},
		},
		{
			name:    "already read is a no-op",
			actorID: "user-2",
			id:      "n-1",
			setupMocks: func(mRepo *repoMocks.MockNotificationRepository) {
				mRepo.On("FindByID", ctx, "n-1").Return(&model.Notification{ID: "n-1", UserID: "user-2", IsRead: true}, nil)
				// no MarkRead expected
			},
		},
		{
			name:    "only the target user may mark",
			actorID: "intruder-3",
			id:      "n-1",
			setupMocks: func(mRepo *repoMocks.MockNotificationRepository) {
				mRepo.On("FindByID", ctx, "n-1").Return(&model.Notification{ID: "n-1", UserID: "user-2"}, nil)
			},
			wantErr: ErrForbidden,
		},
		{
			name:    "missing notification",
			actorID: "user-2",
			id:      "n-404",
			setupMocks: func(mRepo *repoMocks.MockNotificationRepository) {
				mRepo.On("FindByID", ctx, "n-404").Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
		{
			name:       "empty id",
			actorID:    "user-2",
			id:         "",
			setupMocks: func(_ *repoMocks.MockNotificationRepository) {},
			wantErr:    ErrIDRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockNotificationRepository)
			tt.setupMocks(mRepo)

			svc := NewNotificationService(mRepo, new(repoMocks.MockUserRepository))
			err := svc.MarkRead(ctx, tt.actorID, tt.id)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	ctx := context.Background()

	t.Run("delegates to repo", func(t *testing.T) {
		mRepo := new(repoMocks.MockNotificationRepository)
		mRepo.On("MarkAllRead", ctx, "user-2").Return(nil)

		svc := NewNotificationService(mRepo, new(repoMocks.MockUserRepository))
		assert.NoError(t, svc.MarkAllRead(ctx, "user-2"))
		mRepo.AssertExpectations(t)
	})

	t.Run("empty user id", func(t *testing.T) {
		svc := NewNotificationService(new(repoMocks.MockNotificationRepository), new(repoMocks.MockUserRepository))
		assert.ErrorIs(t, svc.MarkAllRead(ctx, ""), ErrIDRequired)
	})
}

func TestNotificationService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("unread and read use distinct filters", func(t *testing.T) {
		mRepo := new(repoMocks.MockNotificationRepository)
		mRepo.On("ListByUser", ctx, "user-2", false).Return([]model.Notification{{ID: "n-1"}}, nil)
		mRepo.On("ListByUser", ctx, "user-2", true).Return([]model.Notification{{ID: "n-2"}, {ID: "n-3"}}, nil)

		svc := NewNotificationService(mRepo, new(repoMocks.MockUserRepository))

		unread, err := svc.ListUnread(ctx, "user-2")
		assert.NoError(t, err)
		assert.Len(t, unread, 1)

		read, err := svc.ListRead(ctx, "user-2")
		assert.NoError(t, err)
		assert.Len(t, read, 2)

		mRepo.AssertExpectations(t)
	})
}
