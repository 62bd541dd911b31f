package mocks

import (
	"context"

	"docshare/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockCollaborationRepository struct {
	mock.Mock
}

func (m *MockCollaborationRepository) Upsert(ctx context.Context, c *model.Collaboration) (*model.Collaboration, bool, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*model.Collaboration), args.Bool(1), args.Error(2)
}

func (m *MockCollaborationRepository) FindByDocumentAndUser(ctx context.Context, documentID, userID string) (*model.Collaboration, error) {
	args := m.Called(ctx, documentID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Collaboration), args.Error(1)
}

func (m *MockCollaborationRepository) ListByDocument(ctx context.Context, documentID string) ([]model.Collaboration, error) {
	args := m.Called(ctx, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Collaboration), args.Error(1)
}

func (m *MockCollaborationRepository) ListByUser(ctx context.Context, userID string) ([]model.Collaboration, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Collaboration), args.Error(1)
}

func (m *MockCollaborationRepository) Delete(ctx context.Context, documentID, userID string) error {
	args := m.Called(ctx, documentID, userID)
	return args.Error(0)
}
