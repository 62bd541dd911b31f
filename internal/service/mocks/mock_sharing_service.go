package mocks

import (
	"context"

	"docshare/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockSharingService struct {
	mock.Mock
}

func (m *MockSharingService) Share(ctx context.Context, actorID, documentID, granteeID string, level model.Permission) (*model.Collaboration, bool, error) {
	args := m.Called(ctx, actorID, documentID, granteeID, level)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*model.Collaboration), args.Bool(1), args.Error(2)
}

func (m *MockSharingService) Unshare(ctx context.Context, actorID, documentID, granteeID string) error {
	args := m.Called(ctx, actorID, documentID, granteeID)
	return args.Error(0)
}

func (m *MockSharingService) EffectivePermission(ctx context.Context, userID, documentID string) (model.Permission, error) {
	args := m.Called(ctx, userID, documentID)
	return args.Get(0).(model.Permission), args.Error(1)
}

func (m *MockSharingService) HasPermission(ctx context.Context, userID, documentID string, required model.Permission) (bool, error) {
	args := m.Called(ctx, userID, documentID, required)
	return args.Bool(0), args.Error(1)
}

func (m *MockSharingService) ListCollaborators(ctx context.Context, actorID, documentID string) ([]model.Collaboration, error) {
	args := m.Called(ctx, actorID, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Collaboration), args.Error(1)
}

func (m *MockSharingService) ListSharedWith(ctx context.Context, userID string) ([]model.Collaboration, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Collaboration), args.Error(1)
}
