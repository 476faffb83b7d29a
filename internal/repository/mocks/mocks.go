package mocks

import (
	"context"

	"github.com/cogwell/cogniscreen/internal/domain/actor"
	"github.com/cogwell/cogniscreen/internal/domain/result"
	"github.com/stretchr/testify/mock"
)

// ActorRepository is a mock for repository.ActorRepository.
type ActorRepository struct {
	mock.Mock
}

func (m *ActorRepository) Create(ctx context.Context, a *actor.Actor) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *ActorRepository) Get(ctx context.Context, id string) (*actor.Actor, error) {
	args := m.Called(ctx, id)
	if a, ok := args.Get(0).(*actor.Actor); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ActorRepository) List(ctx context.Context) ([]actor.Actor, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]actor.Actor); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ActorRepository) RolesOf(ctx context.Context, actorID string) ([]actor.Role, error) {
	args := m.Called(ctx, actorID)
	if roles, ok := args.Get(0).([]actor.Role); ok {
		return roles, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ActorRepository) GrantRole(ctx context.Context, actorID string, role actor.Role) error {
	args := m.Called(ctx, actorID, role)
	return args.Error(0)
}

// ResultRepository is a mock for repository.ResultRepository.
type ResultRepository struct {
	mock.Mock
}

func (m *ResultRepository) Insert(ctx context.Context, res *result.Result) error {
	args := m.Called(ctx, res)
	return args.Error(0)
}

func (m *ResultRepository) ListByActor(ctx context.Context, actorID string) ([]result.Result, error) {
	args := m.Called(ctx, actorID)
	if list, ok := args.Get(0).([]result.Result); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ResultRepository) ListAll(ctx context.Context) ([]result.Result, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]result.Result); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// TokenRepository is a mock for repository.TokenRepository.
type TokenRepository struct {
	mock.Mock
}

func (m *TokenRepository) Save(ctx context.Context, tokenHash, actorID, description string) error {
	args := m.Called(ctx, tokenHash, actorID, description)
	return args.Error(0)
}

func (m *TokenRepository) Resolve(ctx context.Context, tokenHash string) (string, error) {
	args := m.Called(ctx, tokenHash)
	return args.String(0), args.Error(1)
}
