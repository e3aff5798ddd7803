package usecase

import (
	"context"
	"errors"
	"testing"

	"franquicia/internal/domain"
	apperrors "franquicia/internal/errors"

	"go.uber.org/zap"
)

func TestUpdateFranchiseName_Success_NameFree(t *testing.T) {
	ctx := context.Background()

	repo := &mockFranchiseRepository{
		FindByIDFunc: func(ctx context.Context, id int64) (*domain.Franchise, error) {
			return &domain.Franchise{ID: id, Name: "Old Name"}, nil
		},
		FindByNameFunc: func(ctx context.Context, name string) (*domain.Franchise, error) {
			return nil, apperrors.ErrFranchiseNotFound
		},
		UpdateNameFunc: func(ctx context.Context, id int64, name string) error {
			if name != "New Name" {
				t.Errorf("expected update with trimmed name, got %q", name)
			}
			return nil
		},
	}

	uc := NewUpdateFranchiseNameUseCase(repo, zap.NewNop())

	franchise, err := uc.Execute(ctx, 1, "  New Name  ")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if franchise.Name != "New Name" {
		t.Errorf("expected merged name %q, got %q", "New Name", franchise.Name)
	}
	if repo.updateNameCalls != 1 {
		t.Errorf("expected one update call, got %d", repo.updateNameCalls)
	}
}

func TestUpdateFranchiseName_SelfRenameIsIdempotent(t *testing.T) {
	ctx := context.Background()

	repo := &mockFranchiseRepository{
		FindByIDFunc: func(ctx context.Context, id int64) (*domain.Franchise, error) {
			return &domain.Franchise{ID: id, Name: "Starbucks"}, nil
		},
		FindByNameFunc: func(ctx context.Context, name string) (*domain.Franchise, error) {
			// El nombre lo tiene la misma franquicia que se renombra.
			return &domain.Franchise{ID: 1, Name: name}, nil
		},
		UpdateNameFunc: func(ctx context.Context, id int64, name string) error {
			return nil
		},
	}

	uc := NewUpdateFranchiseNameUseCase(repo, zap.NewNop())

	franchise, err := uc.Execute(ctx, 1, "Starbucks")
	if err != nil {
		t.Fatalf("expected self-rename to succeed, got %v", err)
	}

	if franchise.Name != "Starbucks" {
		t.Errorf("expected name %q, got %q", "Starbucks", franchise.Name)
	}
	if repo.updateNameCalls != 1 {
		t.Errorf("expected update still issued, got %d calls", repo.updateNameCalls)
	}
}

func TestUpdateFranchiseName_DuplicateName(t *testing.T) {
	ctx := context.Background()

	repo := &mockFranchiseRepository{
		FindByIDFunc: func(ctx context.Context, id int64) (*domain.Franchise, error) {
			return &domain.Franchise{ID: id, Name: "Old Name"}, nil
		},
		FindByNameFunc: func(ctx context.Context, name string) (*domain.Franchise, error) {
			return &domain.Franchise{ID: 99, Name: name}, nil
		},
	}

	uc := NewUpdateFranchiseNameUseCase(repo, zap.NewNop())

	_, err := uc.Execute(ctx, 1, "Taken Name")

	if !errors.Is(err, apperrors.ErrFranchiseNameDuplicate) {
		t.Errorf("expected ErrFranchiseNameDuplicate, got %v", err)
	}
	if repo.updateNameCalls != 0 {
		t.Errorf("expected update never called, got %d calls", repo.updateNameCalls)
	}
}

func TestUpdateFranchiseName_FranchiseNotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mockFranchiseRepository{
		FindByIDFunc: func(ctx context.Context, id int64) (*domain.Franchise, error) {
			return nil, apperrors.ErrFranchiseNotFound
		},
	}

	uc := NewUpdateFranchiseNameUseCase(repo, zap.NewNop())

	_, err := uc.Execute(ctx, 404, "New Name")

	if !errors.Is(err, apperrors.ErrFranchiseNotFound) {
		t.Errorf("expected ErrFranchiseNotFound, got %v", err)
	}
	if repo.findByNameCalls != 0 {
		t.Errorf("expected uniqueness check skipped, got %d calls", repo.findByNameCalls)
	}
}

func TestUpdateFranchiseName_EmptyName(t *testing.T) {
	ctx := context.Background()

	repo := &mockFranchiseRepository{}
	uc := NewUpdateFranchiseNameUseCase(repo, zap.NewNop())

	_, err := uc.Execute(ctx, 1, "")

	if !errors.Is(err, apperrors.ErrFranchiseNameEmpty) {
		t.Errorf("expected ErrFranchiseNameEmpty, got %v", err)
	}
	if repo.findByIDCalls != 0 {
		t.Errorf("expected no repository calls, got %d", repo.findByIDCalls)
	}
}
