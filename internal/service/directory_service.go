package service

import (
	"context"
	"fmt"

	"agrisetu/internal/model"
	"agrisetu/internal/repository"
)

// DirectoryService exposes the public farmer and customer listings
type DirectoryService interface {
	ListByRole(ctx context.Context, role string) ([]model.User, error)
	GetByRole(ctx context.Context, id, role string) (*model.User, error)
}

type directoryService struct {
	userRepo repository.UserRepository
}

// NewDirectoryService creates a new DirectoryService
func NewDirectoryService(userRepo repository.UserRepository) DirectoryService {
	return &directoryService{userRepo: userRepo}
}

func (s *directoryService) ListByRole(ctx context.Context, role string) ([]model.User, error) {
	users, err := s.userRepo.FindByRole(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s accounts: %w", role, err)
	}
	return users, nil
}

// GetByRole returns the account only when it exists and has the given role
func (s *directoryService) GetByRole(ctx context.Context, id, role string) (*model.User, error) {
	notFound := ErrCustomerNotFound
	if role == model.RoleFarmer {
		notFound = ErrFarmerNotFound
	}
	if !validID(id) {
		return nil, notFound
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find %s: %w", role, err)
	}
	if user == nil || user.Role != role {
		return nil, notFound
	}
	return user, nil
}
