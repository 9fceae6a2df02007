package services

import (
	"fmt"

	"lapak/internal/models"
	"lapak/internal/repositories"
)

// UserService handles the administrative user operations.
type UserService struct {
	userRepo repositories.UserRepository
	cartRepo repositories.CartRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository, cartRepo repositories.CartRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		cartRepo: cartRepo,
	}
}

// GetAllUsers retrieves all users with their password hashes blanked.
func (s *UserService) GetAllUsers() ([]models.User, error) {
	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].Password = ""
	}
	return users, nil
}

// DeleteUser removes a user together with their cart. The user's orders are
// kept as immutable purchase records.
func (s *UserService) DeleteUser(id string) error {
	if _, err := s.userRepo.GetByID(id); err != nil {
		return err
	}
	if err := s.cartRepo.DeleteByUserID(id); err != nil {
		return fmt.Errorf("failed to delete cart for user %s: %w", id, err)
	}
	return s.userRepo.Delete(id)
}
