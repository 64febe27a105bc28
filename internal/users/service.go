package users

import (
	"context"
	"time"

	"github.com/ShreeanshSachan/Cant-think-of-a-name/internal/models"
)

// Service encapsulates user-related business logic.
type Service struct {
	repo UserRepository
}

func NewService(r UserRepository) *Service {
	return &Service{repo: r}
}

// Register creates the account for a freshly verified identity. The email
// always comes from the verified claims, never from client input; the
// username is client-supplied and stored as-is. New accounts start as
// students with no submissions.
//
// Returns ErrAlreadyExists when the subject id is already registered; the
// existing document is left untouched.
func (s *Service) Register(ctx context.Context, sub, username, email string) (*models.User, error) {
	u := &models.User{
		Username:    username,
		Email:       email,
		Role:        models.RoleStudent,
		CreatedAt:   time.Now().UTC(),
		Submissions: []string{},
	}
	if err := s.repo.Create(ctx, sub, u); err != nil {
		return nil, err
	}
	return u, nil
}

// GetBySub loads the account for a subject id, (nil, nil) when absent.
func (s *Service) GetBySub(ctx context.Context, sub string) (*models.User, error) {
	return s.repo.Get(ctx, sub)
}
