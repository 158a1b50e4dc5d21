package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/adityakumar2809/recipe-app-api/internal/domain"
	domainerrors "github.com/adityakumar2809/recipe-app-api/internal/errors"
	"github.com/adityakumar2809/recipe-app-api/internal/id"
	"github.com/adityakumar2809/recipe-app-api/internal/store"
)

// TagService orchestrates tag operations. Tags are owned per user;
// listing never crosses owners.
type TagService struct {
	store  store.Store
	logger *slog.Logger
}

// NewTagService creates a new tag service.
func NewTagService(store store.Store, logger *slog.Logger) *TagService {
	return &TagService{
		store:  store,
		logger: logger,
	}
}

// ListTags returns the user's tags ordered by name descending.
// With assignedOnly set, only tags referenced by at least one of the
// user's recipes are returned, each at most once.
func (s *TagService) ListTags(ctx context.Context, userID string, assignedOnly bool) ([]*domain.Tag, error) {
	return s.store.ListUserTags(ctx, userID, assignedOnly)
}

// CreateTag creates a tag for the user. Name must be non-empty after
// trimming.
func (s *TagService) CreateTag(ctx context.Context, userID, name string) (*domain.Tag, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerrors.Validation("name is required")
	}

	tagID, err := id.Generate("tag")
	if err != nil {
		return nil, fmt.Errorf("generate tag ID: %w", err)
	}

	now := time.Now()
	tag := &domain.Tag{
		ID:        tagID,
		UserID:    userID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.CreateTag(ctx, tag); err != nil {
		return nil, fmt.Errorf("create tag: %w", err)
	}

	s.logger.Info("tag created", "tag_id", tagID, "user_id", userID)

	return tag, nil
}
