package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/resourcekit/internal/adapter"
	"github.com/MKhiriev/resourcekit/internal/logger"
	"github.com/MKhiriev/resourcekit/internal/store"
	"github.com/MKhiriev/resourcekit/models"
)

const (
	// usersLimit is how many upstream users GET /api/users returns.
	usersLimit = 10
	// postsLimit is how many upstream posts LoadPosts keeps.
	postsLimit = 10
)

type placeholderService struct {
	adapter adapter.PlaceholderAdapter
	cache   store.PostsCache
	logger  *logger.Logger
}

func NewPlaceholderService(adapter adapter.PlaceholderAdapter, cache store.PostsCache, logger *logger.Logger) PlaceholderService {
	return &placeholderService{adapter: adapter, cache: cache, logger: logger}
}

func (s *placeholderService) Users(ctx context.Context) ([]models.PlaceholderUser, error) {
	users, err := s.adapter.Users(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}
	return head(users, usersLimit), nil
}

func (s *placeholderService) UserPosts(ctx context.Context, userID string) ([]models.Post, error) {
	id, err := strconv.Atoi(userID)
	if err != nil {
		return nil, ErrInvalidUserID
	}

	posts, err := s.adapter.PostsByUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}
	return posts, nil
}

// LoadPosts keeps the first upstream posts in the cache.
func (s *placeholderService) LoadPosts(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	posts, err := s.adapter.Posts(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}
	posts = head(posts, postsLimit)

	if err = s.cache.Save(ctx, posts); err != nil {
		log.Err(err).Str("func", "*placeholderService.LoadPosts").Msg("error saving posts cache")
		return 0, fmt.Errorf("%w: %w", ErrPostsUnavailable, err)
	}

	log.Debug().Str("func", "*placeholderService.LoadPosts").Int("count", len(posts)).Msg("posts cache refreshed")
	return len(posts), nil
}

func (s *placeholderService) Posts(ctx context.Context) ([]models.Post, error) {
	posts, err := s.cache.Load(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrPostsNotLoaded) {
			logger.FromContext(ctx).Err(err).Str("func", "*placeholderService.Posts").Msg("error reading posts cache")
		}
		return nil, fmt.Errorf("%w: %w", ErrPostsUnavailable, err)
	}
	return posts, nil
}

func (s *placeholderService) Post(ctx context.Context, id string) (models.Post, error) {
	postID, err := strconv.Atoi(id)
	if err != nil {
		return models.Post{}, ErrInvalidPostID
	}

	posts, err := s.Posts(ctx)
	if err != nil {
		return models.Post{}, err
	}

	for _, post := range posts {
		if post.ID == postID {
			return post, nil
		}
	}
	return models.Post{}, ErrPostNotFound
}

func head[T any](items []T, n int) []T {
	if items == nil {
		return []T{}
	}
	if len(items) > n {
		return items[:n]
	}
	return items
}
