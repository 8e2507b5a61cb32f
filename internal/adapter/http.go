package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/resourcekit/internal/config"
	"github.com/MKhiriev/resourcekit/internal/logger"
	"github.com/MKhiriev/resourcekit/internal/utils"
	"github.com/MKhiriev/resourcekit/models"
)

type placeholderAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewPlaceholderAdapter constructs the resty implementation of
// [PlaceholderAdapter]. It normalises and validates cfg.PlaceholderURL and
// applies cfg.RequestTimeout to every call.
//
// Returns an error if the URL is empty or cannot be parsed.
func NewPlaceholderAdapter(cfg config.Adapter, logger *logger.Logger) (PlaceholderAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.PlaceholderURL)
	if err != nil {
		return nil, fmt.Errorf("invalid placeholder url: %w", err)
	}

	return &placeholderAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Users implements [PlaceholderAdapter]. GET /users.
func (p *placeholderAdapter) Users(ctx context.Context) ([]models.PlaceholderUser, error) {
	var users []models.PlaceholderUser
	if err := p.get(ctx, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Posts implements [PlaceholderAdapter]. GET /posts.
func (p *placeholderAdapter) Posts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := p.get(ctx, "/posts", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// PostsByUser implements [PlaceholderAdapter]. GET /posts?userId=<id>.
//
// The result is filtered again locally so an upstream that ignores the
// query parameter still yields only that user's posts.
func (p *placeholderAdapter) PostsByUser(ctx context.Context, userID int) ([]models.Post, error) {
	var posts []models.Post
	query := map[string]string{"userId": strconv.Itoa(userID)}
	if err := p.get(ctx, "/posts", query, &posts); err != nil {
		return nil, err
	}

	filtered := make([]models.Post, 0, len(posts))
	for _, post := range posts {
		if post.UserID == userID {
			filtered = append(filtered, post)
		}
	}
	return filtered, nil
}

func (p *placeholderAdapter) get(ctx context.Context, path string, query map[string]string, result any) error {
	log := logger.FromContext(ctx)

	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParams(query).
		Get(path)
	if err != nil {
		log.Err(err).Str("func", "*placeholderAdapter.get").Str("path", path).Msg("upstream request failed")
		return fmt.Errorf("%w: GET %s: %w", ErrRequestFailed, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "*placeholderAdapter.get").Str("path", path).Int("status", resp.StatusCode()).Msg("upstream answered with an error")
		return err
	}

	if err = json.Unmarshal(resp.Body(), result); err != nil {
		return fmt.Errorf("%w: GET %s: %w", ErrDecodingResponse, path, err)
	}
	return nil
}
