// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/resourcekit/internal/logger"
	"github.com/MKhiriev/resourcekit/internal/service"
)

// PostsRefresher reloads the posts cache from the placeholder API on a
// fixed interval. The first load happens right away.
type PostsRefresher struct {
	placeholder service.PlaceholderService
	interval    time.Duration
	logger      *logger.Logger
}

func NewPostsRefresher(placeholder service.PlaceholderService, interval time.Duration, logger *logger.Logger) *PostsRefresher {
	return &PostsRefresher{placeholder: placeholder, interval: interval, logger: logger}
}

func (p *PostsRefresher) Run(ctx context.Context) {
	ctx = p.logger.WithContext(ctx)
	p.logger.Info().Dur("interval", p.interval).Msg("posts refresher started")

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		p.refresh(ctx)

		select {
		case <-ctx.Done():
			p.logger.Info().Msg("posts refresher stopped")
			return
		case <-ticker.C:
		}
	}
}

// refresh failures are logged; the next tick tries again.
func (p *PostsRefresher) refresh(ctx context.Context) {
	count, err := p.placeholder.LoadPosts(ctx)
	if err != nil {
		if ctx.Err() == nil {
			p.logger.Err(err).Str("func", "*PostsRefresher.refresh").Msg("error refreshing posts cache")
		}
		return
	}
	p.logger.Debug().Str("func", "*PostsRefresher.refresh").Int("count", count).Msg("posts cache refreshed")
}
