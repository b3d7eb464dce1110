package repository

import (
	"context"

	"github.com/yuzu875641/phpbbs/internal/core/domain"
)

type TopicRepository interface {
	// Current returns the first topic row, or ErrNotFound when none exists
	// yet. Callers fall back to domain.DefaultTopic in that case.
	Current(ctx context.Context) (*domain.Topic, error)
	// SetContent patches the topic row identified by id. The singleton key is
	// explicit here so a multi-room extension changes the call site, not the
	// contract.
	SetContent(ctx context.Context, id int64, content string) error
}
