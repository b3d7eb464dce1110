package repository

import (
	"context"

	"github.com/yuzu875641/phpbbs/internal/core/domain"
)

type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	// ListNewestFirst returns every post ordered by created_at descending.
	ListNewestFirst(ctx context.Context) ([]domain.Post, error)
	// DeleteAll wipes the entire collection. There is no scoping key: the
	// blast radius is every post on the board, matching the /clear command.
	DeleteAll(ctx context.Context) error
}
