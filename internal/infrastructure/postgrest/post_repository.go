package postgrest

import (
	"context"
	"fmt"

	"github.com/yuzu875641/phpbbs/internal/core/domain"
	"github.com/yuzu875641/phpbbs/internal/core/repository"
)

const postsCollection = "posts"

// postInsert is the insert payload: id and created_at are assigned by the
// store, so they are never sent.
type postInsert struct {
	Username string `json:"username"`
	UserID   string `json:"user_id"`
	Message  string `json:"message"`
}

type postRepository struct {
	client *Client
}

func NewPostRepository(client *Client) repository.PostRepository {
	return &postRepository{client: client}
}

func (r *postRepository) Create(ctx context.Context, post *domain.Post) error {
	record := postInsert{
		Username: post.Username,
		UserID:   post.UserID,
		Message:  post.Message,
	}
	var created []domain.Post
	if err := r.client.Insert(ctx, postsCollection, record, &created); err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	if len(created) > 0 {
		post.ID = created[0].ID
		post.CreatedAt = created[0].CreatedAt
	}
	return nil
}

func (r *postRepository) ListNewestFirst(ctx context.Context) ([]domain.Post, error) {
	var posts []domain.Post
	if err := r.client.Select(ctx, postsCollection, Order("created_at", Desc), &posts); err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

func (r *postRepository) DeleteAll(ctx context.Context) error {
	if err := r.client.Delete(ctx, postsCollection, deleteAllQuery); err != nil {
		return fmt.Errorf("failed to clear posts: %w", err)
	}
	return nil
}
