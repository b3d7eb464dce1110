package postgrest

import (
	"context"
	"fmt"
	"strconv"

	"github.com/yuzu875641/phpbbs/internal/core/domain"
	"github.com/yuzu875641/phpbbs/internal/core/repository"
)

const topicsCollection = "topics"

type topicPatch struct {
	Content string `json:"content"`
}

type topicRepository struct {
	client *Client
}

func NewTopicRepository(client *Client) repository.TopicRepository {
	return &topicRepository{client: client}
}

func (r *topicRepository) Current(ctx context.Context) (*domain.Topic, error) {
	var topics []domain.Topic
	if err := r.client.Select(ctx, topicsCollection, "", &topics); err != nil {
		return nil, fmt.Errorf("failed to read topic: %w", err)
	}
	if len(topics) == 0 {
		return nil, repository.ErrNotFound
	}
	return &topics[0], nil
}

func (r *topicRepository) SetContent(ctx context.Context, id int64, content string) error {
	query := Eq("id", strconv.FormatInt(id, 10))
	if err := r.client.Update(ctx, topicsCollection, query, topicPatch{Content: content}, nil); err != nil {
		return fmt.Errorf("failed to update topic: %w", err)
	}
	return nil
}
