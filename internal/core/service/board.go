package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yuzu875641/phpbbs/internal/core/domain"
	"github.com/yuzu875641/phpbbs/internal/core/repository"
)

// SubmitInput is one visitor action: who is posting, the seed their identity
// derives from, and the raw message (which may be a command).
type SubmitInput struct {
	Username string
	Seed     string
	Message  string
}

// Snapshot is the board state returned after every action: all posts newest
// first plus the current topic. It is recomputed from the store on each
// request; nothing is cached in process.
type Snapshot struct {
	Posts []domain.Post
	Topic string
}

// BoardService orchestrates a visitor request: derive identity, register the
// user if unseen, execute the message's command, then re-read the board so
// the caller renders a consistent view.
type BoardService struct {
	users  repository.UserRepository
	posts  repository.PostRepository
	topics repository.TopicRepository
	log    zerolog.Logger
}

func NewBoardService(
	users repository.UserRepository,
	posts repository.PostRepository,
	topics repository.TopicRepository,
	logger zerolog.Logger,
) *BoardService {
	return &BoardService{
		users:  users,
		posts:  posts,
		topics: topics,
		log:    logger,
	}
}

// Submit runs the full pipeline for one action. The returned snapshot is
// always usable for rendering, even when err is non-nil: a failed store call
// skips the remaining mutations but the board is still re-read best-effort,
// and the error is surfaced to the caller rather than swallowed.
//
// An empty username, seed or message makes the action a soft no-op: nothing
// is written and the current snapshot is returned as-is.
func (s *BoardService) Submit(ctx context.Context, in SubmitInput) (*Snapshot, error) {
	if in.Username == "" || in.Seed == "" || in.Message == "" {
		return s.Snapshot(ctx)
	}

	identity := DeriveIdentity(in.Seed)

	if err := s.ensureUser(ctx, in.Username, identity); err != nil {
		snap, snapErr := s.Snapshot(ctx)
		return snap, errors.Join(err, snapErr)
	}

	if err := s.execute(ctx, in, identity); err != nil {
		snap, snapErr := s.Snapshot(ctx)
		return snap, errors.Join(err, snapErr)
	}

	return s.Snapshot(ctx)
}

// ensureUser registers the username on first contact. The existence check and
// the insert are two separate store calls; two concurrent first posts under
// the same name can both pass the check and insert twice. The store carries
// no uniqueness constraint for this, so the race is accepted rather than
// hidden.
func (s *BoardService) ensureUser(ctx context.Context, username string, identity domain.Identity) error {
	_, err := s.users.FindByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("user lookup failed: %w", err)
	}

	s.log.Info().Str("username", username).Str("user_id", identity.ShortID).Msg("registering new user")
	if err := s.users.Create(ctx, domain.NewUser(username, identity)); err != nil {
		return fmt.Errorf("user registration failed: %w", err)
	}
	return nil
}

func (s *BoardService) execute(ctx context.Context, in SubmitInput, identity domain.Identity) error {
	cmd := ParseCommand(in.Message)
	switch cmd.Kind {
	case CommandSetTopic:
		if err := s.topics.SetContent(ctx, domain.TopicID, cmd.Topic); err != nil {
			return fmt.Errorf("topic update failed: %w", err)
		}
	case CommandClearAll:
		s.log.Info().Str("username", in.Username).Msg("clearing all posts")
		if err := s.posts.DeleteAll(ctx); err != nil {
			return fmt.Errorf("clear failed: %w", err)
		}
	case CommandPost:
		post := &domain.Post{
			Username: in.Username,
			UserID:   identity.ShortID,
			Message:  cmd.Message,
		}
		if err := s.posts.Create(ctx, post); err != nil {
			return fmt.Errorf("post failed: %w", err)
		}
	case CommandNoOp:
		// /topic with no text: dropped silently, no post created.
	}
	return nil
}

// Snapshot re-reads the board. Each read degrades independently: a failed
// post read still lets the topic render and vice versa. Failures are joined
// into the returned error so the caller can show a banner next to whatever
// partial state was gathered.
func (s *BoardService) Snapshot(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{
		Posts: []domain.Post{},
		Topic: domain.DefaultTopic,
	}
	var errs []error

	posts, err := s.posts.ListNewestFirst(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("post list read failed")
		errs = append(errs, fmt.Errorf("post list read failed: %w", err))
	} else {
		snap.Posts = posts
	}

	topic, err := s.topics.Current(ctx)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		// No topic written yet: keep the default placeholder.
	case err != nil:
		s.log.Error().Err(err).Msg("topic read failed")
		errs = append(errs, fmt.Errorf("topic read failed: %w", err))
	default:
		snap.Topic = topic.Content
	}

	return snap, errors.Join(errs...)
}
