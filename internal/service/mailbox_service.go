package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rezsam09/remuncandygramdatabase/internal/cache"
	dom "github.com/rezsam09/remuncandygramdatabase/internal/domain"
	"github.com/rezsam09/remuncandygramdatabase/internal/repo"

	"golang.org/x/sync/singleflight"
)

var (
	ErrFieldsRequired    = errors.New("all fields are required")
	ErrSenderNotFound    = errors.New("sender does not exist")
	ErrRecipientNotFound = errors.New("recipient does not exist")
)

// MailboxService handles candygram ingestion and retrieval. Senders and
// recipients are validated against the account store at write time only;
// inbox reads are permissive and never check existence.
type MailboxService struct {
	repo     repo.MessageRepo
	accounts *AccountService
	cache    *cache.InboxCache
	sf       singleflight.Group
}

// NewMailboxService creates a MailboxService. If c is nil, caching is disabled.
func NewMailboxService(r repo.MessageRepo, accounts *AccountService, c *cache.InboxCache) *MailboxService {
	return &MailboxService{repo: r, accounts: accounts, cache: c}
}

// Send validates both parties exist and inserts one message row. The store
// assigns id and timestamp. Sender is checked before recipient, so an
// unregistered sender wins even when the recipient is also unknown.
func (s *MailboxService) Send(ctx context.Context, from, to, alias, content string) (dom.Message, error) {
	from = Normalize(from)
	to = Normalize(to)
	alias = strings.TrimSpace(alias)
	content = strings.TrimSpace(content)

	if from == "" || to == "" || alias == "" || content == "" {
		return dom.Message{}, ErrFieldsRequired
	}

	ok, err := s.accounts.Exists(ctx, from)
	if err != nil {
		return dom.Message{}, err
	}
	if !ok {
		return dom.Message{}, ErrSenderNotFound
	}

	ok, err = s.accounts.Exists(ctx, to)
	if err != nil {
		return dom.Message{}, err
	}
	if !ok {
		return dom.Message{}, ErrRecipientNotFound
	}

	m, err := s.repo.Create(ctx, dom.Message{
		Sender:    from,
		Recipient: to,
		Alias:     alias,
		Content:   content,
	})
	if err != nil {
		return dom.Message{}, err
	}
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, to)
	}
	return m, nil
}

// Inbox returns all messages addressed to username, newest first (timestamp
// descending, id descending on ties). Unknown users get an empty list, not
// an error.
func (s *MailboxService) Inbox(ctx context.Context, username string) ([]dom.Message, error) {
	username = Normalize(username)
	if s.cache != nil {
		v, err, _ := s.sf.Do("inbox:"+username, func() (interface{}, error) {
			if list, err := s.cache.Get(ctx, username); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.ListByRecipient(ctx, username)
			if err != nil {
				return nil, err
			}
			_ = s.cache.Set(ctx, username, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Message), nil
	}
	return s.repo.ListByRecipient(ctx, username)
}

// AllMessages returns every message with all fields, newest first. The shared
// admin key gating this lives in the HTTP layer, not here.
func (s *MailboxService) AllMessages(ctx context.Context) ([]dom.Message, error) {
	return s.repo.ListAll(ctx)
}
