package repo

import (
	"context"

	dom "github.com/rezsam09/remuncandygramdatabase/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// MessageRepo provides candygram persistence. Rows are insert-only; there is
// no update or delete path.
type MessageRepo interface {
	Create(ctx context.Context, m dom.Message) (dom.Message, error)
	ListByRecipient(ctx context.Context, recipient string) ([]dom.Message, error)
	ListAll(ctx context.Context) ([]dom.Message, error)
}

type PGMessageRepo struct {
	db *pgxpool.Pool
}

func NewPGMessageRepo(db *pgxpool.Pool) *PGMessageRepo {
	return &PGMessageRepo{db: db}
}

func (r *PGMessageRepo) Create(ctx context.Context, m dom.Message) (dom.Message, error) {
	query := `
		INSERT INTO messages (sender, recipient, alias, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id, sender, recipient, alias, content, timestamp`
	var out dom.Message
	err := r.db.QueryRow(ctx, query, m.Sender, m.Recipient, m.Alias, m.Content).Scan(
		&out.ID, &out.Sender, &out.Recipient, &out.Alias, &out.Content, &out.Timestamp,
	)
	return out, err
}

// ListByRecipient returns the recipient's inbox, newest first. The id
// tie-break keeps ordering deterministic when timestamps collide.
func (r *PGMessageRepo) ListByRecipient(ctx context.Context, recipient string) ([]dom.Message, error) {
	query := `
		SELECT id, sender, recipient, alias, content, timestamp
		FROM messages WHERE recipient = $1 ORDER BY timestamp DESC, id DESC`
	rows, err := r.db.Query(ctx, query, recipient)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Message
	for rows.Next() {
		var m dom.Message
		if err := rows.Scan(&m.ID, &m.Sender, &m.Recipient, &m.Alias, &m.Content,
			&m.Timestamp); err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// ListAll returns every message, newest first, for the operator dump.
func (r *PGMessageRepo) ListAll(ctx context.Context) ([]dom.Message, error) {
	query := `
		SELECT id, sender, recipient, alias, content, timestamp
		FROM messages ORDER BY timestamp DESC, id DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Message
	for rows.Next() {
		var m dom.Message
		if err := rows.Scan(&m.ID, &m.Sender, &m.Recipient, &m.Alias, &m.Content,
			&m.Timestamp); err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
