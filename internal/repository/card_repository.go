package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/places-service/internal/domain"
)

// CardRepository defines persistence access for place cards and their like
// sets. Like membership lives in the card_likes join table with a composite
// primary key, so adding a like twice leaves the set unchanged.
type CardRepository interface {
	Create(ctx context.Context, card *domain.Card) error
	GetByID(ctx context.Context, id string) (*domain.Card, error)
	List(ctx context.Context) ([]domain.Card, error)
	// DeleteOwned removes a card only when ownerID matches; a non-owner sees
	// pgx.ErrNoRows, same as a missing card.
	DeleteOwned(ctx context.Context, id, ownerID string) error
	Like(ctx context.Context, cardID, userID string) (*domain.Card, error)
	Unlike(ctx context.Context, cardID, userID string) (*domain.Card, error)
}

type cardRepository struct {
	pool *pgxpool.Pool
}

// NewCardRepository returns a Postgres-backed implementation.
func NewCardRepository(pool *pgxpool.Pool) CardRepository {
	return &cardRepository{pool: pool}
}

const cardSelect = `
        SELECT c.id, c.name, c.link, c.owner_id, c.created_at,
               COALESCE(array_agg(l.user_id::text) FILTER (WHERE l.user_id IS NOT NULL), '{}')
        FROM cards c
        LEFT JOIN card_likes l ON l.card_id = c.id`

func (r *cardRepository) Create(ctx context.Context, card *domain.Card) error {
	const query = `
        INSERT INTO cards (name, link, owner_id)
        VALUES ($1, $2, $3)
        RETURNING id, created_at`

	if err := r.pool.QueryRow(ctx, query,
		card.Name,
		card.Link,
		card.OwnerID,
	).Scan(&card.ID, &card.CreatedAt); err != nil {
		return err
	}
	card.Likes = []string{}
	return nil
}

func (r *cardRepository) GetByID(ctx context.Context, id string) (*domain.Card, error) {
	const query = cardSelect + `
        WHERE c.id = $1
        GROUP BY c.id`

	return scanCard(r.pool.QueryRow(ctx, query, id))
}

func (r *cardRepository) List(ctx context.Context) ([]domain.Card, error) {
	const query = cardSelect + `
        GROUP BY c.id
        ORDER BY c.created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cards := make([]domain.Card, 0)
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, *card)
	}
	return cards, rows.Err()
}

func (r *cardRepository) DeleteOwned(ctx context.Context, id, ownerID string) error {
	const query = `DELETE FROM cards WHERE id=$1 AND owner_id=$2`

	cmd, err := r.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *cardRepository) Like(ctx context.Context, cardID, userID string) (*domain.Card, error) {
	const query = `
        INSERT INTO card_likes (card_id, user_id)
        VALUES ($1, $2)
        ON CONFLICT (card_id, user_id) DO NOTHING`

	// A missing card fails the foreign key here and surfaces as not found.
	if _, err := r.pool.Exec(ctx, query, cardID, userID); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, cardID)
}

func (r *cardRepository) Unlike(ctx context.Context, cardID, userID string) (*domain.Card, error) {
	const query = `DELETE FROM card_likes WHERE card_id=$1 AND user_id=$2`

	if _, err := r.pool.Exec(ctx, query, cardID, userID); err != nil {
		return nil, err
	}
	// Removing an absent like is a no-op; a missing card is not.
	return r.GetByID(ctx, cardID)
}

func scanCard(row rowScanner) (*domain.Card, error) {
	var card domain.Card
	if err := row.Scan(
		&card.ID,
		&card.Name,
		&card.Link,
		&card.OwnerID,
		&card.CreatedAt,
		&card.Likes,
	); err != nil {
		return nil, err
	}
	return &card, nil
}
