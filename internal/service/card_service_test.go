package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/places-service/internal/cache"
	"github.com/spec-kit/places-service/internal/domain"
	"github.com/spec-kit/places-service/internal/events"
	apperrors "github.com/spec-kit/places-service/pkg/util"
)

// ---- fakes ----

type memCardRepo struct {
	mu        sync.Mutex
	cards     map[string]*domain.Card
	likes     map[string]map[string]struct{}
	listCalls int
}

func newMemCardRepo() *memCardRepo {
	return &memCardRepo{
		cards: make(map[string]*domain.Card),
		likes: make(map[string]map[string]struct{}),
	}
}

func (m *memCardRepo) Create(_ context.Context, card *domain.Card) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	card.ID = uuid.NewString()
	card.Likes = []string{}
	stored := *card
	m.cards[card.ID] = &stored
	m.likes[card.ID] = make(map[string]struct{})
	return nil
}

func (m *memCardRepo) GetByID(_ context.Context, id string) (*domain.Card, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.get(id)
}

func (m *memCardRepo) List(_ context.Context) ([]domain.Card, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++
	out := make([]domain.Card, 0, len(m.cards))
	for id := range m.cards {
		card, _ := m.get(id)
		out = append(out, *card)
	}
	return out, nil
}

func (m *memCardRepo) DeleteOwned(_ context.Context, id, ownerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	card, ok := m.cards[id]
	if !ok || card.OwnerID != ownerID {
		return pgx.ErrNoRows
	}
	delete(m.cards, id)
	return nil
}

func (m *memCardRepo) Like(_ context.Context, cardID, userID string) (*domain.Card, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.cards[cardID]; !ok {
		return nil, pgx.ErrNoRows
	}
	m.likes[cardID][userID] = struct{}{}
	return m.get(cardID)
}

func (m *memCardRepo) Unlike(_ context.Context, cardID, userID string) (*domain.Card, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if likes, ok := m.likes[cardID]; ok {
		delete(likes, userID)
	}
	return m.get(cardID)
}

func (m *memCardRepo) get(id string) (*domain.Card, error) {
	card, ok := m.cards[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	snapshot := *card
	snapshot.Likes = make([]string, 0, len(m.likes[id]))
	for userID := range m.likes[id] {
		snapshot.Likes = append(snapshot.Likes, userID)
	}
	return &snapshot, nil
}

type memFeedCache struct {
	mu          sync.Mutex
	cards       []domain.Card
	valid       bool
	invalidated int
}

var _ cache.FeedCache = (*memFeedCache)(nil)

func (m *memFeedCache) Get(context.Context) ([]domain.Card, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.valid {
		return nil, false
	}
	return m.cards, true
}

func (m *memFeedCache) Set(_ context.Context, cards []domain.Card) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cards = cards
	m.valid = true
}

func (m *memFeedCache) Invalidate(context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.valid = false
	m.invalidated++
}

// newWiredCardService assembles the service with the dispatcher-driven cache
// invalidation, the way main wires it.
func newWiredCardService(repo *memCardRepo, feed *memFeedCache) *CardService {
	dispatcher := events.NewInMemoryDispatcher()
	for _, eventType := range []events.EventType{
		events.EventCardCreated,
		events.EventCardDeleted,
		events.EventCardLiked,
		events.EventCardUnliked,
	} {
		dispatcher.Subscribe(eventType, func(ctx context.Context, _ events.Event) error {
			feed.Invalidate(ctx)
			return nil
		})
	}
	return NewCardService(repo, feed, dispatcher)
}

// ---- tests ----

func TestCardService_ListUsesCache(t *testing.T) {
	t.Parallel()

	repo := newMemCardRepo()
	feed := &memFeedCache{}
	svc := newWiredCardService(repo, feed)
	ctx := context.Background()

	if _, err := svc.Create(ctx, "owner-1", "Altai", "https://pictures.example/altai.png"); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if _, err := svc.List(ctx); err != nil {
		t.Fatalf("List error: %v", err)
	}
	if _, err := svc.List(ctx); err != nil {
		t.Fatalf("List error: %v", err)
	}
	if repo.listCalls != 1 {
		t.Fatalf("expected one storage read, got %d", repo.listCalls)
	}
}

func TestCardService_MutationsInvalidateCache(t *testing.T) {
	t.Parallel()

	repo := newMemCardRepo()
	feed := &memFeedCache{}
	svc := newWiredCardService(repo, feed)
	ctx := context.Background()

	card, err := svc.Create(ctx, "owner-1", "Altai", "https://pictures.example/altai.png")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if _, err := svc.List(ctx); err != nil {
		t.Fatalf("List error: %v", err)
	}
	if _, err := svc.Like(ctx, "fan-1", card.ID); err != nil {
		t.Fatalf("Like error: %v", err)
	}

	// The next read must come from storage and observe the like.
	cards, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(cards) != 1 || !cards[0].LikedBy("fan-1") {
		t.Fatalf("stale feed after like: %+v", cards)
	}
	if repo.listCalls != 2 {
		t.Fatalf("expected two storage reads, got %d", repo.listCalls)
	}
}

func TestCardService_DeleteByNonOwner(t *testing.T) {
	t.Parallel()

	repo := newMemCardRepo()
	svc := NewCardService(repo, nil, nil)
	ctx := context.Background()

	card, err := svc.Create(ctx, "owner-1", "Altai", "https://pictures.example/altai.png")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	err = svc.Delete(ctx, "intruder", card.ID)
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) || domainErr.Kind != apperrors.KindNotFound {
		t.Fatalf("expected NotFound for non-owner delete, got %v", err)
	}

	if _, err := repo.GetByID(ctx, card.ID); err != nil {
		t.Fatal("card must survive a non-owner delete")
	}
}

func TestCardService_LikeTwiceKeepsSetSemantics(t *testing.T) {
	t.Parallel()

	repo := newMemCardRepo()
	svc := NewCardService(repo, nil, nil)
	ctx := context.Background()

	card, err := svc.Create(ctx, "owner-1", "Altai", "https://pictures.example/altai.png")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	for i := 0; i < 2; i++ {
		updated, err := svc.Like(ctx, "fan-1", card.ID)
		if err != nil {
			t.Fatalf("Like %d error: %v", i, err)
		}
		if len(updated.Likes) != 1 || !updated.LikedBy("fan-1") {
			t.Fatalf("Like %d: expected like-set {fan-1}, got %v", i, updated.Likes)
		}
	}
}
