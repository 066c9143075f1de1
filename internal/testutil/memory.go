package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	authDomain "github.com/allisson/itemsapi/internal/auth/domain"
	itemDomain "github.com/allisson/itemsapi/internal/item/domain"
)

// MemoryClientRepository is an in-memory client store for router level tests.
// It mirrors the SQL repositories: unique oauth_id across every row and no physical deletes.
type MemoryClientRepository struct {
	mu      sync.Mutex
	nextID  int64
	clients map[int64]authDomain.Client
}

// NewMemoryClientRepository creates an empty in-memory client store.
func NewMemoryClientRepository() *MemoryClientRepository {
	return &MemoryClientRepository{clients: make(map[int64]authDomain.Client)}
}

func (m *MemoryClientRepository) Create(_ context.Context, client *authDomain.Client) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.clients {
		if existing.OAuthID == client.OAuthID {
			return authDomain.ErrDuplicateClientID
		}
	}

	m.nextID++
	client.ID = m.nextID
	m.clients[client.ID] = *client
	return nil
}

func (m *MemoryClientRepository) Update(_ context.Context, client *authDomain.Client) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, err := m.active(client.ID)
	if err != nil {
		return err
	}
	for id, existing := range m.clients {
		if id != client.ID && existing.OAuthID == client.OAuthID {
			return authDomain.ErrDuplicateClientID
		}
	}

	current.Name = client.Name
	current.OAuthID = client.OAuthID
	current.SecretHash = client.SecretHash
	current.IsAdmin = client.IsAdmin
	m.clients[client.ID] = current
	return nil
}

func (m *MemoryClientRepository) SoftDelete(_ context.Context, id int64, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, err := m.active(id)
	if err != nil {
		return err
	}

	current.DeletedAt = &at
	m.clients[id] = current
	return nil
}

// active must be called with mu held.
func (m *MemoryClientRepository) active(id int64) (authDomain.Client, error) {
	current, ok := m.clients[id]
	switch {
	case !ok:
		return current, authDomain.ErrClientNotFound
	case !current.IsActive():
		return current, authDomain.ErrClientInactive
	}
	return current, nil
}

func (m *MemoryClientRepository) Get(_ context.Context, id int64) (*authDomain.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	client, ok := m.clients[id]
	if !ok {
		return nil, authDomain.ErrClientNotFound
	}
	return &client, nil
}

func (m *MemoryClientRepository) GetByOAuthID(_ context.Context, oauthID string) (*authDomain.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, client := range m.clients {
		if client.OAuthID == oauthID {
			return &client, nil
		}
	}
	return nil, authDomain.ErrClientNotFound
}

func (m *MemoryClientRepository) List(
	_ context.Context,
	activeOnly bool,
	offset, limit int,
) ([]*authDomain.Client, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	clients := make([]*authDomain.Client, 0, len(m.clients))
	for _, client := range m.clients {
		if activeOnly && !client.IsActive() {
			continue
		}
		clients = append(clients, &client)
	}
	sort.Slice(clients, func(i, j int) bool { return clients[i].ID < clients[j].ID })

	return page(clients, offset, limit), nil
}

// MemoryItemRepository is an in-memory item store scoped by (id, owner_id).
type MemoryItemRepository struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]itemDomain.Item
}

// NewMemoryItemRepository creates an empty in-memory item store.
func NewMemoryItemRepository() *MemoryItemRepository {
	return &MemoryItemRepository{items: make(map[int64]itemDomain.Item)}
}

func (m *MemoryItemRepository) Create(_ context.Context, item *itemDomain.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	item.ID = m.nextID
	m.items[item.ID] = *item
	return nil
}

func (m *MemoryItemRepository) Get(_ context.Context, ownerID, id int64) (*itemDomain.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.items[id]
	if !ok || item.OwnerID != ownerID {
		return nil, itemDomain.ErrItemNotFound
	}
	return &item, nil
}

func (m *MemoryItemRepository) List(
	_ context.Context,
	ownerID int64,
	offset, limit int,
) ([]*itemDomain.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	items := make([]*itemDomain.Item, 0)
	for _, item := range m.items {
		if item.OwnerID == ownerID {
			items = append(items, &item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	return page(items, offset, limit), nil
}

func (m *MemoryItemRepository) Update(_ context.Context, item *itemDomain.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.items[item.ID]
	if !ok || current.OwnerID != item.OwnerID {
		return itemDomain.ErrItemNotFound
	}

	current.Title = item.Title
	current.Description = item.Description
	m.items[item.ID] = current
	return nil
}

func (m *MemoryItemRepository) Delete(_ context.Context, ownerID, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.items[id]
	if !ok || item.OwnerID != ownerID {
		return itemDomain.ErrItemNotFound
	}

	delete(m.items, id)
	return nil
}

// NoopTxManager runs fn without a transaction.
type NoopTxManager struct{}

func (NoopTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func page[T any](rows []T, offset, limit int) []T {
	if offset >= len(rows) {
		return rows[:0]
	}
	end := offset + limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[offset:end]
}
