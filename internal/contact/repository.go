package contact

import (
	"errors"
	"sort"
	"sync"
)

var ErrNotFound = errors.New("contact message not found")

type Repository interface {
	List(page, perPage int) ([]Message, int, error)
	GetByID(id int) (Message, error)
	Create(m Message) (Message, error)
	Delete(id int) error
	Count() (int, error)
	Recent(limit int) ([]Message, error)
}

type InMemoryRepository struct {
	mu       sync.RWMutex
	messages map[int]Message
	nextID   int
}

func NewInMemoryRepository(seed []Message) *InMemoryRepository {
	r := &InMemoryRepository{messages: make(map[int]Message), nextID: 1}
	for _, m := range seed {
		if m.ID >= r.nextID {
			r.nextID = m.ID + 1
		}
		r.messages[m.ID] = m
	}
	return r
}

// List returns messages newest first.
func (r *InMemoryRepository) List(page, perPage int) ([]Message, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.sorted()
	total := len(all)
	start := (page - 1) * perPage
	if start >= total {
		return []Message{}, total, nil
	}
	end := start + perPage
	if end > total {
		end = total
	}
	return all[start:end], total, nil
}

func (r *InMemoryRepository) GetByID(id int) (Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.messages[id]
	if !ok {
		return Message{}, ErrNotFound
	}
	return m, nil
}

func (r *InMemoryRepository) Create(m Message) (Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m.ID = r.nextID
	r.nextID++
	r.messages[m.ID] = m
	return m, nil
}

func (r *InMemoryRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.messages[id]; !ok {
		return ErrNotFound
	}
	delete(r.messages, id)
	return nil
}

func (r *InMemoryRepository) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.messages), nil
}

func (r *InMemoryRepository) Recent(limit int) ([]Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.sorted()
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *InMemoryRepository) sorted() []Message {
	all := make([]Message, 0, len(r.messages))
	for _, m := range r.messages {
		all = append(all, m)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	return all
}
