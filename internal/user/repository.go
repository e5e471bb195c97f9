package user

import (
	"errors"
	"sort"
	"sync"
	"time"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email already exists")
)

type Repository interface {
	// List returns one newest-first page of users plus the total count.
	List(page, perPage int) ([]User, int, error)
	GetByID(id int) (User, error)
	GetByEmail(email string) (User, error)
	Create(u User) (User, error)
	Update(id int, u User) (User, error)
	Delete(id int) error
}

// InMemoryRepository is a simple in-memory implementation useful for tests.
type InMemoryRepository struct {
	mu      sync.RWMutex
	storage []User
	nextID  int
}

func NewInMemoryRepository(seed []User) *InMemoryRepository {
	r := &InMemoryRepository{
		storage: make([]User, 0, len(seed)),
		nextID:  1,
	}

	maxID := 0
	for _, u := range seed {
		r.storage = append(r.storage, u)
		if u.ID > maxID {
			maxID = u.ID
		}
	}

	r.nextID = maxID + 1
	return r
}

func (r *InMemoryRepository) List(page, perPage int) ([]User, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sorted := make([]User, len(r.storage))
	copy(sorted, r.storage)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	total := len(sorted)
	start := (page - 1) * perPage
	if start >= total {
		return []User{}, total, nil
	}
	end := start + perPage
	if end > total {
		end = total
	}
	return sorted[start:end], total, nil
}

func (r *InMemoryRepository) GetByID(id int) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.storage {
		if u.ID == id {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *InMemoryRepository) GetByEmail(email string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.storage {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *InMemoryRepository) Create(u User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.storage {
		if existing.Email == u.Email {
			return User{}, ErrEmailExists
		}
	}

	if u.ID == 0 {
		u.ID = r.nextID
		r.nextID++
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
		u.UpdatedAt = u.CreatedAt
	}
	r.storage = append(r.storage, u)
	return u, nil
}

func (r *InMemoryRepository) Update(id int, u User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.storage {
		if existing.Email == u.Email && existing.ID != id {
			return User{}, ErrEmailExists
		}
	}

	for i := range r.storage {
		if r.storage[i].ID == id {
			u.ID = id
			u.CreatedAt = r.storage[i].CreatedAt
			u.UpdatedAt = time.Now().UTC()
			r.storage[i] = u
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.storage {
		if r.storage[i].ID == id {
			r.storage = append(r.storage[:i], r.storage[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
