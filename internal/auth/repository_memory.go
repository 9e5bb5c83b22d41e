package auth

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// InMemoryAdminRepository holds the admins configured at startup.
type InMemoryAdminRepository struct {
	mu     sync.RWMutex
	admins map[string]*Admin
}

func NewInMemoryAdminRepository(admins ...Admin) *InMemoryAdminRepository {
	r := &InMemoryAdminRepository{admins: make(map[string]*Admin)}
	for _, a := range admins {
		r.Add(a)
	}
	return r
}

// Add stores a copy of a, generating an ID and defaulting the role.
func (r *InMemoryAdminRepository) Add(a Admin) {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.Role == "" {
		a.Role = RoleAdmin
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.admins[normalizeEmail(a.Email)] = &a
}

func (r *InMemoryAdminRepository) FindByEmail(_ context.Context, email string) (*Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.admins[normalizeEmail(email)]
	if !ok {
		return nil, ErrAdminNotFound
	}
	cp := *a
	return &cp, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
