package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mmeshcher/blueprint-system/internal/model"
	"github.com/mmeshcher/blueprint-system/internal/repository"
)

// memUsers — in-memory двойник UserRepository для тестов.
// Уникальность имени обеспечивается под мьютексом; в продакшене ту же
// роль играет уникальный индекс БД (проверка check-then-act в сервисе
// отсутствует намеренно).
type memUsers struct {
	mu     sync.Mutex
	users  map[string]*model.User
	nextID int64
	err    error
}

func newMemUsers() *memUsers {
	return &memUsers{users: make(map[string]*model.User)}
}

func (m *memUsers) CreateUser(_ context.Context, username string, passwordHash []byte) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	if _, ok := m.users[username]; ok {
		return nil, fmt.Errorf("%w: %s", repository.ErrUserExists, username)
	}

	m.nextID++
	u := &model.User{
		ID:           m.nextID,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	m.users[username] = u

	copied := *u
	return &copied, nil
}

func (m *memUsers) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.users[username]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	copied := *u
	return &copied, nil
}

func (m *memUsers) SetUserLogin(_ context.Context, username string, isLogin bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return m.err
	}
	u, ok := m.users[username]
	if !ok {
		return repository.ErrUserNotFound
	}
	u.IsLogin = isLogin
	return nil
}

// memProducts — in-memory двойник ProductRepository для тестов.
type memProducts struct {
	mu       sync.Mutex
	products map[string]*model.Product
	nextID   int64
	err      error
}

func newMemProducts() *memProducts {
	return &memProducts{products: make(map[string]*model.Product)}
}

func (m *memProducts) GetAllProducts(_ context.Context) ([]model.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	var res []model.Product
	for _, p := range m.products {
		res = append(res, *p)
	}
	return res, nil
}

func (m *memProducts) GetProductByName(_ context.Context, name string) (*model.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.products[name]
	if !ok {
		return nil, repository.ErrProductNotFound
	}

	copied := *p
	return &copied, nil
}

func (m *memProducts) CreateProduct(_ context.Context, name, description string, priceCents int64) (*model.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	if _, ok := m.products[name]; ok {
		return nil, fmt.Errorf("%w: %s", repository.ErrProductExists, name)
	}

	m.nextID++
	p := &model.Product{
		ID:          m.nextID,
		Name:        name,
		Description: description,
		PriceCents:  priceCents,
		CreatedAt:   time.Now(),
	}
	m.products[name] = p

	copied := *p
	return &copied, nil
}

func (m *memProducts) UpdateProduct(_ context.Context, name, newName, description string, priceCents int64) (*model.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.products[name]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	if newName != name {
		if _, taken := m.products[newName]; taken {
			return nil, fmt.Errorf("%w: %s", repository.ErrProductExists, newName)
		}
		delete(m.products, name)
		m.products[newName] = p
	}

	p.Name = newName
	p.Description = description
	p.PriceCents = priceCents
	p.CreatedAt = time.Now()

	copied := *p
	return &copied, nil
}

func (m *memProducts) DeleteProduct(_ context.Context, name string) (*model.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.products[name]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	delete(m.products, name)

	copied := *p
	return &copied, nil
}
