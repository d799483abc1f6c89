package test

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/maps"
	"calvillo.me/recetas/internal/data"
	"calvillo.me/recetas/internal/exceptions"
)

// MemoryRepository mirrors the DynamoDB generic repository for tests.
// OnCreate builds the stored item; OnUpdate mutates it in place.
type MemoryRepository[T interface{}, I interface{}] struct {
	mu       sync.Mutex
	accounts map[string]map[string]T
	Name     string
	OnCreate func(input I, now time.Time, itemId string) T
	OnUpdate func(item *T, input I)
}

func NewMemoryRepository[T interface{}, I interface{}](name string, onCreate func(I, time.Time, string) T, onUpdate func(*T, I)) *MemoryRepository[T, I] {
	return &MemoryRepository[T, I]{
		accounts: make(map[string]map[string]T),
		Name:     name,
		OnCreate: onCreate,
		OnUpdate: onUpdate,
	}
}

func (mr *MemoryRepository[T, I]) Get(accountId string, itemId string) (T, error) {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	if item, ok := mr.accounts[accountId][itemId]; ok {
		return item, nil
	}
	var empty T
	return empty, exceptions.NotFound(mr.Name, itemId)
}

func (mr *MemoryRepository[T, I]) Create(accountId string, input I) (T, error) {
	gid, err := uuid.NewUUID()
	if err != nil {
		var empty T
		return empty, err
	}
	return mr.CreateWithItemId(accountId, input, gid.String())
}

func (mr *MemoryRepository[T, I]) CreateWithItemId(accountId string, input I, itemId string) (T, error) {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	items, ok := mr.accounts[accountId]
	if !ok {
		items = make(map[string]T)
		mr.accounts[accountId] = items
	}
	if _, ok := items[itemId]; ok {
		var empty T
		return empty, exceptions.Conflict(mr.Name, itemId)
	}
	item := mr.OnCreate(input, time.Now(), itemId)
	items[itemId] = item
	return item, nil
}

func (mr *MemoryRepository[T, I]) Update(accountId string, itemId string, input I) (T, error) {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	item, ok := mr.accounts[accountId][itemId]
	if !ok {
		var empty T
		return empty, exceptions.NotFound(mr.Name, itemId)
	}
	mr.OnUpdate(&item, input)
	mr.accounts[accountId][itemId] = item
	return item, nil
}

func (mr *MemoryRepository[T, I]) List(accountId string, params data.QueryParams) (data.QueryResults[T], error) {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	itemIds := maps.Keys(mr.accounts[accountId])
	sort.Strings(itemIds)
	items := make([]T, 0, len(itemIds))
	for _, itemId := range itemIds {
		items = append(items, mr.accounts[accountId][itemId])
	}
	return data.QueryResults[T]{Items: items}, nil
}

func (mr *MemoryRepository[T, I]) Delete(accountId string, itemId string) error {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	delete(mr.accounts[accountId], itemId)
	return nil
}
