// Package test provides in-memory stand-ins for the DynamoDB-backed
// services so the suite runs without any local AWS emulation.
package test

import (
	"sort"
	"sync"

	"github.com/oklog/ulid/v2"
	"golang.org/x/exp/maps"
	"calvillo.me/recetas/internal/data"
)

type memoryWatcher struct {
	ownerId string
	fn      func([]data.CustomRecipeDTO)
}

// MemoryRecipeStore implements data.CustomRecipeStore on a map. Failures
// can be injected through ReadErr/WriteErr to exercise the suppressed and
// converted error paths. Subscribers are notified synchronously from the
// writing goroutine.
type MemoryRecipeStore struct {
	mu       sync.Mutex
	owners   map[string]map[string]data.CustomRecipeDTO
	watchers map[int]*memoryWatcher
	nextId   int

	ReadErr  error
	WriteErr error
}

func NewMemoryRecipeStore() *MemoryRecipeStore {
	return &MemoryRecipeStore{
		owners:   make(map[string]map[string]data.CustomRecipeDTO),
		watchers: make(map[int]*memoryWatcher),
	}
}

func (ms *MemoryRecipeStore) GenerateKey(ownerId string) (string, error) {
	if ms.WriteErr != nil {
		return "", ms.WriteErr
	}
	return ulid.Make().String(), nil
}

func (ms *MemoryRecipeStore) snapshotLocked(ownerId string) []data.CustomRecipeDTO {
	namespace := ms.owners[ownerId]
	records := make([]data.CustomRecipeDTO, 0, len(namespace))
	keys := maps.Keys(namespace)
	sort.Strings(keys)
	for _, key := range keys {
		record := namespace[key]
		record.Id = key
		records = append(records, record)
	}
	return records
}

func (ms *MemoryRecipeStore) notifyLocked(ownerId string) {
	snapshot := ms.snapshotLocked(ownerId)
	for _, watcher := range ms.watchers {
		if watcher.ownerId == ownerId {
			watcher.fn(snapshot)
		}
	}
}

func (ms *MemoryRecipeStore) Write(ownerId string, recipeId string, record data.CustomRecipeDTO) error {
	if ms.WriteErr != nil {
		return ms.WriteErr
	}
	ms.mu.Lock()
	defer ms.mu.Unlock()
	namespace, ok := ms.owners[ownerId]
	if !ok {
		namespace = make(map[string]data.CustomRecipeDTO)
		ms.owners[ownerId] = namespace
	}
	record.Id = ""
	namespace[recipeId] = record
	ms.notifyLocked(ownerId)
	return nil
}

func (ms *MemoryRecipeStore) ReadOwner(ownerId string) ([]data.CustomRecipeDTO, error) {
	if ms.ReadErr != nil {
		return nil, ms.ReadErr
	}
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.snapshotLocked(ownerId), nil
}

func (ms *MemoryRecipeStore) ReadAll() ([]data.CustomRecipeDTO, error) {
	if ms.ReadErr != nil {
		return nil, ms.ReadErr
	}
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ownerIds := maps.Keys(ms.owners)
	sort.Strings(ownerIds)
	var records []data.CustomRecipeDTO
	for _, ownerId := range ownerIds {
		records = append(records, ms.snapshotLocked(ownerId)...)
	}
	return records, nil
}

func (ms *MemoryRecipeStore) Delete(ownerId string, recipeId string) error {
	if ms.WriteErr != nil {
		return ms.WriteErr
	}
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if namespace, ok := ms.owners[ownerId]; ok {
		delete(namespace, recipeId)
		ms.notifyLocked(ownerId)
	}
	return nil
}

func (ms *MemoryRecipeStore) Subscribe(ownerId string, fn func([]data.CustomRecipeDTO)) (data.Unsubscribe, error) {
	ms.mu.Lock()
	id := ms.nextId
	ms.nextId++
	ms.watchers[id] = &memoryWatcher{ownerId: ownerId, fn: fn}
	snapshot := ms.snapshotLocked(ownerId)
	ms.mu.Unlock()
	fn(snapshot)
	return func() {
		ms.mu.Lock()
		defer ms.mu.Unlock()
		delete(ms.watchers, id)
	}, nil
}
