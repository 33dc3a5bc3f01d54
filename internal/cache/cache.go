// cache определяет контракт короткоживущего кэша stories-сервиса
// и его in-memory реализацию.
package cache

import (
	"context"
	"sync"
	"time"
)

// PopulateFunc загружает значение при промахе кэша.
// Может выполнять I/O и завершаться ошибкой; обязана уважать ctx.
type PopulateFunc func(ctx context.Context) (any, error)

// Cache — контракт кэша с семантикой get-or-populate.
type Cache interface {
	// GetOrPopulate возвращает живое (непросроченное) значение по key.
	// При промахе вызывает populate, сохраняет результат с TTL и возвращает его.
	// Если populate вернул ошибку — запись не создаётся, ошибка прокидывается;
	// следующий вызов повторит загрузку.
	GetOrPopulate(ctx context.Context, key string, ttl time.Duration, populate PopulateFunc) (any, error)
}

// entry — пара (значение, момент истечения). Никогда не мутируется:
// обновление — это атомарная замена записи целиком под локом.
type entry struct {
	value     any
	expiresAt time.Time
}

// Memory — потокобезопасный in-memory кэш с ленивой инвалидацией:
// чтение просроченной записи эквивалентно чтению отсутствующего ключа.
//
// Конкурентные populate по одному ключу допускаются намеренно (без
// per-key лока): повторная загрузка у апстрима идемпотентна и дешевле,
// чем блокировка читателей; побеждает последняя запись.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

// NewMemory создаёт пустой кэш.
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// GetOrPopulate реализует Cache.
func (m *Memory) GetOrPopulate(ctx context.Context, key string, ttl time.Duration, populate PopulateFunc) (any, error) {
	if v, ok := m.get(key); ok {
		return v, nil
	}

	v, err := populate(ctx)
	if err != nil {
		return nil, err
	}

	m.set(key, v, ttl)

	return v, nil
}

// get возвращает живое значение и признак его наличия.
func (m *Memory) get(key string) (any, bool) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok || m.now().After(e.expiresAt) {
		return nil, false
	}

	return e.value, true
}

// set сохраняет значение с истечением now+ttl, вытесняя попутно
// просроченные записи (чтобы map не рос бесконечно на per-id ключах).
func (m *Memory) set(key string, value any, ttl time.Duration) {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	for k, e := range m.entries {
		if now.After(e.expiresAt) {
			delete(m.entries, k)
		}
	}

	m.entries[key] = entry{value: value, expiresAt: now.Add(ttl)}
}
