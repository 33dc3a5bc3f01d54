// service содержит бизнес-логику stories-сервиса:
// кэшируемую агрегацию новых историй апстрима с поиском и пагинацией.
package service

import (
	"context"
	"errors"
	"strconv"

	"github.com/pribylovaa/go-hackernews-stories/internal/cache"
	"github.com/pribylovaa/go-hackernews-stories/internal/config"
	"github.com/pribylovaa/go-hackernews-stories/internal/models"
)

var (
	// ErrInvalidArgument - некорректные входные аргументы (page/page_size < 1).
	// Проверяется до любого I/O. Транспорт: 400.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Ключи кэша: singleton-ключ списка идентификаторов и per-id ключи историй.
const idsCacheKey = "newest_ids"

func storyCacheKey(id int64) string {
	return "story:" + strconv.FormatInt(id, 10)
}

// Upstream описывает абстракцию источника историй (Hacker News API).
//
// Требования к реализации:
// 1) NewStoryIDs возвращает идентификаторы в порядке апстрима (новые — первыми);
// 2) StoryByID для неизвестного id возвращает (nil, nil) — отсутствие
// истории не является ошибкой;
// 3) транспортные сбои и нечитаемые ответы — ошибками (их различает
// транспортный слой);
// 4) реализация обязана уважать ctx (отмена/таймауты).
type Upstream interface {
	NewStoryIDs(ctx context.Context) ([]int64, error)
	StoryByID(ctx context.Context, id int64) (*models.Story, error)
}

// Service — описывает бизнес-логику stories-service.
// Кэш передаётся явно: один экземпляр разделяется всеми конкурентными
// запросами, никакого глобального состояния.
type Service struct {
	upstream Upstream
	cache    cache.Cache
	cfg      config.Config
}

// New создает новый экземпляр Service.
func New(upstream Upstream, c cache.Cache, cfg config.Config) *Service {
	return &Service{
		upstream: upstream,
		cache:    c,
		cfg:      cfg,
	}
}
