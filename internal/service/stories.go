package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pribylovaa/go-hackernews-stories/internal/models"
	"github.com/pribylovaa/go-hackernews-stories/pkg/log"
)

// ListStories возвращает страницу новых историй с опциональным поиском
// по заголовку.
//
// Конвейер (порядок существенен):
//  1. валидация page/page_size (до любого I/O) + кламп page_size по конфигу;
//  2. список идентификаторов через кэш (singleton-ключ, TTL из конфига);
//  3. кап: первые cfg.Fetcher.MaxItems идентификаторов. Кап применяется
//     до фильтрации — это осознанное ограничение: поиск никогда не
//     заглядывает дальше первых MaxItems историй, зато фан-аут к апстриму
//     жёстко ограничен;
//  4. конкурентная загрузка историй (fetchStories);
//  5. непустой search: case-insensitive substring по заголовку;
//  6. TotalCount — размер набора после капа и фильтра, до нарезки;
//  7. нарезка страницы: page за пределами набора — пустая выдача, не ошибка.
//
// Ошибки:
// - ErrInvalidArgument — page/page_size < 1;
// - ошибки апстрима/кэша — обёрнутые и прокинутые наверх без ретраев,
//   частичная выдача не возвращается.
func (s *Service) ListStories(ctx context.Context, opts models.ListOptions) (*models.StoriesPage, error) {
	const op = "service.stories.ListStories"

	lg := log.From(ctx)
	lg.Info("list_stories_request",
		slog.String("op", op),
		slog.Int("page", opts.Page),
		slog.Int("page_size", opts.PageSize),
		slog.Bool("has_search", strings.TrimSpace(opts.Search) != ""),
	)

	if opts.Page < 1 || opts.PageSize < 1 {
		lg.Warn("list_stories_invalid_args",
			slog.String("op", op),
			slog.Int("page", opts.Page),
			slog.Int("page_size", opts.PageSize),
		)

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if max := s.cfg.Limits.MaxPageSize; max > 0 && opts.PageSize > max {
		opts.PageSize = max
	}

	ids, err := s.newStoryIDs(ctx)
	if err != nil {
		lg.Error("list_stories_ids_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(ids) > s.cfg.Fetcher.MaxItems {
		ids = ids[:s.cfg.Fetcher.MaxItems]
	}

	stories, err := s.fetchStories(ctx, ids)
	if err != nil {
		lg.Error("list_stories_fetch_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if term := opts.Search; strings.TrimSpace(term) != "" {
		stories = filterByTitle(stories, term)
	}

	total := len(stories)
	page := paginate(stories, opts.Page, opts.PageSize)

	lg.Info("list_stories_ok",
		slog.String("op", op),
		slog.Int("total_count", total),
		slog.Int("returned", len(page)),
	)

	return &models.StoriesPage{Stories: page, TotalCount: total}, nil
}

// newStoryIDs возвращает список идентификаторов через кэш.
func (s *Service) newStoryIDs(ctx context.Context) ([]int64, error) {
	v, err := s.cache.GetOrPopulate(ctx, idsCacheKey, s.cfg.Cache.TTL, func(ctx context.Context) (any, error) {
		ids, err := s.upstream.NewStoryIDs(ctx)
		if err != nil {
			return nil, err
		}
		return ids, nil
	})
	if err != nil {
		return nil, err
	}

	ids, _ := v.([]int64)
	return ids, nil
}

// filterByTitle оставляет истории, чей заголовок содержит term
// без учёта регистра. Порядок сохраняется.
func filterByTitle(stories []models.Story, term string) []models.Story {
	needle := strings.ToLower(term)

	output := make([]models.Story, 0, len(stories))
	for _, story := range stories {
		if strings.Contains(strings.ToLower(story.Title), needle) {
			output = append(output, story)
		}
	}

	return output
}

// paginate вырезает 1-based страницу, ужимая границы до доступного.
// Страница за пределами набора — пустой срез, не ошибка.
func paginate(stories []models.Story, page, size int) []models.Story {
	// page-1 > len отсекается до умножения, чтобы не переполниться
	// на бессмысленно больших номерах страниц.
	if page-1 > len(stories) {
		return []models.Story{}
	}

	start := (page - 1) * size
	if start >= len(stories) {
		return []models.Story{}
	}

	end := start + size
	if end > len(stories) {
		end = len(stories)
	}

	return stories[start:end]
}
