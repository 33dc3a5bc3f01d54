package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/pribylovaa/go-hackernews-stories/internal/models"
)

// fetchStories загружает истории по списку идентификаторов.
//
// Особенности:
//   - параллелизм ограничен семафором cfg.Fetcher.MaxConcurrent: слот
//     захватывается до обращения к кэшу и гарантированно освобождается
//     на любом исходе;
//   - порядок результата повторяет порядок ids независимо от порядка
//     завершения горутин: каждая пишет в свою ячейку по индексу;
//   - каждая история идёт через cache.GetOrPopulate -> Upstream.StoryByID,
//     так что повторный запрос в пределах TTL апстрим не трогает;
//   - отсутствующие истории и истории с пустым заголовком выбрасываются
//     молча — это ожидаемые данные, а не сбой;
//   - транспортная ошибка любой из загрузок валит весь батч: частичная
//     выдача не возвращается. Перед возвратом дожидаемся завершения всех
//     горутин.
func (s *Service) fetchStories(ctx context.Context, ids []int64) ([]models.Story, error) {
	const op = "service.fetcher.fetchStories"

	results := make([]*models.Story, len(ids))
	errs := make([]error, len(ids))

	sem := make(chan struct{}, s.cfg.Fetcher.MaxConcurrent)
	var wg sync.WaitGroup

	for i, id := range ids {
		wg.Add(1)
		sem <- struct{}{}

		go func(i int, id int64) {
			defer wg.Done()
			defer func() {
				<-sem
			}()

			v, err := s.cache.GetOrPopulate(ctx, storyCacheKey(id), s.cfg.Cache.TTL, func(ctx context.Context) (any, error) {
				story, err := s.upstream.StoryByID(ctx, id)
				if err != nil {
					return nil, err
				}
				// Отсутствие истории кэшируется тоже: повторные промахи
				// по несуществующему id не должны дёргать апстрим.
				return story, nil
			})
			if err != nil {
				errs[i] = err
				return
			}

			story, _ := v.(*models.Story)
			results[i] = story
		}(i, id)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	output := make([]models.Story, 0, len(ids))
	for _, story := range results {
		if story == nil || !story.Valid() {
			continue
		}
		output = append(output, *story)
	}

	return output, nil
}
