package handlers

import (
	"net/http"
	"strconv"

	apierrors "github.com/pribylovaa/go-hackernews-stories/internal/errors"
	"github.com/pribylovaa/go-hackernews-stories/internal/models"
	"github.com/pribylovaa/go-hackernews-stories/internal/service"
)

// Дефолты пагинации при отсутствии query-параметров.
const (
	defaultPage     = 1
	defaultPageSize = 10
)

// storyResponse — транспортная форма одной истории.
type storyResponse struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
}

// listStoriesResponse — ответ GET /stories.
// TotalCount — размер отфильтрованного набора, не длина Stories.
type listStoriesResponse struct {
	Stories    []storyResponse `json:"stories"`
	TotalCount int             `json:"total_count"`
}

// ListStories — GET /stories?page=&page_size=&search=.
//
// Особенности:
//   - отсутствующие page/page_size получают дефолты (1/10);
//   - нечисловые значения -> 400/invalid_argument (до вызова сервиса);
//   - выход за диапазон (page<1 и т.п.) валидирует сервисный слой.
func (h *Handlers) ListStories(w http.ResponseWriter, r *http.Request) {
	opts := models.ListOptions{
		Page:     defaultPage,
		PageSize: defaultPageSize,
		Search:   r.URL.Query().Get("search"),
	}

	if v := r.URL.Query().Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			apierrors.WriteError(w, r, service.ErrInvalidArgument)
			return
		}
		opts.Page = n
	}

	if v := r.URL.Query().Get("page_size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			apierrors.WriteError(w, r, service.ErrInvalidArgument)
			return
		}
		opts.PageSize = n
	}

	page, err := h.Service.ListStories(r.Context(), opts)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toListResponse(page))
}

// toListResponse конвертирует доменную страницу в транспортную форму.
// Stories никогда не null, даже для пустой страницы.
func toListResponse(page *models.StoriesPage) listStoriesResponse {
	stories := make([]storyResponse, 0, len(page.Stories))
	for _, story := range page.Stories {
		stories = append(stories, storyResponse{
			ID:    story.ID,
			Title: story.Title,
			URL:   story.URL,
		})
	}

	return listStoriesResponse{
		Stories:    stories,
		TotalCount: page.TotalCount,
	}
}
