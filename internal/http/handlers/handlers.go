package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pribylovaa/go-hackernews-stories/internal/models"
)

// StoriesService — контракт бизнес-логики, который потребляет HTTP-слой.
type StoriesService interface {
	ListStories(ctx context.Context, opts models.ListOptions) (*models.StoriesPage, error)
}

// Handlers агрегирует зависимости (сервисный слой).
type Handlers struct {
	Service StoriesService
}

func New(svc StoriesService) *Handlers {
	return &Handlers{Service: svc}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}
