// hackernews — клиент read-only API Hacker News (firebaseio).
// Возвращает доменные объекты models.Story; бизнес-логики не содержит.
package hackernews

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/pribylovaa/go-hackernews-stories/internal/models"
	"github.com/pribylovaa/go-hackernews-stories/pkg/log"
)

var (
	// ErrTimeout — таймаут запроса к апстриму (транспортный или по дедлайну ctx).
	// Транспорт: 504.
	ErrTimeout = errors.New("upstream timeout")
	// ErrUnavailable — сетевая ошибка или не-2xx ответ апстрима.
	// Транспорт: 503.
	ErrUnavailable = errors.New("upstream unavailable")
	// ErrMalformed — тело ответа не распарсилось в ожидаемую форму.
	// Для повторов эквивалентна ErrUnavailable: ничего не закэшировано,
	// следующий вызов повторит запрос. Транспорт: 503.
	ErrMalformed = errors.New("malformed upstream response")
)

// Client — HTTP-клиент апстрима с фиксированным базовым адресом.
//
// Ретраев нет: ошибки классифицируются и прокидываются наверх,
// политика повторов — забота внешнего слоя.
type Client struct {
	client  *http.Client
	baseURL string
}

// New создаёт клиент. Если httpClient == nil, используется клиент
// с таймаутом 10s. Завершающий "/" у baseURL обрезается.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	return &Client{
		client:  httpClient,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// storyPayload — форма ответа GET /item/{id}.json.
// Отсутствующий title трактуется как пустой.
type storyPayload struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// NewStoryIDs возвращает идентификаторы текущих новых историй
// в порядке апстрима (новые — первыми).
func (c *Client) NewStoryIDs(ctx context.Context) ([]int64, error) {
	const op = "hackernews.NewStoryIDs"

	var ids []int64
	if err := c.getJSON(ctx, op, c.baseURL+"/newstories.json", &ids); err != nil {
		return nil, err
	}

	return ids, nil
}

// StoryByID возвращает историю по идентификатору.
// Для неизвестного id апстрим отвечает телом "null" — это не ошибка,
// возвращается (nil, nil).
func (c *Client) StoryByID(ctx context.Context, id int64) (*models.Story, error) {
	const op = "hackernews.StoryByID"

	var payload *storyPayload
	if err := c.getJSON(ctx, op, fmt.Sprintf("%s/item/%d.json", c.baseURL, id), &payload); err != nil {
		return nil, err
	}

	if payload == nil {
		return nil, nil
	}

	return &models.Story{
		ID:    payload.ID,
		Title: payload.Title,
		URL:   payload.URL,
	}, nil
}

// getJSON выполняет GET и декодирует JSON-тело в out.
func (c *Client) getJSON(ctx context.Context, op, url string, out any) error {
	lg := log.From(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%s: new_request: %w", op, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		lg.Warn("http_error",
			slog.String("op", op),
			slog.String("url", url),
			slog.String("err", err.Error()),
		)
		return fmt.Errorf("%s: do: %w: %v", op, classify(err), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		lg.Warn("http_status",
			slog.String("op", op),
			slog.String("url", url),
			slog.Int("status", resp.StatusCode),
		)
		return fmt.Errorf("%s: status=%d: %w", op, resp.StatusCode, ErrUnavailable)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode: %w: %v", op, ErrMalformed, err)
	}

	return nil
}

// classify разделяет транспортные ошибки на таймауты и недоступность —
// внешний слой маппит их на разные статусы.
func classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}

	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return ErrTimeout
	}

	return ErrUnavailable
}
