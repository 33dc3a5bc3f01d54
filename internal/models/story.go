// models содержит доменные сущности stories-сервиса.
// Эти типы используются слоями бизнес-логики, кэша и транспорта.
package models

// Story — доменная сущность истории Hacker News.
//
// Особенности:
//   - ID назначается апстримом и уникален в его пределах;
//   - история с пустым Title считается невалидной и не попадает в выдачу;
//   - URL опционален (Ask HN и т.п. не имеют внешней ссылки).
type Story struct {
	// ID — идентификатор истории у апстрима.
	ID int64
	// Title - заголовок истории.
	Title string
	// URL - внешняя ссылка; может быть пустой.
	URL string
}

// Valid сообщает, пригодна ли история для выдачи.
// Критерий — непустой заголовок.
func (s Story) Valid() bool {
	return s.Title != ""
}

// ListOptions — параметры выборки списка историй.
//
// Особенности:
//   - Page — номер страницы, нумерация с 1;
//   - PageSize > limits.max_page_size клампится сервисом;
//   - Search == "" -> фильтрация по заголовку не применяется.
type ListOptions struct {
	Page     int
	PageSize int
	Search   string
}

// StoriesPage — страница результатов.
//
// TotalCount — размер всего отфильтрованного набора (после капа апстрима
// и поиска, до нарезки на страницы), а не длина Stories.
type StoriesPage struct {
	Stories    []Story
	TotalCount int
}
