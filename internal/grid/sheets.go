package grid

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/shaiso/gridbones/internal/domain"
	"github.com/shaiso/gridbones/internal/slug"
)

// SheetTable — листинг таблиц для выбора пользователем.
//
// Имена сортируются, по отсортированному списку строятся slug'и;
// таблицу можно выбрать точным именем, slug'ом или 1-based позицией
// в листинге. SheetTable эфемерна — строится заново на каждый вызов
// из свежего index-листинга.
type SheetTable struct {
	byName  map[string]int64
	names   []string // отсортированы
	listing []string // slug'и в порядке показа (отсортированы)
	bySlug  map[string]string
}

// NewSheetTable строит SheetTable из index-листинга /sheets.
// При совпадении имён побеждает последняя запись.
func NewSheetTable(refs []domain.SheetRef) *SheetTable {
	t := &SheetTable{byName: make(map[string]int64, len(refs))}
	for _, ref := range refs {
		t.byName[ref.Name] = ref.ID
	}

	t.names = make([]string, 0, len(t.byName))
	for name := range t.byName {
		t.names = append(t.names, name)
	}
	sort.Strings(t.names)

	slugs := slug.Slugify(t.names)
	t.bySlug = slug.ReverseMap(t.names, slugs)

	t.listing = slugs
	sort.Strings(t.listing)
	return t
}

// Names возвращает отсортированные имена таблиц.
func (t *SheetTable) Names() []string { return t.names }

// Slugs возвращает slug'и в порядке показа листинга.
// Выбор по позиции (Resolve) индексирует именно этот порядок.
func (t *SheetTable) Slugs() []string { return t.listing }

// Name возвращает исходное имя таблицы по её slug'у
// (пустая строка, если slug неизвестен).
func (t *SheetTable) Name(s string) string { return t.bySlug[s] }

// ID возвращает идентификатор таблицы по точному имени.
func (t *SheetTable) ID(name string) (int64, bool) {
	id, ok := t.byName[name]
	return id, ok
}

// Resolve разрешает аргумент пользователя в идентификатор таблицы.
// Порядок попыток: точное имя → slug → 1-based номер в листинге.
// Неудача — ErrSheetNotFound с аргументом в сообщении.
func (t *SheetTable) Resolve(arg string) (int64, error) {
	if id, ok := t.byName[arg]; ok {
		return id, nil
	}
	if name, ok := t.bySlug[arg]; ok {
		return t.byName[name], nil
	}
	if n, err := strconv.Atoi(arg); err == nil && n >= 1 && n <= len(t.listing) {
		return t.byName[t.bySlug[t.listing[n-1]]], nil
	}
	return 0, fmt.Errorf("%w: %q", ErrSheetNotFound, arg)
}
