package grid

import "github.com/shaiso/gridbones/internal/domain"

// ColumnIndex — маппинги по схеме колонок одной таблицы.
type ColumnIndex struct {
	// IDToTitle — id колонки → заголовок. Тотальная функция:
	// каждая колонка имеет ровно один заголовок.
	IDToTitle map[int64]string

	// TitleToID — заголовок → id колонки. Безопасен только при
	// уникальных заголовках; при коллизии побеждает последняя
	// колонка (см. DuplicateTitles).
	TitleToID map[string]int64

	// TypeOf — id колонки → тип по классификации сервиса.
	// Ядро типы не проверяет, карта нужна вызывающим для
	// опциональной валидации.
	TypeOf map[int64]string
}

// IndexColumns строит ColumnIndex по списку колонок.
func IndexColumns(columns []domain.Column) ColumnIndex {
	idx := ColumnIndex{
		IDToTitle: make(map[int64]string, len(columns)),
		TitleToID: make(map[string]int64, len(columns)),
		TypeOf:    make(map[int64]string, len(columns)),
	}
	for _, col := range columns {
		idx.IDToTitle[col.ID] = col.Title
		idx.TitleToID[col.Title] = col.ID
		idx.TypeOf[col.ID] = col.Type
	}
	return idx
}

// FindColumnID возвращает id первой колонки таблицы с точно
// совпадающим заголовком (с учётом регистра).
// Второй результат false, если такой колонки нет.
func FindColumnID(sheet *domain.Sheet, title string) (int64, bool) {
	for _, col := range sheet.Columns {
		if col.Title == title {
			return col.ID, true
		}
	}
	return 0, false
}

// DuplicateTitles возвращает заголовки, встречающиеся более одного
// раза, в порядке первого появления. Пустой результат означает, что
// TitleToID разрешает заголовки однозначно.
func DuplicateTitles(columns []domain.Column) []string {
	counts := make(map[string]int, len(columns))
	var dups []string
	for _, col := range columns {
		counts[col.Title]++
		if counts[col.Title] == 2 {
			dups = append(dups, col.Title)
		}
	}
	return dups
}
