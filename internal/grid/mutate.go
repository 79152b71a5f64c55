package grid

import (
	"reflect"
	"sort"

	"github.com/shaiso/gridbones/internal/domain"
)

// CellPayload — дескриптор ячейки в теле add/update запроса.
type CellPayload struct {
	ColumnID int64 `json:"columnId"`
	Value    any   `json:"value"`
	Strict   bool  `json:"strict"`
}

// RowInsert — тело запроса на добавление одной строки.
type RowInsert struct {
	ToTop bool          `json:"toTop"`
	Cells []CellPayload `json:"cells"`
}

// RowUpdate — тело запроса на обновление одной существующей строки.
type RowUpdate struct {
	ID    int64         `json:"id"`
	Cells []CellPayload `json:"cells"`
}

// BuildAddPayload собирает запросы на добавление строк.
//
// Для каждого FlatRow берутся только ключи, известные titleToID;
// неизвестные молча отбрасываются — но сам RowInsert создаётся на
// каждый входной FlatRow всегда, даже с пустым списком ячеек.
// Порядок входа сохраняется. Ячейки внутри строки идут в порядке
// отсортированных заголовков (детерминированное тело запроса).
func BuildAddPayload(titleToID map[string]int64, rows []domain.FlatRow, toTop, strict bool) []RowInsert {
	out := make([]RowInsert, len(rows))
	for i, row := range rows {
		var cells []CellPayload
		for _, key := range sortedKeys(row) {
			id, ok := titleToID[key]
			if !ok {
				continue
			}
			cells = append(cells, CellPayload{ColumnID: id, Value: row[key], Strict: strict})
		}
		out[i] = RowInsert{ToTop: toTop, Cells: cells}
	}
	return out
}

// BuildUpdatePayload собирает запросы на обновление строк по ключевой
// колонке. Результат может быть пустым.
//
// Ключевая колонка разрешается через FindColumnID; если её нет,
// возвращается nil без ошибки. Для каждого FlatRow ячейки строятся
// по ВСЕМ его ключам (в отличие от add-пути фильтрации по известным
// колонкам нет — вызывающий валидирует вход сам; неизвестный ключ
// даёт columnId 0). Целевая строка — первая строка таблицы, в которой
// есть ячейка ключевой колонки со значением, равным значению ключа
// в FlatRow, с точностью до типа: числовой ключ не совпадёт со
// строковой ячейкой. Обновление без совпадения отбрасывается молча;
// порядок совпавших сохраняется.
func BuildUpdatePayload(sheet *domain.Sheet, updates []domain.FlatRow, keyTitle string, strict bool) []RowUpdate {
	keyID, ok := FindColumnID(sheet, keyTitle)
	if !ok {
		return nil
	}

	idx := IndexColumns(sheet.Columns)

	var out []RowUpdate
	for _, update := range updates {
		keyValue := update[keyTitle] // отсутствующий ключ → nil

		rowID, matched := findRowID(sheet.Rows, keyID, keyValue)
		if !matched {
			continue
		}

		cells := make([]CellPayload, 0, len(update))
		for _, key := range sortedKeys(update) {
			cells = append(cells, CellPayload{ColumnID: idx.TitleToID[key], Value: update[key], Strict: strict})
		}
		out = append(out, RowUpdate{ID: rowID, Cells: cells})
	}
	return out
}

// findRowID ищет первую строку (в порядке строк, затем ячеек),
// содержащую ячейку колонки keyID с сырым значением value.
func findRowID(rows []domain.Row, keyID int64, value any) (int64, bool) {
	for _, row := range rows {
		for _, cell := range row.Cells {
			if cell.ColumnID == keyID && valuesEqual(cell.RawValue(), value) {
				return row.ID, true
			}
		}
	}
	return 0, false
}

// valuesEqual сравнивает декодированные JSON-значения с точностью
// до типа: float64(1) и "1" не равны.
func valuesEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}

func sortedKeys(row domain.FlatRow) []string {
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
