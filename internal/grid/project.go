package grid

import "github.com/shaiso/gridbones/internal/domain"

// Project разворачивает строки таблицы в плоские маппинги
// "заголовок колонки → значение".
//
// Для каждой ячейки, чья колонка есть в idToTitle, в FlatRow попадает
// её сырое значение, либо displayValue при useDisplay=true. Отсутствующее
// значение даёт явный nil — фолбэка между raw и display нет: ячейка
// может иметь одно без другого, ветки независимы. Ячейки неизвестных
// колонок пропускаются.
//
// После ячеек в FlatRow копируются метаданные строки по ключам
// extraKeys (id, parentId, rowNumber); отсутствующие у строки ключи
// молча пропускаются, без nil-заполнения.
func Project(sheet *domain.Sheet, idToTitle map[int64]string, useDisplay bool, extraKeys []string) []domain.FlatRow {
	out := make([]domain.FlatRow, len(sheet.Rows))
	for i, row := range sheet.Rows {
		flat := make(domain.FlatRow, len(row.Cells)+len(extraKeys))
		for _, cell := range row.Cells {
			title, ok := idToTitle[cell.ColumnID]
			if !ok {
				continue
			}
			if useDisplay {
				flat[title] = cell.Display()
			} else {
				flat[title] = cell.RawValue()
			}
		}
		for _, key := range extraKeys {
			if v, ok := row.Meta(key); ok {
				flat[key] = v
			}
		}
		out[i] = flat
	}
	return out
}

// RowValues — альтернативная проекция одной строки: оба представления
// значений сразу плюс метаданные строки.
type RowValues struct {
	ID            int64          `json:"id"`
	ParentID      *int64         `json:"parentId,omitempty"`
	RowNumber     int            `json:"rowNumber,omitempty"`
	Values        map[string]any `json:"values"`
	DisplayValues map[string]any `json:"displayValues"`
}

// ProjectWithDisplay отдаёт на каждую строку объект с двумя
// подмаппингами — values (сырые) и displayValues. В отличие от
// Project, nil-заполнения нет: в подмаппинг попадают только ячейки,
// реально несущие соответствующее поле на проводе.
func ProjectWithDisplay(sheet *domain.Sheet) []RowValues {
	idx := IndexColumns(sheet.Columns)

	out := make([]RowValues, len(sheet.Rows))
	for i, row := range sheet.Rows {
		rv := RowValues{
			ID:            row.ID,
			ParentID:      row.ParentID,
			RowNumber:     row.RowNumber,
			Values:        make(map[string]any),
			DisplayValues: make(map[string]any),
		}
		for _, cell := range row.Cells {
			title, ok := idx.IDToTitle[cell.ColumnID]
			if !ok {
				continue
			}
			if cell.HasValue() {
				rv.Values[title] = cell.RawValue()
			}
			if cell.HasDisplayValue() {
				rv.DisplayValues[title] = cell.Display()
			}
		}
		out[i] = rv
	}
	return out
}
