package grid

import (
	"encoding/json"

	"github.com/shaiso/gridbones/internal/domain"
)

// Общая тестовая таблица: три колонки, две строки, вторая строка —
// дочерняя к первой. У CHECKBOX-ячеек нет displayValue.
func testSheet() *domain.Sheet {
	parent := int64(3326917907257764)
	return &domain.Sheet{
		ID:   4583173393803140,
		Name: "sheet 1",
		Columns: []domain.Column{
			{ID: 7960873114331012, Title: "Favorite", Type: "CHECKBOX"},
			{ID: 642523719853956, Title: "Primary Column", Type: "TEXT_NUMBER", Primary: true},
			{ID: 5146123347224452, Title: "Status", Type: "PICKLIST"},
		},
		Rows: []domain.Row{
			{
				ID:        3326917907257764,
				RowNumber: 1,
				Cells: []domain.Cell{
					{ColumnID: 7960873114331012, Value: raw(`false`)},
					{ColumnID: 642523719853956, Value: raw(`"new value"`), DisplayValue: raw(`"new value"`)},
					{ColumnID: 5146123347224452, Value: raw(`"new"`), DisplayValue: raw(`"new"`)},
				},
			},
			{
				ID:        5584117714643912,
				ParentID:  &parent,
				RowNumber: 2,
				Cells: []domain.Cell{
					{ColumnID: 7960873114331012, Value: raw(`true`)},
					{ColumnID: 642523719853956, Value: raw(`"desc_updated"`), DisplayValue: raw(`"desc_updated"`)},
					{ColumnID: 5146123347224452, Value: raw(`"completed"`), DisplayValue: raw(`"completed"`)},
				},
			},
		},
	}
}

func raw(s string) json.RawMessage { return json.RawMessage(s) }
