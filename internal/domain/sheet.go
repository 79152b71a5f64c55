package domain

import "encoding/json"

// Sheet — таблица grid-сервиса: типизированные колонки и упорядоченные строки.
//
// Sheet — read-only вход для ядра: клиент никогда не создаёт и не
// удаляет таблицы, только читает их и добавляет/обновляет строки
// через API-вызовы.
type Sheet struct {
	// ID — уникальный идентификатор таблицы, назначается сервисом.
	ID int64 `json:"id"`

	// Name — отображаемое имя таблицы. Уникальность не гарантируется.
	Name string `json:"name"`

	// Columns — колонки в порядке, заданном сервисом.
	Columns []Column `json:"columns,omitempty"`

	// Rows — строки в порядке rowNumber.
	Rows []Row `json:"rows,omitempty"`
}

// SheetRef — запись из index-листинга /sheets: идентификатор и имя
// без колонок и строк.
type SheetRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Column — колонка таблицы.
//
// Идентификатор уникален в рамках таблицы; title — человекочитаемый
// ключ, уникальность которого сервис НЕ гарантирует. Обратный маппинг
// title → id безопасен только при уникальных заголовках (см. grid.DuplicateTitles).
type Column struct {
	// ID — идентификатор колонки, уникальный внутри таблицы.
	ID int64 `json:"id"`

	// Title — заголовок колонки.
	Title string `json:"title"`

	// Type — тип колонки по классификации сервиса:
	// TEXT_NUMBER, CHECKBOX, PICKLIST, DATE и т.д.
	// Ядро тип не интерпретирует, только прокидывает.
	Type string `json:"type,omitempty"`

	// Primary — флаг первичной колонки (passthrough).
	Primary bool `json:"primary,omitempty"`
}

// Row — строка таблицы.
//
// Локально строки неизменяемы: обновление возможно только целиком
// через API-вызов (RowUpdate), никогда "на месте".
type Row struct {
	// ID — идентификатор строки, назначается сервисом.
	ID int64 `json:"id"`

	// ParentID — идентификатор родительской строки (для иерархий).
	// nil, если строка верхнего уровня.
	ParentID *int64 `json:"parentId,omitempty"`

	// RowNumber — порядковый номер строки (1-based).
	RowNumber int `json:"rowNumber,omitempty"`

	// Cells — ячейки строки в порядке колонок таблицы.
	Cells []Cell `json:"cells,omitempty"`
}

// Ключи метаданных строки для Meta и extraKeys проекции.
const (
	MetaID        = "id"
	MetaParentID  = "parentId"
	MetaRowNumber = "rowNumber"
)

// Meta возвращает метаданное строки по его wire-имени.
// Второй результат false, если ключ неизвестен или отсутствует
// у данной строки (например parentId у строки верхнего уровня).
func (r Row) Meta(key string) (any, bool) {
	switch key {
	case MetaID:
		return r.ID, true
	case MetaParentID:
		if r.ParentID != nil {
			return *r.ParentID, true
		}
	case MetaRowNumber:
		if r.RowNumber != 0 {
			return r.RowNumber, true
		}
	}
	return nil, false
}

// Cell — ячейка строки. Ссылается на колонку по ColumnID и несёт
// сырое значение (value) и опциональное отображаемое значение
// (displayValue — отформатированная дата, число и т.п.).
//
// Оба поля хранятся как json.RawMessage, чтобы отличать отсутствующий
// на проводе ключ (nil) от явного null. Ячейка без ключа value
// считается "пустой" для сырой проекции, но всё равно попадает
// в FlatRow как явный null, если колонка известна.
type Cell struct {
	// ColumnID — идентификатор колонки, к которой относится ячейка.
	ColumnID int64 `json:"columnId"`

	// Value — сырое значение (bool/string/number), как прислал сервис.
	Value json.RawMessage `json:"value,omitempty"`

	// DisplayValue — человекочитаемое представление значения.
	// Независимо от Value: ячейка может иметь одно без другого.
	DisplayValue json.RawMessage `json:"displayValue,omitempty"`
}

// HasValue сообщает, присутствовал ли ключ value на проводе.
func (c Cell) HasValue() bool { return len(c.Value) > 0 }

// HasDisplayValue сообщает, присутствовал ли ключ displayValue.
func (c Cell) HasDisplayValue() bool { return len(c.DisplayValue) > 0 }

// RawValue декодирует сырое значение ячейки в any
// (float64/string/bool/nil по правилам encoding/json).
// Отсутствующее значение и явный null оба дают nil.
func (c Cell) RawValue() any { return decodeValue(c.Value) }

// Display декодирует displayValue ячейки.
func (c Cell) Display() any { return decodeValue(c.DisplayValue) }

func decodeValue(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return v
}

// Contact — запись адресной книги сервиса.
type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
