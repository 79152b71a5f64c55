package grid

import "errors"

// Ошибки разрешения таблиц.
var (
	// ErrSheetNotFound — таблица с таким именем/slug/номером не найдена.
	ErrSheetNotFound = errors.New("sheet not found")
)
