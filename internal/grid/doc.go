// Package grid реализует ядро клиента: чистые преобразования между
// wire-представлением таблиц (domain) и плоским форматом FlatRow.
//
// # Ключевые компоненты
//
// ## Column Index
//
// Двунаправленные маппинги id ↔ title для схемы таблицы плюс карта
// типов колонок. Обратный маппинг title → id корректен только при
// уникальных заголовках — DuplicateTitles позволяет вызывающему
// обнаружить коллизии до записи.
//
// ## Row Projector
//
// Project разворачивает строки таблицы в []FlatRow: значение ячейки
// (сырое или display) под заголовком её колонки, плюс опциональные
// метаданные строки. ProjectWithDisplay отдаёт оба представления сразу.
//
// ## Row Mutator
//
// BuildAddPayload и BuildUpdatePayload собирают API-готовые тела
// запросов из []FlatRow. Update-путь выполняет клиентский join по
// ключевой колонке: у сервиса нет батчевого "upsert by key", поэтому
// целевая строка ищется по первому совпадению значения ключа.
//
// Все операции синхронны, не выполняют I/O и не держат состояния
// между вызовами: одинаковый вход — одинаковый выход.
package grid
