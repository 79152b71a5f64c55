package domain

// FlatRow — плоское представление одной строки: маппинг
// "заголовок колонки → значение" (плюс, опционально, литеральные
// ключи метаданных id/parentId/rowNumber).
//
// Это формат обмена между ядром и остальным приложением: проектор
// выдаёт []FlatRow на чтении, мутатор принимает []FlatRow на записи.
// FlatRow эфемерен — создаётся заново на каждый вызов, не хранится.
//
// Порядок ключей не материализуется (map): все рендеринги сортируют
// ключи при выводе, как это делает encoding/json для map.
type FlatRow map[string]any
