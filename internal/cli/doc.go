// Package cli реализует инструмент командной строки Gridbones.
//
// # Обзор
//
// CLI — клиентская утилита для работы с таблицами grid-сервиса
// через его REST API. Всё состояние живёт на стороне сервиса;
// локально хранится только access token (см. credentials).
//
// # Ключевые компоненты
//
// ## Client
//
// HTTP-клиент grid-сервиса. Инкапсулирует авторизацию (Bearer token),
// обязательный includeAll на листингах, заголовок X-Request-Id
// и разбор конверта ошибок сервиса (APIError). Любая транспортная
// ошибка и любой не-2xx статус фатальны для текущей операции
// и не ретраятся.
//
//	client := cli.NewClient(cli.DefaultBaseURL, token)
//	sheets, err := client.ListSheets()
//
// ## Output
//
// Форматирование вывода. Поддерживает два режима:
//   - Таблицы (text/tabwriter) и нумерованные списки — по умолчанию
//   - JSON (отступы, сортированные ключи map) — с флагом --json
//
// Данные выводятся в stdout, сообщения (Success/Error) — в stderr.
// Это позволяет использовать pipe: gridbones sheet rows 1 | jq .
//
// ## Commands
//
// Cobra-команды организованы по ресурсам:
//   - sheet: list, rows, add, update
//   - contact: list
//   - token: set, path
//
// Аргумент SHEET у команд разрешается через grid.SheetTable:
// точное имя таблицы, её slug или 1-based номер в листинге.
//
// Каждая группа создаётся через фабричную функцию (NewSheetCmd и т.д.),
// принимающую clientFn и outputFn — замыкания для ленивого создания
// Client (с загрузкой токена) и Output после парсинга PersistentFlags.
package cli
