// Package domain содержит модель данных grid-сервиса.
//
// Типы повторяют wire-формат REST API (Smartsheet-совместимый):
// Sheet → Column/Row → Cell. Все сущности транзиентны — строятся
// из десериализованного ответа сервиса и отбрасываются после
// завершения локальной операции. Ядро не хранит состояния и кэшей.
//
// Особенность модели — различие между отсутствующим полем и явным
// null в ячейке. Cell хранит value и displayValue как json.RawMessage:
// nil означает, что ключа не было на проводе, литерал "null" — что
// сервис прислал явный null. Это различие нужно проекции (см. grid).
package domain
