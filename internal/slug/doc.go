// Package slug превращает произвольные имена таблиц в уникальные
// идентификаторы, пригодные для набора с клавиатуры.
//
// Конвейер фиксированный: транслитерация в ASCII (unidecode) →
// обрезка пробелов → нижний регистр → пробельные последовательности
// в "_" → удаление всего, кроме словарных символов, "-" и "_" →
// нумерация дубликатов.
//
// Гарантия: выходные значения попарно различны и выровнены по индексу
// со входом. Обратное восстановление имени из slug невозможно —
// для этого есть ReverseMap.
package slug
