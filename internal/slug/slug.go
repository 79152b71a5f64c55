package slug

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/gosimple/unidecode"
)

var (
	whitespace  = regexp.MustCompile(`\s+`)
	nonAlphanum = regexp.MustCompile(`[^\w_-]`)
)

// Slugify преобразует последовательность имён в последовательность
// уникальных slug'ов. Выход выровнен по индексу со входом:
// result[i] получен из names[i].
//
// Имя, схлопывающееся в пустую строку, — валидный slug и участвует
// в нумерации дубликатов наравне с остальными.
func Slugify(names []string) []string {
	slugs := make([]string, len(names))
	for i, name := range names {
		s := unidecode.Unidecode(name)
		s = strings.TrimSpace(s)
		s = strings.ToLower(s)
		s = whitespace.ReplaceAllString(s, "_")
		s = nonAlphanum.ReplaceAllString(s, "")
		slugs[i] = s
	}
	numberDuplicates(slugs)
	return slugs
}

// numberDuplicates переписывает все вхождения каждого повторяющегося
// значения (включая первое) в "{value}-{n}", n = 1..count.
//
// Счётчики назначаются сканом по первому вхождению: на каждом шаге
// берётся первое ОСТАВШЕЕСЯ вхождение исходного значения и штампуется
// очередным номером. Для входа [b a b a] получается [b-1 a-1 b-2 a-2],
// а не нумерация по исходным индексам.
func numberDuplicates(slugs []string) {
	counts := make(map[string]int, len(slugs))
	var order []string
	for _, s := range slugs {
		if counts[s] == 0 {
			order = append(order, s)
		}
		counts[s]++
	}

	for _, value := range order {
		count := counts[value]
		if count < 2 {
			continue
		}
		for n := 1; n <= count; n++ {
			i := slices.Index(slugs, value)
			slugs[i] = fmt.Sprintf("%s-%d", value, n)
		}
	}
}

// ReverseMap строит маппинг slug → исходное имя как zip двух
// выровненных последовательностей. При совпадении slug'ов побеждает
// последняя запись (после Slugify дубликатов уже не бывает).
func ReverseMap(originals, slugs []string) map[string]string {
	m := make(map[string]string, len(slugs))
	for i := 0; i < len(slugs) && i < len(originals); i++ {
		m[slugs[i]] = originals[i]
	}
	return m
}
