// Package aggregate reúne funções puras de agregação usadas pelas projeções
package aggregate

import (
	"time"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// SumWhere soma o valor extraído dos registros que satisfazem o predicado
func SumWhere[T any](records []T, predicate func(T) bool, amount func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, record := range records {
		if predicate != nil && !predicate(record) {
			continue
		}
		total = total.Add(amount(record))
	}
	return total
}

// Count conta os registros que satisfazem o predicado
func Count[T any](records []T, predicate func(T) bool) int {
	count := 0
	for _, record := range records {
		if predicate == nil || predicate(record) {
			count++
		}
	}
	return count
}

// Filter retorna um novo slice com os registros que satisfazem o predicado
func Filter[T any](records []T, predicate func(T) bool) []T {
	filtered := make([]T, 0, len(records))
	for _, record := range records {
		if predicate(record) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// GroupBy agrupa os registros pela chave, preservando a ordem de entrada em cada grupo
func GroupBy[T any, K comparable](records []T, key func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, record := range records {
		k := key(record)
		groups[k] = append(groups[k], record)
	}
	return groups
}

// BucketByTime agrupa os registros pela faixa de tempo calculada a partir do instante de cada um
func BucketByTime[T any, K comparable](records []T, timeFn func(T) time.Time, bucketFn func(time.Time) K) map[K][]T {
	return GroupBy(records, func(record T) K {
		return bucketFn(timeFn(record))
	})
}

// Percentage calcula part/whole*100; denominador zero retorna zero
func Percentage(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}

// PercentageInt calcula round(100*part/whole) limitado a [0, 100]; denominador zero ou negativo retorna zero
func PercentageInt(part, whole int) int {
	if whole <= 0 || part <= 0 {
		return 0
	}

	percentage := int(decimal.NewFromInt(int64(part)).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(whole))).
		Round(0).
		IntPart())

	return min(100, percentage)
}
