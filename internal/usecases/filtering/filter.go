package filtering

import (
	"sort"
	"strings"

	"github.com/vfg2006/coldinfra-dashboard/internal/domain"
)

// Matcher descreve como extrair os campos de busca e o status de um item
type Matcher[T any] struct {
	Keys   func(item T) []string
	Status func(item T) string
}

// Apply devolve a subsequência de items que contém search (sem diferenciar
// maiúsculas) em algum campo chave e cujo status bate com o filtro.
// A ordem original é preservada e o slice de entrada não é alterado.
func Apply[T any](items []T, search, status string, m Matcher[T]) []T {
	result := make([]T, 0, len(items))

	for _, item := range items {
		if m.Keys != nil && !Contains(search, m.Keys(item)...) {
			continue
		}

		if m.Status != nil && !StatusMatches(status, m.Status(item)) {
			continue
		}

		result = append(result, item)
	}

	return result
}

// Contains verifica se algum dos campos contém a busca, sem diferenciar maiúsculas.
// Só a busca vazia casa com tudo; espaços contam como parte do texto.
func Contains(search string, fields ...string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)

	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}

	return false
}

func StatusMatches(filter, status string) bool {
	return filter == "" || filter == domain.StatusAll || filter == status
}

// Sort ordena de forma estável. Ordem desc inverte a comparação, mantendo empates na ordem original.
func Sort[T any](items []T, less func(a, b T) bool, order domain.SortOrder) {
	sort.SliceStable(items, func(i, j int) bool {
		if order == domain.SortDesc {
			return less(items[j], items[i])
		}
		return less(items[i], items[j])
	})
}

// CountByStatus conta os itens por status; a chave "all" guarda o total
func CountByStatus[T any](items []T, status func(T) string, statuses ...string) domain.StatusCount {
	counts := domain.StatusCount{domain.StatusAll: len(items)}
	for _, s := range statuses {
		counts[s] = 0
	}

	for _, item := range items {
		counts[status(item)]++
	}

	return counts
}
