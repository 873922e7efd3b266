package domain

// StatusAll desativa o filtro por status
const StatusAll = "all"

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ListQuery representa os filtros aceitos pelas listagens dos painéis
type ListQuery struct {
	Search string
	Status string
	Brand  string
	Sort   string
	Order  SortOrder
}

func (q ListQuery) StatusOrAll() string {
	if q.Status == "" {
		return StatusAll
	}
	return q.Status
}
