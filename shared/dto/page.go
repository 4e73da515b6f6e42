package dto

import "math"

// Page is the envelope of every paginated list.
type Page[T any] struct {
	Items     []T `json:"items"`
	TotalPage int `json:"total_page"`
	TotalData int `json:"total_data"`
}

func NewPage[T any](items []T, totalData, limit int) Page[T] {
	if items == nil {
		items = []T{}
	}

	totalPage := 1
	if totalData > 0 && limit > 0 {
		totalPage = int(math.Ceil(float64(totalData) / float64(limit)))
	}

	return Page[T]{
		Items:     items,
		TotalPage: totalPage,
		TotalData: totalData,
	}
}
