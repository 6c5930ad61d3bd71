package shared

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var ErrInvalidPage = errors.New("invalid page")

// Page describes one page of a collection. Numbers are 1-based.
type Page struct {
	Number      int  `json:"page"`
	Size        int  `json:"pageSize"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"totalPages"`
	HasNext     bool `json:"hasNext"`
	HasPrevious bool `json:"hasPrevious"`
	Next        int  `json:"nextPage,omitempty"`
	Previous    int  `json:"previousPage,omitempty"`
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// Paginate resolves the raw page parameter against a collection of total
// items. An empty value means page 1 and "last" the final page. A page that
// is not a number, below 1, or past the end is ErrInvalidPage; page 1 of an
// empty collection is fine.
func Paginate(raw string, size, total int) (Page, error) {
	if size <= 0 {
		size = 1
	}
	pages := 1
	if total > 0 {
		pages = (total + size - 1) / size
	}

	number := 1
	switch raw = strings.TrimSpace(raw); raw {
	case "":
	case "last":
		number = pages
	default:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return Page{}, ErrInvalidPage
		}
		number = n
	}
	if number < 1 || number > pages {
		return Page{}, ErrInvalidPage
	}

	p := Page{
		Number:      number,
		Size:        size,
		Total:       total,
		TotalPages:  pages,
		HasNext:     number < pages,
		HasPrevious: number > 1,
	}
	if p.HasNext {
		p.Next = number + 1
	}
	if p.HasPrevious {
		p.Previous = number - 1
	}
	return p, nil
}
