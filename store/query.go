package store

import (
	"net/url"
	"strconv"

	"github.com/user/taskflow-go/apperror"
)

// DefaultTake is the page size used when `take` is absent.
const DefaultTake = 10

type cond struct {
	expr string
	arg  any
}

// Filter collects extra AND conditions for ListOwned.
// Each expression carries exactly one `?` which becomes the next positional parameter.
// Expressions are trusted SQL written by the caller; only the argument is user input.
type Filter struct {
	conds []cond
}

// NewFilter returns an empty filter.
func NewFilter() *Filter {
	return &Filter{}
}

// Where appends `expr` with arg bound to its placeholder.
func (f *Filter) Where(expr string, arg any) *Filter {
	f.conds = append(f.conds, cond{expr: expr, arg: arg})
	return f
}

// Page is an offset/limit window.
type Page struct {
	Skip int
	Take int
}

// ParsePage reads `skip` and `take` from the query string.
// take defaults to DefaultTake and is capped at maxTake.
func ParsePage(q url.Values, maxTake int) (Page, error) {
	p := Page{Skip: 0, Take: DefaultTake}

	var details []apperror.FieldError
	if raw := q.Get("skip"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			details = append(details, apperror.FieldError{Field: "skip", Message: "skip must be a non-negative integer"})
		} else {
			p.Skip = n
		}
	}
	if raw := q.Get("take"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			details = append(details, apperror.FieldError{Field: "take", Message: "take must be a positive integer"})
		} else {
			p.Take = n
		}
	}
	if len(details) > 0 {
		return Page{}, apperror.NewValidationError("Incorrect inputs", details)
	}
	if maxTake > 0 && p.Take > maxTake {
		p.Take = maxTake
	}
	return p, nil
}
