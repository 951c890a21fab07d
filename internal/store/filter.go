package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/eventfold/sponsorpipe/internal/domain"
)

// Filter is a boolean expression over record fields, rendered into the
// record store's filter syntax (field comparisons combinable with && / ||)
type Filter struct {
	expr string
}

// String renders the filter expression, empty for the zero filter
func (f Filter) String() string {
	return f.expr
}

// IsZero reports whether the filter carries no expression
func (f Filter) IsZero() bool {
	return f.expr == ""
}

// Eq matches records whose field equals the given value
func Eq(field string, value interface{}) Filter {
	return Filter{expr: fmt.Sprintf("%s = %s", field, quote(value))}
}

// Ne matches records whose field differs from the given value
func Ne(field string, value interface{}) Filter {
	return Filter{expr: fmt.Sprintf("%s != %s", field, quote(value))}
}

// Gt matches records whose field is greater than the given value
func Gt(field string, value interface{}) Filter {
	return Filter{expr: fmt.Sprintf("%s > %s", field, quote(value))}
}

// Lt matches records whose field is less than the given value
func Lt(field string, value interface{}) Filter {
	return Filter{expr: fmt.Sprintf("%s < %s", field, quote(value))}
}

// And combines filters so every one must match. Zero filters are skipped.
func And(filters ...Filter) Filter {
	return combine("&&", filters)
}

// Or combines filters so at least one must match. Zero filters are skipped.
func Or(filters ...Filter) Filter {
	return combine("||", filters)
}

func combine(op string, filters []Filter) Filter {
	parts := make([]string, 0, len(filters))
	for _, f := range filters {
		if !f.IsZero() {
			parts = append(parts, f.expr)
		}
	}
	switch len(parts) {
	case 0:
		return Filter{}
	case 1:
		return Filter{expr: parts[0]}
	}
	return Filter{expr: "(" + strings.Join(parts, " "+op+" ") + ")"}
}

// quote renders a filter operand. Strings are single-quoted with embedded
// quotes escaped; times use the store's wire format.
func quote(value interface{}) string {
	switch v := value.(type) {
	case string:
		return "'" + strings.ReplaceAll(v, "'", `\'`) + "'"
	case domain.SponsorStatus:
		return quote(string(v))
	case domain.DeliverableStatus:
		return quote(string(v))
	case time.Time:
		return quote(v.UTC().Format(domain.TIME_WIRE_FORMAT))
	case fmt.Stringer:
		return quote(v.String())
	default:
		return fmt.Sprintf("%v", v)
	}
}
