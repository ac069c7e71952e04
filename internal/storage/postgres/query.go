package postgres

import (
	"fmt"
	"strconv"
	"strings"
)

func itoa(n int) string { return strconv.Itoa(n) }

// condBuilder collects WHERE conditions with positional placeholders.
// Expressions use %d verbs for placeholder numbers, e.g. "customer_no = $%d".
type condBuilder struct {
	conds []string
	args  []any
}

func (b *condBuilder) add(expr string, args ...any) {
	nums := make([]any, len(args))
	for i, a := range args {
		b.args = append(b.args, a)
		nums[i] = len(b.args)
	}
	b.conds = append(b.conds, fmt.Sprintf(expr, nums...))
}

// next returns the number the next appended argument will get.
func (b *condBuilder) next() int { return len(b.args) + 1 }

func (b *condBuilder) clause() string {
	if len(b.conds) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(b.conds, " AND ")
}
