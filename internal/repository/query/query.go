// Package query builds the SQL shared by the PostgreSQL and SQLite
// repositories. Each dialect only differs in placeholders and the
// case-insensitive LIKE operator.
package query

import (
	"fmt"
	"strings"

	"procurement-search/internal/domain"
	"procurement-search/pkg/utils"
)

type Dialect int

const (
	Postgres Dialect = iota
	SQLite
)

func (d Dialect) placeholder(n int) string {
	if d == Postgres {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// likeOp is case-insensitive on both dialects. SQLite LIKE folds ASCII only.
func (d Dialect) likeOp() string {
	if d == Postgres {
		return "ILIKE"
	}
	return "LIKE"
}

// Statement is a SQL string and its positional arguments.
type Statement struct {
	SQL  string
	Args []any
}

const recordColumns = "id, title, description, publish_date, value, currency, stage, close_date, award_date, buyer_id"

// RecordOrder keeps pages stable: newest first, id breaks ties.
const RecordOrder = "publish_date DESC, id ASC"

type builder struct {
	d       Dialect
	clauses []string
	args    []any
}

func (b *builder) arg(v any) string {
	b.args = append(b.args, v)
	return b.d.placeholder(len(b.args))
}

// RecordSearch composes the filtered, ordered and bounded record query.
func RecordSearch(d Dialect, f domain.RecordFilter) Statement {
	b := &builder{d: d}

	if f.TextSearch != "" {
		pattern := "%" + utils.EscapeLike(f.TextSearch) + "%"
		op := d.likeOp()
		esc := fmt.Sprintf("ESCAPE '%s'", utils.LikeEscapeChar)
		// SQLite placeholders are positional, so the pattern is bound twice.
		titleArg := b.arg(pattern)
		descArg := titleArg
		if d == SQLite {
			descArg = b.arg(pattern)
		}
		b.clauses = append(b.clauses, fmt.Sprintf("(title %s %s %s OR description %s %s %s)", op, titleArg, esc, op, descArg, esc))
	}

	if f.HasBuyer() {
		b.clauses = append(b.clauses, "buyer_id = "+b.arg(f.BuyerID))
	}

	var sb strings.Builder
	sb.WriteString("SELECT " + recordColumns + " FROM procurement_records")
	if len(b.clauses) > 0 {
		sb.WriteString(" WHERE " + strings.Join(b.clauses, " AND "))
	}
	sb.WriteString(" ORDER BY " + RecordOrder)
	sb.WriteString(" LIMIT " + b.arg(f.Limit))
	sb.WriteString(" OFFSET " + b.arg(f.Offset))

	return Statement{SQL: sb.String(), Args: b.args}
}

// BuyersByIDs selects the buyers whose id is in ids. ids must not be empty.
func BuyersByIDs(d Dialect, ids []string) Statement {
	b := &builder{d: d}
	placeholders := make([]string, len(ids))
	for i, id := range ids {
		placeholders[i] = b.arg(id)
	}
	return Statement{
		SQL:  "SELECT id, name FROM buyers WHERE id IN (" + strings.Join(placeholders, ", ") + ")",
		Args: b.args,
	}
}

// ListBuyers selects every buyer row.
const ListBuyers = "SELECT id, name FROM buyers ORDER BY name ASC, id ASC"
