package tourdb

import (
	"strconv"
	"strings"
)

type dialect struct {
	backend Backend
}

// sql rewrites ? placeholders to $n for PostgreSQL. Queries in this package
// never contain ? inside literals.
func (d dialect) sql(query string) string {
	if d.backend != BackendPostgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// foldEq compares column to the next placeholder ignoring case.
func (d dialect) foldEq(column string) string {
	if d.backend == BackendPostgres {
		return column + " ILIKE ?"
	}
	return "fold(" + column + ") = fold(?)"
}

// accentEq compares column to the next placeholder ignoring case and accents.
func (d dialect) accentEq(column string) string {
	if d.backend == BackendPostgres {
		return "unaccent(" + column + ") ILIKE unaccent(?)"
	}
	return "fold(unaccent(" + column + ")) = fold(unaccent(?))"
}

// foldArg prepares a value bound by foldEq or accentEq. ILIKE treats % and _
// as wildcards, so they are escaped to keep the comparison an equality.
func (d dialect) foldArg(value string) string {
	if d.backend != BackendPostgres {
		return value
	}
	return likeEscaper.Replace(value)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
