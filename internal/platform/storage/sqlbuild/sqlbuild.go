// Package sqlbuild translates declarative query descriptions into
// parameterized SQL statements and maps result sets to plain maps.
//
// Identifiers (tables, columns) are validated against a strict pattern;
// values always travel through placeholders.
package sqlbuild

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Cond is an equality condition on a single column.
type Cond struct {
	Column string
	Value  any
}

// Select describes a read returning whole rows as column-keyed maps.
type Select struct {
	Table   string
	Columns []string
	Where   []Cond
	OrderBy []string // column names, optionally suffixed with " DESC"
	Limit   int
}

// SQL renders the SELECT statement and its placeholder arguments.
func (s Select) SQL() (string, []any, error) {
	if err := validIdentifier(s.Table); err != nil {
		return "", nil, fmt.Errorf("table: %w", err)
	}
	if len(s.Columns) == 0 {
		return "", nil, fmt.Errorf("at least one column is required")
	}
	for _, column := range s.Columns {
		if err := validIdentifier(column); err != nil {
			return "", nil, fmt.Errorf("column: %w", err)
		}
	}

	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(strings.Join(s.Columns, ", "))
	b.WriteString(" FROM ")
	b.WriteString(s.Table)

	args, err := writeWhere(&b, s.Where)
	if err != nil {
		return "", nil, err
	}

	if len(s.OrderBy) > 0 {
		terms := make([]string, 0, len(s.OrderBy))
		for _, term := range s.OrderBy {
			column, direction, ok := splitOrderTerm(term)
			if !ok {
				return "", nil, fmt.Errorf("order by: invalid term %q", term)
			}
			if direction == "" {
				terms = append(terms, column)
			} else {
				terms = append(terms, column+" "+direction)
			}
		}
		b.WriteString(" ORDER BY ")
		b.WriteString(strings.Join(terms, ", "))
	}

	if s.Limit > 0 {
		b.WriteString(" LIMIT ?")
		args = append(args, s.Limit)
	}

	return b.String(), args, nil
}

// Maps executes the description and returns one map per row, keyed by
// column name. []byte values are converted to string.
func Maps(ctx context.Context, db *sql.DB, desc Select) ([]map[string]any, error) {
	query, args, err := desc.SQL()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", desc.Table, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}

	var result []map[string]any
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}

		row := make(map[string]any, len(columns))
		for i, column := range columns {
			value := values[i]
			if raw, ok := value.([]byte); ok {
				value = string(raw)
			}
			row[column] = value
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return result, nil
}

// Count executes SELECT COUNT(*) for the table and conditions.
func Count(ctx context.Context, db *sql.DB, table string, where []Cond) (int64, error) {
	if err := validIdentifier(table); err != nil {
		return 0, fmt.Errorf("table: %w", err)
	}

	var b strings.Builder
	b.WriteString("SELECT COUNT(*) FROM ")
	b.WriteString(table)
	args, err := writeWhere(&b, where)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := db.QueryRowContext(ctx, b.String(), args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return count, nil
}

// Update describes a partial row update from a map of named fields.
type Update struct {
	Table   string
	Set     map[string]any
	Allowed []string
	Where   []Cond
}

// SQL renders the UPDATE statement with SET columns in sorted order.
// Columns outside Allowed are rejected.
func (u Update) SQL() (string, []any, error) {
	if err := validIdentifier(u.Table); err != nil {
		return "", nil, fmt.Errorf("table: %w", err)
	}
	if len(u.Set) == 0 {
		return "", nil, fmt.Errorf("no fields to update")
	}
	if len(u.Where) == 0 {
		return "", nil, fmt.Errorf("update requires conditions")
	}

	allowed := make(map[string]bool, len(u.Allowed))
	for _, column := range u.Allowed {
		allowed[column] = true
	}

	columns := make([]string, 0, len(u.Set))
	for column := range u.Set {
		if err := validIdentifier(column); err != nil {
			return "", nil, fmt.Errorf("column: %w", err)
		}
		if !allowed[column] {
			return "", nil, fmt.Errorf("column %s is not updatable", column)
		}
		columns = append(columns, column)
	}
	sort.Strings(columns)

	var b strings.Builder
	b.WriteString("UPDATE ")
	b.WriteString(u.Table)
	b.WriteString(" SET ")

	args := make([]any, 0, len(columns)+len(u.Where))
	for i, column := range columns {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(column)
		b.WriteString(" = ?")
		args = append(args, u.Set[column])
	}

	whereArgs, err := writeWhere(&b, u.Where)
	if err != nil {
		return "", nil, err
	}
	args = append(args, whereArgs...)

	return b.String(), args, nil
}

func writeWhere(b *strings.Builder, conds []Cond) ([]any, error) {
	if len(conds) == 0 {
		return nil, nil
	}
	args := make([]any, 0, len(conds))
	b.WriteString(" WHERE ")
	for i, cond := range conds {
		if err := validIdentifier(cond.Column); err != nil {
			return nil, fmt.Errorf("condition: %w", err)
		}
		if i > 0 {
			b.WriteString(" AND ")
		}
		b.WriteString(cond.Column)
		b.WriteString(" = ?")
		args = append(args, cond.Value)
	}
	return args, nil
}

func splitOrderTerm(term string) (column, direction string, ok bool) {
	parts := strings.Fields(term)
	switch len(parts) {
	case 1:
		column = parts[0]
	case 2:
		column = parts[0]
		direction = strings.ToUpper(parts[1])
		if direction != "ASC" && direction != "DESC" {
			return "", "", false
		}
	default:
		return "", "", false
	}
	if identifierPattern.MatchString(column) {
		return column, direction, true
	}
	return "", "", false
}

func validIdentifier(name string) error {
	if !identifierPattern.MatchString(name) {
		return fmt.Errorf("invalid identifier %q", name)
	}
	return nil
}
