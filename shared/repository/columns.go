package repository

import (
	"reflect"
	"slices"
	"strings"
)

// column is one selectable field. source is the table it is read from;
// alias is set when the struct field name differs from the column name.
type column struct {
	name   string
	source string
	alias  string
}

func (c column) expr() string {
	if c.source == "" {
		return c.name
	}

	if c.alias != "" {
		return c.source + "." + c.name + " AS " + c.alias
	}

	return c.source + "." + c.name
}

// key is the name callers use to pick the column in a partial select.
func (c column) key() string {
	if c.alias != "" {
		return c.alias
	}

	return c.name
}

// scanColumns walks the struct tags of typ. Embedded structs are flattened.
// Fields tagged with a foreign `table` are selected but never inserted.
func scanColumns(table string, typ reflect.Type) (selects []column, inserts []string) {
	for i := range typ.NumField() {
		field := typ.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			nestedSelects, nestedInserts := scanColumns(table, field.Type)
			selects = append(selects, nestedSelects...)
			inserts = append(inserts, nestedInserts...)

			continue
		}

		name := field.Tag.Get("db")
		if name == "" || name == "-" {
			continue
		}

		source := field.Tag.Get("table")
		if source == "" {
			source = table
		}

		if source == table {
			inserts = append(inserts, name)
		}

		if original := field.Tag.Get("column"); original != "" {
			selects = append(selects, column{name: original, source: source, alias: name})

			continue
		}

		selects = append(selects, column{name: name, source: source})
	}

	return selects, inserts
}

func selectList(columns []column, only ...string) string {
	exprs := make([]string, 0, len(columns))

	for _, col := range columns {
		if len(only) > 0 && !slices.Contains(only, col.key()) {
			continue
		}

		exprs = append(exprs, col.expr())
	}

	return strings.Join(exprs, ", ")
}

func insertStatement(table string, columns []string) string {
	placeholders := make([]string, len(columns))
	for i, col := range columns {
		placeholders[i] = ":" + col
	}

	return "INSERT INTO " + table + " (" + strings.Join(columns, ", ") + ") VALUES (" + strings.Join(placeholders, ", ") + ")"
}

// assignments renders "a = :a, b = :b" in sorted order so the same update
// always produces the same statement text.
func assignments(values map[string]any) string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	sets := make([]string, len(keys))
	for i, key := range keys {
		sets[i] = key + " = :" + key
	}

	return strings.Join(sets, ", ")
}
