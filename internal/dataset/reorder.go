package dataset

import (
	"fmt"
	"strings"
)

// MissingColumnError is returned when a column the caller relies on is not
// present in the table.
type MissingColumnError struct {
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing column(s): %s", strings.Join(e.Columns, ", "))
}

// Reorder returns a new column order with the priority names first, in the
// given order, followed by the remaining columns in their original order.
// Every priority name must exist in columns.
func Reorder(columns, priority []string) ([]string, error) {
	if err := requireColumns(columns, priority); err != nil {
		return nil, err
	}

	first := make(map[string]bool, len(priority))
	out := make([]string, 0, len(columns))
	for _, name := range priority {
		if first[name] {
			continue
		}
		first[name] = true
		out = append(out, name)
	}
	for _, name := range columns {
		if !first[name] {
			out = append(out, name)
		}
	}
	return out, nil
}

func requireColumns(columns, wanted []string) error {
	present := make(map[string]bool, len(columns))
	for _, name := range columns {
		present[name] = true
	}

	var missing []string
	for _, name := range wanted {
		if !present[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &MissingColumnError{Columns: missing}
	}
	return nil
}
