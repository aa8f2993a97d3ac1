// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package report turns portal responses into titled tables. The terminal UI
// and the CLI render the same reports.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	// ErrNoData is returned when the portal lists nothing to report on,
	// e.g. a student without registered semesters.
	ErrNoData = errors.New("portal returned no data")
	// ErrUnknownSemester is returned when a requested registration code is
	// not among the semesters the portal listed.
	ErrUnknownSemester = errors.New("unknown semester")
)

// Report is one rendered view of portal data.
type Report struct {
	Title   string
	Headers []string
	Rows    [][]string

	// Raw is the response the rows were built from.
	Raw any
}

// Table renders the rows with a rounded border.
func (r Report) Table() string {
	if len(r.Rows) == 0 {
		return "no entries"
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(r.Headers...).
		Rows(r.Rows...).
		String()
}

// String renders the title followed by the table.
func (r Report) String() string {
	return r.Title + "\n\n" + r.Table()
}

// RawJSON renders Raw as indented JSON.
func (r Report) RawJSON() (string, error) {
	raw, err := json.MarshalIndent(r.Raw, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}
	return string(raw), nil
}

// keyValue builds a two-column report from an arbitrary response object.
func keyValue(title string, object map[string]any) Report {
	keys := make([]string, 0, len(object))
	for k := range object {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, []string{k, text(object[k])})
	}

	return Report{Title: title, Headers: []string{"Field", "Value"}, Rows: rows, Raw: object}
}

// objects returns object[key] when it is a list of objects.
func objects(object map[string]any, key string) []map[string]any {
	list, _ := object[key].([]any)

	out := make([]map[string]any, 0, len(list))
	for _, v := range list {
		if m, ok := v.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// text renders a decoded JSON value for a table cell.
func text(v any) string {
	switch t := v.(type) {
	case nil:
		return "-"
	case string:
		if strings.TrimSpace(t) == "" {
			return "-"
		}
		return t
	case json.Number:
		return t.String()
	case map[string]any, []any:
		raw, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(raw)
	default:
		return fmt.Sprint(t)
	}
}
