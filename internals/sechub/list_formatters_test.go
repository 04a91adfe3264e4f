package sechub

import (
	"bytes"
	"strings"
	"testing"

	"github.com/secrethub/secrethub-go/internals/assert"
)

func TestTableFormatter_columnWidths(t *testing.T) {
	cases := map[string]struct {
		formatter tableFormatter
		expected  []int
	}{
		"all columns fit": {
			formatter: tableFormatter{
				tableWidth: 102,
				columns: []tableColumn{
					{maxWidth: 10},
					{maxWidth: 10},
				},
			},
			expected: []int{50, 50},
		},
		"no columns fit": {
			formatter: tableFormatter{
				tableWidth: 12,
				columns: []tableColumn{
					{maxWidth: 10},
					{maxWidth: 10},
				},
			},
			expected: []int{5, 5},
		},
		"one column fits": {
			formatter: tableFormatter{
				tableWidth: 27,
				columns: []tableColumn{
					{maxWidth: 10},
					{maxWidth: 20},
				},
			},
			expected: []int{10, 15},
		},
		"no max width for some not all fit": {
			formatter: tableFormatter{
				tableWidth: 64,
				columns: []tableColumn{
					{maxWidth: 50},
					{},
					{maxWidth: 10},
				},
			},
			expected: []int{25, 25, 10},
		},
		"narrower than the margins": {
			formatter: tableFormatter{
				tableWidth: 2,
				columns:    []tableColumn{{}, {}, {}},
			},
			expected: []int{1, 1, 1},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			result := tc.formatter.columnWidths()
			assert.Equal(t, result, tc.expected)
		})
	}
}

func TestTableFormatter_formatRow(t *testing.T) {
	cases := map[string]struct {
		formatter tableFormatter
		row       []string
		expected  string
	}{
		"long cell": {
			formatter: tableFormatter{
				computedColumnWidths: []int{10, 10},
				columns:              []tableColumn{{}, {}},
			},
			row:      []string{"get-findings", "list"},
			expected: "get-findin  list\ngs\n",
		},
		"wrapping": {
			formatter: tableFormatter{
				computedColumnWidths: []int{2, 2},
				columns:              []tableColumn{{}, {}},
			},
			row:      []string{"foo", "bar"},
			expected: "fo  ba\no   r\n",
		},
		"fits exactly": {
			formatter: tableFormatter{
				computedColumnWidths: []int{3, 3},
				columns:              []tableColumn{{}, {}},
			},
			row:      []string{"foo", "bar"},
			expected: "foo  bar\n",
		},
		"empty cell": {
			formatter: tableFormatter{
				computedColumnWidths: []int{3, 3},
				columns:              []tableColumn{{}, {}},
			},
			row:      []string{"", "bar"},
			expected: "     bar\n",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			result := tc.formatter.formatRow(tc.row)
			assert.Equal(t, string(result), tc.expected)
		})
	}
}

func TestNewListFormatter(t *testing.T) {
	columns := []tableColumn{{name: "command"}, {name: "kind", maxWidth: 5}}
	rows := [][]string{
		{"describe-hub", "read"},
		{"get-findings", "list"},
	}

	cases := map[string]struct {
		format   outputFormat
		quiet    bool
		expected string
	}{
		"table": {
			format: formatText,
			expected: "COMMAND       KIND\n" +
				"describe-hub  read\n" +
				"get-findings  list\n",
		},
		"json": {
			format: formatJSON,
			expected: `{"Command":"describe-hub","Kind":"read"}` + "\n" +
				`{"Command":"get-findings","Kind":"list"}` + "\n",
		},
		"quiet": {
			format:   formatJSON,
			quiet:    true,
			expected: "describe-hub\nget-findings\n",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			f := newListFormatter(buf, tc.format, tc.quiet, 19, columns)

			for _, row := range rows {
				assert.OK(t, f.Write(row))
			}

			assert.Equal(t, buf.String(), tc.expected)
		})
	}
}

func TestToPascalCase(t *testing.T) {
	assert.Equal(t, toPascalCase("next token"), "NextToken")
	assert.Equal(t, strings.Join([]string{toPascalCase("command"), toPascalCase("kind")}, ","), "Command,Kind")
}
