package goquery

import (
	"strconv"
	"strings"

	"github.com/fwojciec/webreduce"
	"golang.org/x/net/html"
)

// extractTables converts a table element into record sets. The first
// returned Table is the outermost table; nested tables produce their own
// independent record sets appended in document order, with their cells
// excluded from the outer table's rows. Malformed tables (ragged rows,
// missing header, no rows at all) degrade gracefully.
func (r *Reducer) extractTables(tableEl *html.Node) []*webreduce.Table {
	var nested []*html.Node
	tables := []*webreduce.Table{r.extractOne(tableEl, &nested)}
	for _, n := range nested {
		tables = append(tables, r.extractTables(n)...)
	}
	return tables
}

// extractOne builds the record set for a single table, scoped to the
// outermost table only: row and cell scans never descend into nested
// table elements, which are collected for independent extraction.
func (r *Reducer) extractOne(tableEl *html.Node, nested *[]*html.Node) *webreduce.Table {
	t := &webreduce.Table{}
	for _, row := range r.findRows(tableEl, nested) {
		cells := r.rowCells(row, nested)
		if len(cells) == 0 {
			// Not even counted as the header.
			continue
		}
		if t.Headers == nil {
			t.Headers = cells
			continue
		}
		record := make(map[string]string, len(cells))
		for i, v := range cells {
			if i < len(t.Headers) {
				record[t.Headers[i]] = v
			} else {
				record["col"+strconv.Itoa(i)] = v
			}
		}
		t.Rows = append(t.Rows, record)
	}
	return t
}

// findRows selects row elements anywhere in the table subtree, including
// rows nested in row-group wrappers like thead/tbody/tfoot.
func (r *Reducer) findRows(tableEl *html.Node, nested *[]*html.Node) []*html.Node {
	var rows []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			if r.isTableTag(c.Data) {
				*nested = append(*nested, c)
				continue
			}
			if strings.EqualFold(c.Data, "tr") {
				rows = append(rows, c)
				continue
			}
			walk(c)
		}
	}
	walk(tableEl)
	return rows
}

// rowCells returns the cleaned text of each header/data cell in the row,
// in document order. Cell text may legitimately be empty.
func (r *Reducer) rowCells(row *html.Node, nested *[]*html.Node) []string {
	var cells []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			if r.isTableTag(c.Data) {
				*nested = append(*nested, c)
				continue
			}
			if strings.EqualFold(c.Data, "th") || strings.EqualFold(c.Data, "td") {
				cells = append(cells, CleanText(r.cellText(c, nested)))
				continue
			}
			walk(c)
		}
	}
	walk(row)
	return cells
}

// cellText concatenates a cell's full descendant text content, excluding
// any nested table, which is collected for independent extraction.
func (r *Reducer) cellText(cell *html.Node, nested *[]*html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch c.Type {
			case html.TextNode:
				b.WriteString(c.Data)
			case html.ElementNode:
				if r.isTableTag(c.Data) {
					*nested = append(*nested, c)
					continue
				}
				walk(c)
			}
		}
	}
	walk(cell)
	return b.String()
}

func (r *Reducer) isTableTag(tag string) bool {
	return r.cfg.TableTag != "" && strings.EqualFold(tag, r.cfg.TableTag)
}
