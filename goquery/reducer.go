// Package goquery implements the markup-reduction engine on top of
// PuerkitoBio/goquery. It filters a parsed HTML tree down to a
// whitelisted structural subset: retained tags become nodes, transparent
// tags are flattened into their parent's child sequence, skipped tags
// are discarded with all their descendants, and tables are converted to
// record sets.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/webreduce"
	"golang.org/x/net/html"
)

// NoRootText is the placeholder text emitted when the parsed input has
// no html element. A missing root is a defined degenerate output, not
// an error.
const NoRootText = "(No <html> found)"

// Ensure Reducer implements webreduce.Reducer at compile time.
var _ webreduce.Reducer = (*Reducer)(nil)

// Reducer reduces parsed HTML to a webreduce.Node tree according to a
// tag classification config.
type Reducer struct {
	cfg *webreduce.Config
}

// NewReducer creates a Reducer. A nil config means defaults.
func NewReducer(cfg *webreduce.Config) *Reducer {
	if cfg == nil {
		cfg = webreduce.DefaultConfig()
	}
	return &Reducer{cfg: cfg}
}

// Reduce parses raw HTML and reduces it from the document's html element.
func (r *Reducer) Reduce(rawHTML string) (*webreduce.Node, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, webreduce.Errorf(webreduce.EINVALID, "failed to parse HTML: %v", err)
	}
	return r.ReduceDocument(doc), nil
}

// ReduceDocument reduces an already-parsed document. When the document
// has no html element the result is a placeholder root node carrying
// NoRootText and no children.
func (r *Reducer) ReduceDocument(doc *goquery.Document) *webreduce.Node {
	sel := doc.Find("html")
	if len(sel.Nodes) == 0 {
		return &webreduce.Node{Tag: "html", Text: NoRootText}
	}
	return &webreduce.Node{
		Tag:      "html",
		Children: r.reduceChildren(sel.Nodes[0]),
	}
}

// reduceChildren walks an element's child nodes in document order and
// returns the surviving content. Transparent elements contribute their
// recursive reduction spliced in place rather than nested.
func (r *Reducer) reduceChildren(el *html.Node) []webreduce.Content {
	var out []webreduce.Content
	for c := el.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if text := CleanText(c.Data); text != "" {
				out = append(out, &webreduce.Node{Text: text})
			}
		case html.ElementNode:
			switch r.cfg.Classify(c.Data) {
			case webreduce.ClassSkip:
				// Discard the element and everything under it.
			case webreduce.ClassTable:
				for _, t := range r.extractTables(c) {
					out = append(out, t)
				}
			case webreduce.ClassRetain:
				node := &webreduce.Node{
					Tag:      strings.ToLower(c.Data),
					Children: r.reduceChildren(c),
				}
				if node.Tag == webreduce.AnchorTag {
					node.Href = findHref(c)
				}
				out = append(out, node)
			default:
				out = append(out, r.reduceChildren(c)...)
			}
		}
	}
	return out
}

// findHref returns the value of the first href attribute, matched
// case-insensitively. Returns empty when no href is present.
func findHref(el *html.Node) string {
	for _, attr := range el.Attr {
		if strings.EqualFold(attr.Key, "href") {
			return attr.Val
		}
	}
	return ""
}
