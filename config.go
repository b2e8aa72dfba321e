package webreduce

import "strings"

// Class categorizes an element tag during reduction.
type Class int

// Tag classes. Transparent is the default for unlisted tags: no node is
// emitted for the tag itself but its children are processed and spliced
// into the surrounding sequence.
const (
	ClassTransparent Class = iota
	ClassSkip              // tag and all descendants discarded
	ClassTable             // tag handed to the table extractor
	ClassRetain            // tag emitted as a node
)

// Config controls reduction and expansion behavior.
type Config struct {
	// RetainTags are emitted as structural nodes.
	RetainTags []string `yaml:"retain_tags"`

	// SkipTags are discarded along with all their descendants.
	SkipTags []string `yaml:"skip_tags"`

	// TableTag triggers table-to-record-set extraction.
	TableTag string `yaml:"table_tag"`

	// ExpandSubpages enables one-hop expansion of anchor targets.
	ExpandSubpages bool `yaml:"expand_subpages"`

	// AllowedLinkSchemes are the URL schemes eligible for expansion.
	AllowedLinkSchemes []string `yaml:"allowed_link_schemes"`
}

// DefaultConfig returns the default reduction configuration.
func DefaultConfig() *Config {
	return &Config{
		RetainTags:         []string{"h1", "h2", "h3", "h4", "h5", "h6", "p", "ul", "ol", "li", AnchorTag},
		SkipTags:           []string{"script", "style", "meta", "link", "noscript", "svg", "iframe", "nav", "footer", "header"},
		TableTag:           "table",
		AllowedLinkSchemes: []string{"http", "https"},
	}
}

// Classify categorizes a tag name. Matching is case-insensitive.
// Skip takes precedence over the other classes so that configuring a tag
// in both sets errs on the side of discarding it.
func (c *Config) Classify(tag string) Class {
	tag = strings.ToLower(tag)
	for _, t := range c.SkipTags {
		if tag == strings.ToLower(t) {
			return ClassSkip
		}
	}
	if c.TableTag != "" && tag == strings.ToLower(c.TableTag) {
		return ClassTable
	}
	for _, t := range c.RetainTags {
		if tag == strings.ToLower(t) {
			return ClassRetain
		}
	}
	return ClassTransparent
}

// AllowsScheme reports whether a resolved link scheme is eligible for
// subpage expansion.
func (c *Config) AllowsScheme(scheme string) bool {
	for _, s := range c.AllowedLinkSchemes {
		if strings.EqualFold(scheme, s) {
			return true
		}
	}
	return false
}
