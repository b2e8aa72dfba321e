// Package webreduce reduces web pages to compact structural trees.
// It fetches a page, filters its markup down to a whitelisted set of
// structural elements (headings, paragraphs, lists, links, tables),
// optionally follows every link one hop deep to attach the linked page's
// own reduced tree, and serializes the result as single-line JSON.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// sqlite/, gin/).
package webreduce
