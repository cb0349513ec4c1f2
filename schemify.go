// Package schemify turns web pages into schema.org structured data for
// SEO embedding. Given a URL and a schema type (article, breadcrumbs,
// faq) it fetches the page, runs a cascade of heuristic extractors over
// the parsed document, and produces a single ExtractedData record ready
// for JSON-LD serialization.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g. goquery/,
// rod/, http/).
package schemify
