// Package devhub provides a read-mostly internal documentation portal.
// It renders a tree of markdown documents, answers fuzzy searches over a
// static document catalog, derives sidebar and breadcrumb navigation from URL
// paths, and gates a small registry of externally-sourced pages behind
// role-based bearer tokens.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goldmark/, jwt/).
package devhub
