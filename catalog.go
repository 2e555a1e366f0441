// Package catalog turns university course-catalog documents into typed
// course records. It parses catalog listing pages, course detail pages and
// schedule feeds, and merges the results into persisted courses.
//
// This package contains domain types, text heuristics and interfaces
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// etree/, sqlite/).
package catalog
