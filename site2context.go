// Package site2context converts a tree of static HTML files into clean
// markdown suitable for LLM context. It selects the main content of each
// page with CSS selectors, strips boilerplate, converts the result to
// markdown mirroring the directory layout, and optionally consolidates
// every page into a single annotated document.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, htmltomarkdown/, yaml/).
package site2context
