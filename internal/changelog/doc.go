// Package changelog extracts a single version's section from a Markdown changelog.
//
// This package implements:
//   - Loading a changelog document as UTF-8 text split into lines
//   - Locating a version section by its "## [<version>]" heading
//   - Finding the section boundary (next "## [" heading or end of document)
//   - Rendering the section body and writing it to a destination file
//
// Matching is a literal, case-sensitive prefix comparison against raw lines.
// No Markdown parsing and no semantic-version validation is performed; the
// version is an opaque token.
package changelog
