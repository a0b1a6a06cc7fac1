package changelog

import "strings"

// Render joins the section body with the given separator.
// No trailing separator is added, so an empty section renders as "".
//
// The function is idempotent - given the same input, it produces identical output.
func (s *Section) Render(sep string) string {
	return strings.Join(s.Body, sep)
}
