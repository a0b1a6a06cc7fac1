package changelog

import (
	"fmt"
	"os"
)

// Extract writes the body of version's section in the changelog at src to dst.
//
// Checks run in a fixed order: the source must exist (NotFoundError), then the
// version must be non-blank (InvalidArgumentError), then the section must be
// present (SectionNotFoundError). On any of these nothing is written; otherwise
// dst is created or truncated.
func Extract(src, dst, version string, opts Options) (*Section, error) {
	if err := CheckSource(src); err != nil {
		return nil, err
	}
	if err := ValidateVersion(version); err != nil {
		return nil, err
	}

	doc, err := LoadDocument(src)
	if err != nil {
		return nil, err
	}

	section, err := doc.Find(version, opts)
	if err != nil {
		return nil, err
	}

	content := section.Render(opts.Separator())
	if err := os.WriteFile(dst, []byte(content), 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", dst, err)
	}

	logDebug("[changelog] wrote %d lines (%d bytes) to %s", len(section.Body), len(content), dst)
	return section, nil
}
