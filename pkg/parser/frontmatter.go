// Package parser handles the structural decomposition of cartridge
// documents: splitting the YAML header block from the markdown body,
// checking the header's structural shape against a JSON schema, and
// tokenizing the body into level-2 sections.
package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/cartforge/cartlint/pkg/constants"
	"github.com/cartforge/cartlint/pkg/logger"
)

var frontmatterLog = logger.New("parser:frontmatter")

// ErrMissingFrontmatter is returned when the document has no header block
// delimiters at all.
var ErrMissingFrontmatter = errors.New("missing front matter")

// FrontmatterResult holds the decomposed parts of a cartridge document.
type FrontmatterResult struct {
	// Frontmatter is the parsed header block as a generic map.
	Frontmatter map[string]any
	// Body is the markdown remainder after the closing delimiter.
	Body string
	// BodyLineOffset is the number of document lines consumed by the header
	// block including both delimiter lines. Adding it to a 1-based body line
	// number yields the document line number.
	BodyLineOffset int
}

// ExtractFrontmatter splits a cartridge document into its header block and
// markdown body and parses the header as YAML.
//
// The header block must start on the first line with the fixed delimiter and
// is closed by the next line consisting of the same delimiter. A document
// without an opening delimiter returns ErrMissingFrontmatter; a header that
// never closes returns a parse error with a nil result. A header that closes
// but is not valid YAML returns the parse error together with a partial
// result carrying the body split, so body-level checks can still run.
func ExtractFrontmatter(content string) (*FrontmatterResult, error) {
	frontmatterLog.Printf("Extracting frontmatter: size=%d bytes", len(content))

	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], "\r") != constants.FrontmatterDelimiter {
		frontmatterLog.Print("No opening delimiter on first line")
		return nil, ErrMissingFrontmatter
	}

	closing := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], "\r") == constants.FrontmatterDelimiter {
			closing = i
			break
		}
	}
	if closing == -1 {
		frontmatterLog.Print("Opening delimiter found but header never closes")
		return nil, fmt.Errorf("front matter block opened on line 1 is never closed with %q", constants.FrontmatterDelimiter)
	}

	headerLines := make([]string, 0, closing-1)
	for _, line := range lines[1:closing] {
		headerLines = append(headerLines, strings.TrimRight(line, "\r"))
	}
	header := strings.Join(headerLines, "\n")
	body := strings.Join(lines[closing+1:], "\n")

	result := &FrontmatterResult{
		Body:           body,
		BodyLineOffset: closing + 1,
	}

	frontmatter := make(map[string]any)
	if strings.TrimSpace(header) != "" {
		if err := yaml.Unmarshal([]byte(header), &frontmatter); err != nil {
			frontmatterLog.Printf("Header YAML parse failed: %v", err)
			// The body split is still sound, so the caller gets the partial
			// result alongside the parse error and can keep checking the body.
			return result, fmt.Errorf("invalid front matter: %w", err)
		}
	}

	result.Frontmatter = frontmatter
	frontmatterLog.Printf("Extracted frontmatter: fields=%d, body_size=%d bytes", len(frontmatter), len(body))
	return result, nil
}
