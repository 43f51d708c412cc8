package parser

import (
	"strings"

	"github.com/cartforge/cartlint/pkg/logger"
)

var sectionsLog = logger.New("parser:sections")

// headingMarker is the fixed level-2 heading syntax: two marker characters
// followed by a space.
const headingMarker = "## "

// Section is a level-2 heading found in a cartridge body, together with the
// byte range of its content (from the line after the heading up to the next
// level-2 heading or end of body).
type Section struct {
	// Title is the heading text after the marker, trimmed.
	Title string
	// Line is the 1-based line number of the heading within the body.
	Line int
	// start and end delimit the section content within the body.
	start int
	end   int
}

// Sections is the ordered result of tokenizing a body once. Section content
// lookups slice the original body instead of re-scanning it.
type Sections struct {
	body string
	list []Section
}

// ScanSections tokenizes a markdown body into its level-2 sections in order
// of appearance. Deeper headings ("###...") do not match the fixed marker
// and are ignored.
func ScanSections(body string) *Sections {
	var list []Section

	offset := 0
	lineNo := 0
	for _, line := range strings.SplitAfter(body, "\n") {
		lineNo++
		trimmed := strings.TrimRight(line, "\r\n")
		if strings.HasPrefix(trimmed, headingMarker) {
			// Close the previous section at this heading.
			if n := len(list); n > 0 {
				list[n-1].end = offset
			}
			list = append(list, Section{
				Title: strings.TrimSpace(trimmed[len(headingMarker):]),
				Line:  lineNo,
				start: offset + len(line),
				end:   len(body),
			})
		}
		offset += len(line)
	}

	sectionsLog.Printf("Tokenized body: sections=%d, lines=%d", len(list), lineNo)
	return &Sections{body: body, list: list}
}

// All returns the found sections in discovery order.
func (s *Sections) All() []Section {
	return s.list
}

// Extract returns the content of the first section whose title starts with
// name, and whether such a section exists. A missing section yields an empty
// result so dependent checks can be skipped silently.
func (s *Sections) Extract(name string) (string, bool) {
	for _, sec := range s.list {
		if strings.HasPrefix(sec.Title, name) {
			return s.body[sec.start:sec.end], true
		}
	}
	return "", false
}

// Find returns the first section whose title starts with name.
func (s *Sections) Find(name string) (Section, bool) {
	for _, sec := range s.list {
		if strings.HasPrefix(sec.Title, name) {
			return sec, true
		}
	}
	return Section{}, false
}
