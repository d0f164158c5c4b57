package segment

import (
	"regexp"
	"strings"

	"github.com/taekim-dev/resume-rag-engine/config"
	"github.com/taekim-dev/resume-rag-engine/model"
)

// UnknownSection collects lines that precede the first recognized header.
// It is dropped from the output when empty.
const UnknownSection = "UNKNOWN"

// SocialsSection is the synthetic section that receives contact lines found
// before the first recognized header.
const SocialsSection = "SOCIALS"

var slashSpacingRegex = regexp.MustCompile(`\s*/\s*`)

var (
	emailRegex    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	linkedinRegex = regexp.MustCompile(`(?i)\blinkedin\.com/in/[\w-]+`)
	githubRegex   = regexp.MustCompile(`(?i)\bgithub\.com/[\w-]+`)
)

// CanonicalizeHeader normalizes a line for header matching: spacing around
// slashes becomes " / ", internal whitespace collapses, and the result is
// trimmed. Header matching is string equality, so extraction artifacts
// around slashes would otherwise break it.
func CanonicalizeHeader(line string) string {
	l := strings.TrimSpace(line)
	l = slashSpacingRegex.ReplaceAllString(l, " / ")
	l = spacingRegex.ReplaceAllString(l, " ")
	return l
}

// IsContactLine reports whether a line carries contact information (email,
// LinkedIn, GitHub). Contact info typically sits above the first header; it
// is routed into SOCIALS so questions like "what is the email" get a strong
// section-scoped hit.
func IsContactLine(line string) bool {
	lower := strings.ToLower(line)
	return emailRegex.MatchString(line) ||
		linkedinRegex.MatchString(line) ||
		githubRegex.MatchString(line) ||
		strings.Contains(lower, "linkedin.com") ||
		strings.Contains(lower, "github.com")
}

// SectionSplitter partitions normalized lines into named résumé sections
// using an ordered header vocabulary.
type SectionSplitter struct {
	headers   []string
	headerSet map[string]string // canonical uppercase form -> vocabulary spelling
}

// NewSectionSplitter creates a splitter for the given vocabulary. The first
// vocabulary entry that matches a line wins; matching is case and spacing
// insensitive but exact-token, never fuzzy.
func NewSectionSplitter(vocab *config.Vocabulary) *SectionSplitter {
	headerSet := make(map[string]string, len(vocab.SectionHeaders))
	for _, h := range vocab.SectionHeaders {
		key := strings.ToUpper(CanonicalizeHeader(h))
		if _, exists := headerSet[key]; !exists {
			headerSet[key] = h
		}
	}
	return &SectionSplitter{
		headers:   vocab.SectionHeaders,
		headerSet: headerSet,
	}
}

// MatchHeader returns the vocabulary spelling for a line that is a section
// header, or "" when the line is not one.
func (sp *SectionSplitter) MatchHeader(line string) string {
	if name, ok := sp.headerSet[strings.ToUpper(CanonicalizeHeader(line))]; ok {
		return name
	}
	return ""
}

// Split partitions lines into sections in document order. Lines before the
// first header accumulate into UNKNOWN; when the first real header appears,
// contact lines from UNKNOWN move into a synthetic SOCIALS section (led by
// the first non-contact line, usually the name) and the rest merge into that
// first section. UNKNOWN is omitted when it ends up empty. Every input line
// lands in exactly one section.
func (sp *SectionSplitter) Split(lines []string) []model.Section {
	sections := make([]model.Section, 0)
	byName := make(map[string]int)

	appendLine := func(name, line string) {
		idx, ok := byName[name]
		if !ok {
			sections = append(sections, model.Section{Name: name})
			idx = len(sections) - 1
			byName[name] = idx
		}
		if line != "" {
			sections[idx].Lines = append(sections[idx].Lines, line)
		}
	}

	current := UnknownSection
	sawFirstHeader := false
	var preamble []string

	for _, raw := range lines {
		header := sp.MatchHeader(raw)
		if header == "" {
			if !sawFirstHeader {
				preamble = append(preamble, raw)
			} else {
				appendLine(current, raw)
			}
			continue
		}

		if !sawFirstHeader {
			sawFirstHeader = true
			sp.routePreamble(preamble, header, appendLine)
			preamble = nil
		} else {
			appendLine(header, "")
		}
		current = header
	}

	// No header ever matched: everything stays in UNKNOWN.
	if !sawFirstHeader && len(preamble) > 0 {
		for _, ln := range preamble {
			appendLine(UnknownSection, ln)
		}
	}

	// Drop empty sections (the UNKNOWN fallback in particular).
	out := make([]model.Section, 0, len(sections))
	for _, sec := range sections {
		if len(sec.Lines) > 0 {
			out = append(out, sec)
		}
	}
	return out
}

// routePreamble distributes pre-header lines between SOCIALS and the first
// real section. With no contact lines present, the whole preamble merges
// into the first section.
func (sp *SectionSplitter) routePreamble(preamble []string, firstHeader string, appendLine func(name, line string)) {
	if len(preamble) == 0 {
		appendLine(firstHeader, "")
		return
	}

	var contact, other []string
	for _, ln := range preamble {
		if IsContactLine(ln) {
			contact = append(contact, ln)
		} else {
			other = append(other, ln)
		}
	}

	if len(contact) == 0 {
		for _, ln := range other {
			appendLine(firstHeader, ln)
		}
		return
	}

	// The first non-contact line is usually the name; keep it with the
	// contact items so SOCIALS reads naturally.
	if len(other) > 0 {
		appendLine(SocialsSection, other[0])
		for _, ln := range other[1:] {
			appendLine(firstHeader, ln)
		}
	} else {
		appendLine(firstHeader, "")
	}
	for _, ln := range contact {
		appendLine(SocialsSection, ln)
	}
}
