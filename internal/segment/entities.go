package segment

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/taekim-dev/resume-rag-engine/config"
	"github.com/taekim-dev/resume-rag-engine/model"
)

// GeneralEntity is the fallback block name when a section contains no
// detectable entity header.
const GeneralEntity = "General"

// entitySeparators in priority order: pipe, em dash, en dash. The canonical
// header shape is "Company | Role | Dates".
var entitySeparators = []string{"|", "—", "–"}

// bulletRegex matches bullet glyphs, numbered lists (1. 2) 10.) and lettered
// lists (a) b.).
var bulletRegex = regexp.MustCompile(`^\s*([•·●▪◦‣⁃–—\-*o]|\d{1,2}[.)]|[a-zA-Z][.)])\s+`)

var (
	monthRegex = regexp.MustCompile(`(?i)\b(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Sept|Oct|Nov|Dec)\b`)
	yearRegex  = regexp.MustCompile(`\b(19|20)\d{2}\b`)
)

// titleWordRegex matches word tokens of two or more characters considered
// for the title-case ratio.
var titleWordRegex = regexp.MustCompile(`[A-Za-z][A-Za-z&.'-]+`)

// EntityGrouper groups a section's lines into entity blocks, one employer,
// project, or school per block.
type EntityGrouper struct {
	cfg      *config.Config
	splitter *SectionSplitter
}

// NewEntityGrouper creates a grouper. The splitter is consulted so that a
// stray section header inside section content never becomes an entity.
func NewEntityGrouper(cfg *config.Config, splitter *SectionSplitter) *EntityGrouper {
	return &EntityGrouper{cfg: cfg, splitter: splitter}
}

// LeadingSpaces counts the leading space characters of a line.
func LeadingSpaces(line string) int {
	return len(line) - len(strings.TrimLeft(line, " "))
}

// IsBullet reports whether a line is a bullet item. Extraction frequently
// drops bullet glyphs but keeps indentation, so indentation at or beyond the
// configured threshold acts as a fallback signal. The fallback can
// misclassify short indented non-bullet lines; that imprecision is accepted.
func (g *EntityGrouper) IsBullet(line string) bool {
	if bulletRegex.MatchString(line) {
		return true
	}
	return LeadingSpaces(line) >= g.cfg.BulletIndentThreshold
}

// HasDateSignal reports whether a line contains a date-like token: a 4-digit
// year in the 1900-2099 range or a month abbreviation.
func HasDateSignal(s string) bool {
	return yearRegex.MatchString(s) || monthRegex.MatchString(s)
}

// TitleCaseRatio returns the fraction of word tokens starting with an
// uppercase letter, 0 when the line has no word tokens.
func TitleCaseRatio(s string) float64 {
	words := titleWordRegex.FindAllString(s, -1)
	if len(words) == 0 {
		return 0
	}
	upper := 0
	for _, w := range words {
		if unicode.IsUpper(rune(w[0])) {
			upper++
		}
	}
	return float64(upper) / float64(len(words))
}

func containsSeparator(s string) bool {
	for _, sep := range entitySeparators {
		if strings.Contains(s, sep) {
			return true
		}
	}
	return false
}

// IsProbableEntityLine classifies a line as an entity header. Disqualifiers
// run first and short-circuit: empty lines, section headers, and bullets are
// never entity headers. A surviving line qualifies when it contains a
// separator token, or pairs a date signal with a title-case ratio at or
// above the configured date threshold, or is short and proper-noun-like.
func (g *EntityGrouper) IsProbableEntityLine(line string) bool {
	s := strings.TrimSpace(line)
	if s == "" {
		return false
	}
	if g.splitter.MatchHeader(s) != "" {
		return false
	}
	if g.IsBullet(line) {
		return false
	}

	if containsSeparator(s) {
		return true
	}
	if HasDateSignal(s) && TitleCaseRatio(s) >= g.cfg.TitleCaseWithDate {
		return true
	}
	if len(s) <= g.cfg.MaxEntityHeaderLen && TitleCaseRatio(s) >= g.cfg.TitleCaseShortLine {
		return true
	}
	return false
}

// ExtractEntity returns the entity name for a header line: the trimmed text
// strictly left of the first separator, checked in priority order, or the
// trimmed full line when no separator is present.
func ExtractEntity(line string) string {
	s := strings.TrimSpace(line)
	for _, sep := range entitySeparators {
		if idx := strings.Index(s, sep); idx >= 0 {
			return strings.TrimSpace(s[:idx])
		}
	}
	return s
}

// Group scans a section's lines in order and cuts them into entity blocks.
// An entity header flushes the accumulating block and opens a new one named
// by the extracted entity; the header line itself belongs to its block. Lines
// before the first header, or an entire section without one, form a block
// named General. Blocks partition the section with no gaps or overlaps.
func (g *EntityGrouper) Group(section model.Section) []model.EntityBlock {
	blocks := make([]model.EntityBlock, 0)
	var entity string
	var buf []string

	flush := func() {
		if entity != "" && len(buf) > 0 {
			blocks = append(blocks, model.EntityBlock{
				Section: section.Name,
				Entity:  entity,
				Content: strings.TrimSpace(strings.Join(buf, "\n")),
			})
		}
		entity, buf = "", nil
	}

	for _, ln := range section.Lines {
		s := strings.TrimSpace(ln)
		if s == "" {
			continue
		}

		if g.IsProbableEntityLine(ln) {
			flush()
			entity = ExtractEntity(s)
			if entity == "" {
				// Separator with nothing on its left, e.g. "| Engineer | 2022".
				entity = GeneralEntity
			}
			buf = append(buf, s)
			continue
		}

		if entity == "" {
			entity = GeneralEntity
		}
		buf = append(buf, s)
	}
	flush()

	return blocks
}
