package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	internalErrors "github.com/taekim-dev/resume-rag-engine/internal/errors"
)

// Keyword maps a canonical keyword to its lowercase surface variants.
// Variants are matched as substrings against the chunk text padded with
// boundary spaces, so a variant like " ai " matches the word "AI" but not the
// substring inside "said".
type Keyword struct {
	Canonical string   `yaml:"canonical" json:"canonical"`
	Variants  []string `yaml:"variants" json:"variants"`
}

// Vocabulary holds the controlled vocabularies consumed by the pipeline.
// Order matters: the first matching section header wins, and keyword scan
// order determines the first-seen ordering of extracted keywords.
type Vocabulary struct {
	SectionHeaders []string  `yaml:"section_headers" json:"section_headers"`
	Keywords       []Keyword `yaml:"keywords" json:"keywords"`
	// PhraseTerms get a flat retrieval bonus when present in both the query
	// and a chunk's text after phrase normalization.
	PhraseTerms []string `yaml:"phrase_terms" json:"phrase_terms"`
}

// LoadVocabulary reads a vocabulary from a YAML file. Empty lists fall back
// to the compiled-in defaults so a partial override file stays useful.
func LoadVocabulary(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file %s: %w", path, err)
	}

	vocab := &Vocabulary{}
	if err := yaml.Unmarshal(data, vocab); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary file %s: %w", path, err)
	}

	defaults := DefaultVocabulary()
	if len(vocab.SectionHeaders) == 0 {
		vocab.SectionHeaders = defaults.SectionHeaders
	}
	if len(vocab.Keywords) == 0 {
		vocab.Keywords = defaults.Keywords
	}
	if len(vocab.PhraseTerms) == 0 {
		vocab.PhraseTerms = defaults.PhraseTerms
	}
	if err := vocab.Validate(); err != nil {
		return nil, err
	}
	return vocab, nil
}

// Validate rejects vocabularies that would make segmentation or keyword
// extraction silently inert.
func (v *Vocabulary) Validate() error {
	if len(v.SectionHeaders) == 0 {
		return internalErrors.NewInvalidConfigError("section_headers", "cannot be empty")
	}
	for _, kw := range v.Keywords {
		if kw.Canonical == "" {
			return internalErrors.NewInvalidConfigError("keywords", "canonical keyword cannot be empty")
		}
		if len(kw.Variants) == 0 {
			return internalErrors.NewInvalidConfigError("keywords", fmt.Sprintf("keyword %q has no variants", kw.Canonical))
		}
	}
	return nil
}

// DefaultVocabulary returns the vocabularies tuned for a software-engineering
// résumé. PDF-to-text extraction often changes spacing and punctuation, so
// the header list carries common variants to avoid everything falling into
// the UNKNOWN section.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		SectionHeaders: []string{
			"EDUCATION",
			"PROFESSIONAL EXPERIENCE",
			"PROFESSIONAL EXPERIENCE / LEADERSHIP",
			"PROFESSIONAL EXPERIENCE/LEADERSHIP",
			"PROJECTS",
			"TECHNICAL / SOFT SKILLS",
			"TECHNICAL/SOFT SKILLS",
			"SKILLS",
			"SOCIALS",
			"CONTACT",
			"CONTACT INFO",
		},
		Keywords: []Keyword{
			{Canonical: "AI", Variants: []string{" ai ", "artificial intelligence"}},
			{Canonical: "LLM", Variants: []string{" llm", "large language model", "gpt"}},
			{Canonical: "RAG", Variants: []string{" rag", "retrieval augmented"}},
			{Canonical: "FastAPI", Variants: []string{"fastapi"}},
			{Canonical: "OpenAI API", Variants: []string{"openai"}},
			{Canonical: "Socket.IO", Variants: []string{"socket.io", "socketio"}},
			{Canonical: "WebSockets", Variants: []string{"websocket"}},
			{Canonical: "Python", Variants: []string{"python"}},
			{Canonical: "TypeScript", Variants: []string{"typescript"}},
			{Canonical: "React", Variants: []string{"react"}},
			{Canonical: "PostgreSQL", Variants: []string{"postgres"}},
			{Canonical: "MongoDB", Variants: []string{"mongodb"}},
			{Canonical: "SQLModel", Variants: []string{"sqlmodel"}},
			{Canonical: "ChromaDB", Variants: []string{"chromadb", "chroma"}},
			{Canonical: "Docker", Variants: []string{"docker"}},
			{Canonical: "AWS", Variants: []string{"aws", "amazon web services"}},
			{Canonical: "Supabase", Variants: []string{"supabase"}},
			{Canonical: "Vercel", Variants: []string{"vercel"}},
			{Canonical: "Railway", Variants: []string{"railway"}},
			{Canonical: "Tailwind", Variants: []string{"tailwind"}},
			{Canonical: "Node.js", Variants: []string{"node.js", "nodejs"}},
			{Canonical: "REST", Variants: []string{"rest", "restful"}},
			{Canonical: "Go", Variants: []string{"golang", " go "}},
		},
		PhraseTerms: []string{
			"fastapi", "socket.io", "socketio", "openai", "rag", "llm",
			"websocket", "backend", "ai", "real-time",
		},
	}
}
