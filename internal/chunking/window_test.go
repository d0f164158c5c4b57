package chunking

import (
	"reflect"
	"strings"
	"testing"
)

func TestSlidingWindowBasic(t *testing.T) {
	// size=8, overlap=2 => step=6. First window [0,8) is exactly "abcdefgh"
	// (the boundary falls on whitespace); the second starts at 6 and extends
	// to the end of "ijklmnop".
	chunks := SlidingWindow("abcdefgh ijklmnop", 8, 2)
	expected := []string{"abcdefgh", "gh ijklmnop"}

	if !reflect.DeepEqual(chunks, expected) {
		t.Errorf("SlidingWindow() = %v, want %v", chunks, expected)
	}
}

func TestSlidingWindowExtendsPastWordBoundary(t *testing.T) {
	// The right boundary of the first window lands inside "jumped"; it must
	// extend to the end of the word instead of truncating it.
	text := "the fox jumped over the lazy dog"
	chunks := SlidingWindow(text, 10, 3)

	for _, chunk := range chunks {
		words := strings.Fields(chunk)
		last := words[len(words)-1]
		if !strings.Contains(text, last) {
			t.Errorf("chunk %q ends in truncated token %q", chunk, last)
		}
	}
	if !strings.HasSuffix(chunks[0], "jumped") {
		t.Errorf("first chunk should extend to end of word, got %q", chunks[0])
	}
}

func TestSlidingWindowOverlapInvariant(t *testing.T) {
	text := strings.Repeat("alpha beta gamma delta epsilon ", 20)
	size, overlap := 50, 10
	chunks := SlidingWindow(text, size, overlap)

	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}

	// Consecutive windows start step runes apart, so each chunk must share
	// its tail with the head of the next (modulo whitespace trimming and
	// word-boundary extension).
	for i := 0; i < len(chunks)-1; i++ {
		head := strings.Fields(chunks[i+1])[0]
		if !strings.Contains(chunks[i], head) {
			t.Errorf("chunk %d does not overlap with chunk %d: %q / %q", i, i+1, chunks[i], chunks[i+1])
		}
	}
}

func TestSlidingWindowNoEmptyChunks(t *testing.T) {
	chunks := SlidingWindow("word   "+strings.Repeat(" ", 30)+"   tail", 10, 2)
	for _, c := range chunks {
		if strings.TrimSpace(c) == "" {
			t.Error("found empty chunk after trimming")
		}
	}
}

func TestSlidingWindowEmptyInput(t *testing.T) {
	for _, input := range []string{"", "    ", "\n\t"} {
		if chunks := SlidingWindow(input, 100, 10); len(chunks) != 0 {
			t.Errorf("SlidingWindow(%q) = %v, want empty", input, chunks)
		}
	}
}

func TestSlidingWindowShortText(t *testing.T) {
	chunks := SlidingWindow("short", 500, 100)
	if len(chunks) != 1 || chunks[0] != "short" {
		t.Errorf("SlidingWindow(short text) = %v, want [short]", chunks)
	}
}

func TestSlidingWindowDeterministic(t *testing.T) {
	text := strings.Repeat("Built REST API with Python and Docker. ", 40)
	a := SlidingWindow(text, 500, 100)
	b := SlidingWindow(text, 500, 100)
	if !reflect.DeepEqual(a, b) {
		t.Error("SlidingWindow must be deterministic for identical input")
	}
}
