package segment

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "collapses spaces and tabs",
			input:    "Acme   Corp\t\tEngineer",
			expected: "Acme Corp Engineer",
		},
		{
			name:     "carriage returns become newlines",
			input:    "line one\rline two",
			expected: "line one\nline two",
		},
		{
			name:     "outer whitespace trimmed",
			input:    "  \n EXPERIENCE \n ",
			expected: "EXPERIENCE",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeDeterministic(t *testing.T) {
	input := "EXPERIENCE\r\nAcme   Corp | Engineer\t| 2022\n\n• Built things"
	if Normalize(input) != Normalize(input) {
		t.Error("Normalize must be deterministic for identical input")
	}
}

func TestToLines(t *testing.T) {
	input := "EXPERIENCE\n\nAcme Corp | Engineer | 2022\n   \n• Built REST API\n"
	expected := []string{"EXPERIENCE", "Acme Corp | Engineer | 2022", "• Built REST API"}

	if got := ToLines(input); !reflect.DeepEqual(got, expected) {
		t.Errorf("ToLines() = %v, want %v", got, expected)
	}
}

func TestToLinesEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\n\t\n"} {
		if got := ToLines(input); len(got) != 0 {
			t.Errorf("ToLines(%q) = %v, want empty", input, got)
		}
	}
}
