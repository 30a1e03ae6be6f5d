package agent

import "testing"

func TestKeywordClassifier(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		list      bool
		summarize bool
	}{
		{"list only", "list my notes", true, false},
		{"summarize only", "summarize my notes", false, true},
		{"both", "list and summarize everything", true, true},
		{"both reversed", "summarize and then list", true, true},
		{"case insensitive", "Please LIST my Notes", true, false},
		{"substring match", "give me a checklist", true, false},
		{"no keyword", "what's the weather", false, false},
		{"empty", "", false, false},
		{"whitespace only", "   \t\n", false, false},
	}

	var c KeywordClassifier
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := c.Classify(tt.query)
			if intent.List != tt.list {
				t.Errorf("List = %v, want %v", intent.List, tt.list)
			}
			if intent.Summarize != tt.summarize {
				t.Errorf("Summarize = %v, want %v", intent.Summarize, tt.summarize)
			}
		})
	}
}

func TestIntentNone(t *testing.T) {
	if !(Intent{}).None() {
		t.Error("zero intent should be none")
	}
	if (Intent{List: true}).None() {
		t.Error("list intent should not be none")
	}
	if (Intent{Summarize: true}).None() {
		t.Error("summarize intent should not be none")
	}
}
