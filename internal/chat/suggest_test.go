package chat

import "testing"

func TestParseSuggestionLines(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "clean lines",
			text: "How does it work?\nIs it safe?\nWhat does it cost?",
			want: []string{"How does it work?", "Is it safe?", "What does it cost?"},
		},
		{
			name: "numbered markers stripped",
			text: "1) First?\n2. Second?\n3- Third?",
			want: []string{"First?", "Second?", "Third?"},
		},
		{
			name: "bullet markers stripped",
			text: "- First?\n• Second?\n* Third?",
			want: []string{"First?", "Second?", "Third?"},
		},
		{
			name: "blank lines dropped and truncated to three",
			text: "\nOne?\n\nTwo?\nThree?\nFour?\n",
			want: []string{"One?", "Two?", "Three?"},
		},
		{
			name: "all markers no content",
			text: "- \n1) \n",
			want: nil,
		},
		{
			name: "empty text",
			text: "",
			want: nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := parseSuggestionLines(tc.text)
			if len(got) != len(tc.want) {
				t.Fatalf("parseSuggestionLines() = %v, want %v", got, tc.want)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Fatalf("line %d = %q, want %q", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestOutcomeWithDefault(t *testing.T) {
	if got := ok("value").WithDefault("default"); got != "value" {
		t.Fatalf("ok WithDefault = %q, want value", got)
	}
	if got := fail[string](errNoSuggestions).WithDefault("default"); got != "default" {
		t.Fatalf("fail WithDefault = %q, want default", got)
	}
	if fail[string](errNoSuggestions).Err() == nil {
		t.Fatalf("fail Err() = nil, want error")
	}
}
