package canvases

import "testing"

func TestCopyTitle(t *testing.T) {
	if got := CopyTitle("Intro"); got != "Copy of Intro" {
		t.Fatalf("CopyTitle(%q) = %q, want %q", "Intro", got, "Copy of Intro")
	}
}

func TestNextCopyTitle(t *testing.T) {
	cases := []struct {
		name     string
		base     string
		existing []string
		want     string
	}{
		{
			name: "no existing copies stays unnumbered",
			base: "Copy of Intro",
			want: "Copy of Intro",
		},
		{
			name:     "counts the highest numeric suffix",
			base:     "Copy of Intro",
			existing: []string{"Copy of Intro", "Copy of Intro (2)"},
			want:     "Copy of Intro (3)",
		},
		{
			name:     "bare copies parse to no number",
			base:     "Copy of Intro",
			existing: []string{"Copy of Intro"},
			want:     "Copy of Intro (1)",
		},
		{
			name:     "gaps are not filled",
			base:     "Copy of Intro",
			existing: []string{"Copy of Intro (5)"},
			want:     "Copy of Intro (6)",
		},
		{
			name:     "suffix must close the title",
			base:     "Copy of Intro",
			existing: []string{"Copy of Intro (2) draft", "Copy of Intro (notes)"},
			want:     "Copy of Intro (1)",
		},
		{
			name:     "suffix parse is case-sensitive",
			base:     "Copy of Intro",
			existing: []string{"copy of intro (7)"},
			want:     "Copy of Intro (1)",
		},
		{
			// a trailing parenthesized number in the source title itself is
			// indistinguishable from a copy count; kept as-is
			name:     "title ending in a parenthesized number",
			base:     "Copy of Intro (2024)",
			existing: []string{"Copy of Intro (2024)"},
			want:     "Copy of Intro (2024) (2025)",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NextCopyTitle(tc.base, tc.existing); got != tc.want {
				t.Fatalf("NextCopyTitle(%q, %v) = %q, want %q", tc.base, tc.existing, got, tc.want)
			}
		})
	}
}

func TestHasCopyPrefix(t *testing.T) {
	cases := []struct {
		title string
		base  string
		want  bool
	}{
		{"Copy of Intro", "Copy of Intro", true},
		{"Copy of Intro (2)", "Copy of Intro", true},
		{"copy of intro (2)", "Copy of Intro", true},
		{"Copy of Intr", "Copy of Intro", false},
		{"My Copy of Intro", "Copy of Intro", false},
	}

	for _, tc := range cases {
		if got := HasCopyPrefix(tc.title, tc.base); got != tc.want {
			t.Fatalf("HasCopyPrefix(%q, %q) = %v, want %v", tc.title, tc.base, got, tc.want)
		}
	}
}
