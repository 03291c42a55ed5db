package core

import "testing"

func TestSyntaxForPath(t *testing.T) {
	cases := []struct {
		path string
		want string
		ok   bool
	}{
		{"src/dh_check.c", "c", true},
		{"pkg/parser.go", "go", true},
		{"deploy/run.SH", "shell", true},
		{"schema/init.sql", "sql", true},
		{"README.md", "", false},
	}
	for _, tc := range cases {
		syn, ok := SyntaxForPath(tc.path)
		if ok != tc.ok {
			t.Errorf("%s: expected ok=%v, got %v", tc.path, tc.ok, ok)
			continue
		}
		if ok && syn.Name != tc.want {
			t.Errorf("%s: expected language %q, got %q", tc.path, tc.want, syn.Name)
		}
	}
}

func TestRegisterSyntax_OverridesAndExtends(t *testing.T) {
	RegisterSyntax(Syntax{
		Name:       "ini",
		Extensions: []string{".ini"},
		Line:       ";",
	})

	syn, ok := SyntaxForPath("settings.ini")
	if !ok || syn.Name != "ini" {
		t.Fatalf("expected registered ini syntax, got ok=%v %+v", ok, syn)
	}

	tokens, err := ExtractComments("key=1\n; note\n", syn)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 1 || tokens[0].Text != "; note" {
		t.Errorf("unexpected tokens: %+v", tokens)
	}
}
