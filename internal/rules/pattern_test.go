package rules

import "testing"

func TestParsePatternType(t *testing.T) {
	tests := []struct {
		input    string
		wantType PatternType
	}{
		{"^foo$", PatternRegex},
		{"re:^foo$", PatternRegex},
		{"path:/tmp/**", PatternPath},
		{"flags:rf", PatternFlag},
		{"flags[--]:recursive", PatternFlag},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := ParsePattern(tt.input)
			if err != nil {
				t.Fatalf("ParsePattern error: %v", err)
			}
			if p.Type != tt.wantType {
				t.Errorf("Type = %v, want %v", p.Type, tt.wantType)
			}
		})
	}
}

func TestPatternMatchesRegexIsFullMatch(t *testing.T) {
	p, err := ParsePattern(`-[0-9]+`)
	if err != nil {
		t.Fatalf("ParsePattern error: %v", err)
	}
	if !p.Matches("-9") {
		t.Errorf("Matches(-9) = false, want true")
	}
	if p.Matches("-9x") {
		t.Errorf("Matches(-9x) = true, want false (regex patterns are full-string matches)")
	}
}

func TestPatternMatchesNegation(t *testing.T) {
	p, err := ParsePattern("!re:^main$")
	if err != nil {
		t.Fatalf("ParsePattern error: %v", err)
	}
	if p.Matches("main") {
		t.Errorf("Matches(main) = true, want false under negation")
	}
	if !p.Matches("develop") {
		t.Errorf("Matches(develop) = false, want true under negation")
	}
}

func TestPatternMatchesPathGlob(t *testing.T) {
	p, err := ParsePattern("path:**/*.pem")
	if err != nil {
		t.Fatalf("ParsePattern error: %v", err)
	}
	if !p.Matches("secrets/prod.pem") {
		t.Errorf("Matches(secrets/prod.pem) = false, want true")
	}
	if p.Matches("secrets/prod.key") {
		t.Errorf("Matches(secrets/prod.key) = true, want false")
	}
}

func TestPatternMatchesFlags(t *testing.T) {
	tests := []struct {
		pattern string
		arg     string
		want    bool
	}{
		{"flags:rf", "-rf", true},
		{"flags:rf", "-fr", true},
		{"flags:rf", "-vrf", true},
		{"flags:rf", "-r", false},
		{"flags:rf", "--rf", false},
		{"flags[--]:recursive", "--recursive", true},
		{"flags[--]:recursive", "-recursive", false},
	}
	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.arg, func(t *testing.T) {
			p, err := ParsePattern(tt.pattern)
			if err != nil {
				t.Fatalf("ParsePattern error: %v", err)
			}
			if got := p.Matches(tt.arg); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.arg, got, tt.want)
			}
		})
	}
}

func TestParsePatternInvalidRegex(t *testing.T) {
	if _, err := ParsePattern("re:("); err == nil {
		t.Errorf("ParsePattern(\"re:(\") error = nil, want an error")
	}
}

func TestMatchGlob(t *testing.T) {
	if !MatchGlob("*.example.com", "build.example.com") {
		t.Errorf("MatchGlob(*.example.com, build.example.com) = false, want true")
	}
	if MatchGlob("*.example.com", "example.com") {
		t.Errorf("MatchGlob(*.example.com, example.com) = true, want false")
	}
}
