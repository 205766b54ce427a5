package dialect

import "testing"

func TestOpensBlock(t *testing.T) {
	py := Python()
	cases := map[string]bool{
		"def main():":       true,
		"if x > 1:":         true,
		"x = compute(":      true,
		"x = 1":             false,
		"iffy = 2":          false, // keyword must end at a word boundary
		"return x":          false,
		"class Foo(Base):":  true,
		"with open(p) as f": true,
	}
	for line, want := range cases {
		if got := py.OpensBlock(line); got != want {
			t.Errorf("OpensBlock(%q) = %v, want %v", line, got, want)
		}
	}
}

func TestClosesBlock(t *testing.T) {
	py := Python()
	cases := map[string]bool{
		"else:":        true,
		"elif x:":      true,
		"except Err:":  true,
		"finally:":     true,
		"}":            true,
		"x = 1":        false,
		"elsewhere()":  false,
		"exceptional":  false,
		"finally_do()": false,
	}
	for line, want := range cases {
		if got := py.ClosesBlock(line); got != want {
			t.Errorf("ClosesBlock(%q) = %v, want %v", line, got, want)
		}
	}
}

func TestIsDeclaration(t *testing.T) {
	g := Go()
	if !g.IsDeclaration("func handler(w http.ResponseWriter) {") {
		t.Error("expected func line to be a declaration")
	}
	if g.IsDeclaration("x := funcy()") {
		t.Error("funcy is not the func keyword")
	}
}

func TestForLanguageFallsBackToGeneric(t *testing.T) {
	if d := ForLanguage("Brainfuck"); d.Name != "generic" {
		t.Errorf("dialect = %s, want generic", d.Name)
	}
	if d := ForLanguage("TypeScript"); d.Name != "javascript" {
		t.Errorf("dialect = %s, want javascript", d.Name)
	}
}

func TestDetectFile(t *testing.T) {
	if d := DetectFile("service.py", []byte("def main():\n    pass\n")); d.Name != "python" {
		t.Errorf("dialect = %s, want python", d.Name)
	}
	if d := DetectFile("main.go", []byte("package main\n")); d.Name != "go" {
		t.Errorf("dialect = %s, want go", d.Name)
	}
}
