package lexical

import (
	"testing"

	mlspec "github.com/nihei9/maleeni/spec"
)

func TestLexerDef_Maleeni(t *testing.T) {
	def, err := NewLexerDef([]*Rule{
		{Name: "INT", Pattern: "[0-9]+"},
		{Pattern: `[ \t]+`},
		{Name: "ID", Pattern: "[a-z]+"},
		{Pattern: `#[^\n]*`},
	})
	if err != nil {
		t.Fatalf("unexpected error; got: %v", err)
	}

	mlSpec, skip := def.Maleeni()
	wantKinds := []string{"INT", "x_1", "ID", "x_2"}
	if len(mlSpec.Entries) != len(wantKinds) {
		t.Fatalf("unexpected entry count; want: %v, got: %v", len(wantKinds), len(mlSpec.Entries))
	}
	for i, kind := range wantKinds {
		if mlSpec.Entries[i].Kind != mlspec.LexKindName(kind) {
			t.Errorf("unexpected kind at %v; want: %v, got: %v", i, kind, mlSpec.Entries[i].Kind)
		}
	}
	if mlSpec.Entries[0].Pattern != mlspec.LexPattern("[0-9]+") {
		t.Errorf("unexpected pattern; got: %v", mlSpec.Entries[0].Pattern)
	}

	if len(skip) != 2 || skip[0] != "x_1" || skip[1] != "x_2" {
		t.Errorf("unexpected skip kinds; got: %v", skip)
	}
}
