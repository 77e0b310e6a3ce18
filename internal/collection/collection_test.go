package collection

import (
	"testing"

	"github.com/nstuweb/campus-backend/internal/apperr"
)

type note struct {
	ID   string
	Text string
	Done bool
}

func (n note) EntryID() string { return n.ID }

func TestAppendKeepsContentDuplicates(t *testing.T) {
	list := []note{{ID: "a", Text: "wash dishes"}}
	list = Append(list, note{ID: "b", Text: "wash dishes"})
	if len(list) != 2 {
		t.Fatalf("len: want=%d got=%d", 2, len(list))
	}
	if list[0].ID == list[1].ID {
		t.Fatalf("ids must differ: %q", list[0].ID)
	}
}

func TestPatchTouchesOnlyTarget(t *testing.T) {
	list := []note{
		{ID: "a", Text: "first"},
		{ID: "b", Text: "second"},
	}
	ok := Patch(list, "b", func(n *note) { n.Done = true })
	if !ok {
		t.Fatalf("Patch: want=true got=false")
	}
	if list[0].Done {
		t.Fatalf("entry %q patched by mistake", list[0].ID)
	}
	if !list[1].Done {
		t.Fatalf("entry %q not patched", list[1].ID)
	}
	if list[1].Text != "second" {
		t.Fatalf("untouched field changed: want=%q got=%q", "second", list[1].Text)
	}
}

func TestPatchMissingLeavesListUntouched(t *testing.T) {
	list := []note{{ID: "a"}}
	ok := Patch(list, "nope", func(n *note) { n.Done = true })
	if ok {
		t.Fatalf("Patch: want=false got=true")
	}
	if list[0].Done {
		t.Fatalf("list mutated on miss")
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	list := []note{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	list = Remove(list, "b")
	if len(list) != 2 {
		t.Fatalf("len after first remove: want=%d got=%d", 2, len(list))
	}
	list = Remove(list, "b")
	if len(list) != 2 {
		t.Fatalf("len after second remove: want=%d got=%d", 2, len(list))
	}
	if list[0].ID != "a" || list[1].ID != "c" {
		t.Fatalf("survivors: want=[a c] got=[%s %s]", list[0].ID, list[1].ID)
	}
}

func TestContains(t *testing.T) {
	list := []note{{ID: "a"}}
	if !Contains(list, "a") {
		t.Fatalf("Contains(a): want=true got=false")
	}
	if Contains(list, "b") {
		t.Fatalf("Contains(b): want=false got=true")
	}
}

func TestParseOp(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		allowed []Op
		want    Op
		wantErr bool
	}{
		{name: "allowed code", code: "create", allowed: []Op{OpCreate, OpDelete}, want: OpCreate},
		{name: "second allowed code", code: "delete", allowed: []Op{OpCreate, OpDelete}, want: OpDelete},
		{name: "valid code outside set", code: "join", allowed: []Op{OpCreate, OpDelete}, wantErr: true},
		{name: "unknown code", code: "destroy", allowed: []Op{OpCreate, OpDelete}, wantErr: true},
		{name: "empty code", code: "", allowed: []Op{OpCreate, OpDelete}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOp(tt.code, tt.allowed...)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseOp(%q): expected error, got nil", tt.code)
				}
				if !apperr.IsCode(err, apperr.CodeInvalid) {
					t.Fatalf("ParseOp(%q): want code %q, got %v", tt.code, apperr.CodeInvalid, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseOp(%q): %v", tt.code, err)
			}
			if got != tt.want {
				t.Fatalf("ParseOp(%q): want=%v got=%v", tt.code, tt.want, got)
			}
		})
	}
}

func TestOpString(t *testing.T) {
	if got := OpJoin.String(); got != "join" {
		t.Fatalf("String: want=%q got=%q", "join", got)
	}
	if got := Op(99).String(); got != "unknown" {
		t.Fatalf("String: want=%q got=%q", "unknown", got)
	}
}
