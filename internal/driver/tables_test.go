package driver

import (
	"testing"

	"volt/internal/version"
)

func TestCastTableCoversAllPairs(t *testing.T) {
	rows := CastTable()
	if len(rows) != 42 {
		t.Fatalf("cast table has %d rows, want 42", len(rows))
	}
	seen := map[string]string{}
	for _, r := range rows {
		seen[r.Src+"->"+r.Dst] = r.Rule
	}
	checks := map[string]string{
		"bool->f32": "uitofp",
		"bool->i32": "zext",
		"i8->i64":   "sext",
		"i64->i16":  "trunc",
		"i32->f64":  "sitofp",
		"f32->i32":  "fptosi",
		"f32->f64":  "fpext",
		"f64->f32":  "fptrunc",
		"i32->bool": "icmp ne",
		"f64->bool": "fcmp one",
	}
	for pair, rule := range checks {
		if seen[pair] != rule {
			t.Errorf("%s lowers as %q, want %q", pair, seen[pair], rule)
		}
	}
}

func TestBinaryTableMatrix(t *testing.T) {
	rows := BinaryTable()
	if len(rows) != 7*18 {
		t.Fatalf("binary table has %d rows, want %d", len(rows), 7*18)
	}
	find := func(kind, op string) BinaryRow {
		for _, r := range rows {
			if r.Kind == kind && r.Op == op {
				return r
			}
		}
		t.Fatalf("no row for %s %s", kind, op)
		return BinaryRow{}
	}

	if r := find("f32", "&&"); r.Rule != "binary operation error" || r.Result != "" {
		t.Errorf("f32 && row = %+v", r)
	}
	if r := find("f64", "^"); r.Rule != "binary operation error" {
		t.Errorf("f64 ^ row = %+v", r)
	}
	if r := find("i32", "<<"); r.Rule != "token error" {
		t.Errorf("i32 << row = %+v", r)
	}
	if r := find("bool", "&"); r.Rule != "and" || r.Result != "bool" {
		t.Errorf("bool & row = %+v", r)
	}
	if r := find("i64", "%"); r.Rule != "srem" || r.Result != "i64" {
		t.Errorf("i64 %% row = %+v", r)
	}
	if r := find("f64", "=="); r.Rule != "fcmp oeq" || r.Result != "bool" {
		t.Errorf("f64 == row = %+v", r)
	}
	if r := find("i16", ">"); r.Rule != "icmp sgt" || r.Result != "bool" {
		t.Errorf("i16 > row = %+v", r)
	}
	if r := find("f32", "%"); r.Rule != "frem" || r.Result != "f32" {
		t.Errorf("f32 %% row = %+v", r)
	}
}

func TestFingerprintStability(t *testing.T) {
	a, b := Fingerprint(), Fingerprint()
	if a != b {
		t.Fatal("fingerprint is not deterministic")
	}
	if len(a.Hex()) != 64 {
		t.Fatalf("Hex() = %q, want 64 chars", a.Hex())
	}
	if a.Short() != a.Hex()[:12] {
		t.Fatalf("Short() = %q, want prefix of %q", a.Short(), a.Hex())
	}

	orig := version.Version
	defer func() { version.Version = orig }()
	version.Version = orig + "-probe"
	if Fingerprint() == a {
		t.Fatal("fingerprint ignores the release version")
	}
}
