package driver

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"volt/internal/diag"
	"volt/internal/ir"
)

func TestKernelsProduceExpectedResults(t *testing.T) {
	ks, warns, err := Kernels()
	if err != nil {
		t.Fatalf("Kernels: %v", err)
	}
	want := map[string]string{
		"lerp3":         "[0.5 0.875 1.25]",
		"truthy_mask":   "[false true true false]",
		"bitmask_blend": "2",
		"magnitude2":    "11.25",
		"quantize":      "[-3 -126 0]",
	}
	if len(ks) != len(want) {
		t.Fatalf("built %d kernels, want %d", len(ks), len(want))
	}
	for _, k := range ks {
		got, err := k.Run()
		if err != nil {
			t.Fatalf("%s: %v", k.Name, err)
		}
		if got != want[k.Name] {
			t.Errorf("%s = %s, want %s", k.Name, got, want[k.Name])
		}
	}
	if warns.Len() != 1 {
		t.Fatalf("kernels produced %d warnings, want 1", warns.Len())
	}
	if code := warns.Items()[0].Code; code != diag.GenBitwiseFloatCast {
		t.Fatalf("warning code = %s, want %s", code.ID(), diag.GenBitwiseFloatCast.ID())
	}
}

func TestKernelModuleDumpsAndEncodes(t *testing.T) {
	m, ks, _, err := KernelModule()
	if err != nil {
		t.Fatalf("KernelModule: %v", err)
	}
	if len(m.Funcs) != len(ks) {
		t.Fatalf("module has %d funcs, want %d", len(m.Funcs), len(ks))
	}

	var sb strings.Builder
	ir.Dump(&sb, m)
	out := sb.String()
	for _, k := range ks {
		if !strings.Contains(out, k.Name) {
			t.Errorf("dump is missing kernel %s", k.Name)
		}
	}
	// truthy_mask rides on the unordered compare for its NaN element
	if !strings.Contains(out, "fcmp une") {
		t.Error("dump is missing the unordered truth compare")
	}

	var buf bytes.Buffer
	if err := ir.EncodeModule(&buf, m); err != nil {
		t.Fatalf("EncodeModule: %v", err)
	}
	back, err := ir.DecodeModule(&buf)
	if err != nil {
		t.Fatalf("DecodeModule: %v", err)
	}
	if !reflect.DeepEqual(back, m) {
		t.Fatal("module changed across the codec round trip")
	}
}
