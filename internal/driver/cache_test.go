package driver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

func testReport() *Report {
	return &Report{
		Fingerprint: "abc",
		Cases:       3,
		Units: []UnitReport{
			{Unit: "precedence", Cases: 2},
			{Unit: "arrays", Cases: 1, Failures: nil},
		},
	}
}

func TestCacheRoundTrip(t *testing.T) {
	c, err := OpenCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenCacheAt: %v", err)
	}
	var key Digest
	key[0] = 7

	var out Report
	if ok, err := c.Get(key, &out); err != nil || ok {
		t.Fatalf("Get on empty cache = (%v, %v), want miss", ok, err)
	}

	if err := c.Put(key, testReport()); err != nil {
		t.Fatalf("Put: %v", err)
	}
	ok, err := c.Get(key, &out)
	if err != nil || !ok {
		t.Fatalf("Get after Put = (%v, %v), want hit", ok, err)
	}
	if out.Fingerprint != "abc" || out.Cases != 3 || len(out.Units) != 2 {
		t.Fatalf("report came back mangled: %+v", out)
	}
	if out.Units[0].Unit != "precedence" {
		t.Fatalf("unit order not preserved: %+v", out.Units)
	}

	var other Digest
	other[0] = 8
	if ok, _ := c.Get(other, &out); ok {
		t.Fatal("different key must miss")
	}
}

func TestCacheStaleSchemaIsAMiss(t *testing.T) {
	c, err := OpenCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenCacheAt: %v", err)
	}
	var key Digest
	key[0] = 9
	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	f, err := os.Create(p)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := msgpack.NewEncoder(f).Encode(&cachePayload{Schema: 99}); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	var out Report
	ok, err := c.Get(key, &out)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatal("entry with a foreign schema must read as a miss")
	}
}

func TestCacheCorruptEntryReturnsError(t *testing.T) {
	c, err := OpenCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenCacheAt: %v", err)
	}
	var key Digest
	key[0] = 11
	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(p, []byte{0xc1, 0xc1, 0xc1}, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	var out Report
	if _, err := c.Get(key, &out); err == nil {
		t.Fatal("corrupt entry should surface an error")
	}
}

func TestCacheDropAll(t *testing.T) {
	c, err := OpenCacheAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenCacheAt: %v", err)
	}
	var key Digest
	key[0] = 13
	if err := c.Put(key, testReport()); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := c.DropAll(); err != nil {
		t.Fatalf("DropAll: %v", err)
	}
	var out Report
	if ok, _ := c.Get(key, &out); ok {
		t.Fatal("dropped cache still serves entries")
	}
}

func TestCacheNilReceiver(t *testing.T) {
	var c *Cache
	var key Digest
	if err := c.Put(key, testReport()); err != nil {
		t.Fatalf("nil Put: %v", err)
	}
	var out Report
	if ok, err := c.Get(key, &out); ok || err != nil {
		t.Fatalf("nil Get = (%v, %v), want a quiet miss", ok, err)
	}
	if err := c.DropAll(); err != nil {
		t.Fatalf("nil DropAll: %v", err)
	}
	if c.Dir() != "" {
		t.Fatalf("nil Dir() = %q", c.Dir())
	}
}
