package ir

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// SchemaVersion guards the serialized module layout. Increment on any
// change to Instr or its payload structs.
const SchemaVersion uint16 = 1

type modulePayload struct {
	Schema uint16
	Name   string
	Funcs  []*Func
}

// EncodeModule serializes a module to w.
func EncodeModule(w io.Writer, m *Module) error {
	enc := msgpack.NewEncoder(w)
	return enc.Encode(modulePayload{Schema: SchemaVersion, Name: m.Name, Funcs: m.Funcs})
}

// DecodeModule deserializes a module from r.
func DecodeModule(r io.Reader) (*Module, error) {
	var p modulePayload
	dec := msgpack.NewDecoder(r)
	if err := dec.Decode(&p); err != nil {
		return nil, err
	}
	if p.Schema != SchemaVersion {
		return nil, fmt.Errorf("ir: module schema %d, want %d", p.Schema, SchemaVersion)
	}
	return &Module{Name: p.Name, Funcs: p.Funcs}, nil
}
