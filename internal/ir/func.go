package ir

// Func is a straight-line instruction sequence. The coercion layer never
// emits control flow (logical operators evaluate both sides), so there are
// no blocks: instructions execute top to bottom.
type Func struct {
	Name      string
	Instrs    []Instr
	NumValues uint32
}

// NewFunc creates an empty function.
func NewFunc(name string) *Func {
	return &Func{Name: name}
}

// Module groups functions for dumping and serialization.
type Module struct {
	Name  string
	Funcs []*Func
}

// NewModule creates an empty module.
func NewModule(name string) *Module {
	return &Module{Name: name}
}

// Add appends a function to the module.
func (m *Module) Add(f *Func) {
	m.Funcs = append(m.Funcs, f)
}
