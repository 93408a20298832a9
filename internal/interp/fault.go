package interp

import "fmt"

// FaultCode identifies the type of execution fault.
type FaultCode int

// Stable fault codes - do not change values.
const (
	FaultDivideByZero  FaultCode = 2001 // EXEC2001: integer division by zero
	FaultIntOverflow   FaultCode = 2002 // EXEC2002: int64 division overflow
	FaultOutOfBounds   FaultCode = 2003 // EXEC2003: element address out of bounds
	FaultBadFunction   FaultCode = 2004 // EXEC2004: malformed instruction stream
	FaultUnimplemented FaultCode = 2999 // EXEC2999: unimplemented instruction
)

// String returns the code as "EXEC2001" format.
func (c FaultCode) String() string {
	return fmt.Sprintf("EXEC%d", c)
}

// Fault is a runtime failure while executing a function.
type Fault struct {
	Code    FaultCode
	Message string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("fault %s: %s", f.Code, f.Message)
}

func faultf(code FaultCode, format string, args ...any) *Fault {
	return &Fault{Code: code, Message: fmt.Sprintf(format, args...)}
}
