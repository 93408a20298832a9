package diag

import "fmt"

type Code uint16

const (
	UnknownCode Code = 0

	// Code generation (1000..1999)
	GenInfo             Code = 1000
	GenBitwiseFloatCast Code = 1001

	// Verification (2000..2999)
	VfyInfo       Code = 2000
	VfyCaseFailed Code = 2001
	VfyUnitFailed Code = 2002

	// IO: cache and manifest (3000..3999)
	IOInfo          Code = 3000
	IOCacheDegraded Code = 3001
	IOManifestBad   Code = 3002
)

var codeDescription = map[Code]string{
	UnknownCode:         "unknown",
	GenInfo:             "code generation note",
	GenBitwiseFloatCast: "implicit cast from float to int",
	VfyInfo:             "verification note",
	VfyCaseFailed:       "verification case failed",
	VfyUnitFailed:       "verification unit failed",
	IOInfo:              "io note",
	IOCacheDegraded:     "result cache unavailable",
	IOManifestBad:       "manifest rejected",
}

// ID returns the stable printable identifier, e.g. GEN1001.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("GEN%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("VFY%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("IO%04d", ic)
	default:
		return fmt.Sprintf("VOLT%04d", ic)
	}
}

// Title returns the short human description of the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
