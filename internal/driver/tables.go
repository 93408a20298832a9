package driver

import (
	"volt/internal/codegen"
	"volt/internal/token"
	"volt/internal/types"
)

// CastRow is one directed conversion rule, rendered for table dumps.
type CastRow struct {
	Src  string `json:"src"`
	Dst  string `json:"dst"`
	Rule string `json:"rule"`
}

// CastTable renders every directed pair of distinct scalar kinds with the
// instruction its conversion lowers to, in kind declaration order.
func CastTable() []CastRow {
	rows := make([]CastRow, 0, 42)
	for _, src := range types.Scalars() {
		for _, dst := range types.Scalars() {
			if dst == src {
				continue
			}
			op, err := codegen.ResolveCast(src, dst, "")
			if err != nil {
				continue
			}
			rows = append(rows, CastRow{Src: src.String(), Dst: dst.String(), Rule: op.Mnemonic()})
		}
	}
	return rows
}

// BinaryRow is one operator dispatch outcome for one scalar kind. Rows for
// combinations without a lowering carry the error kind as the rule and no
// result.
type BinaryRow struct {
	Kind   string `json:"kind"`
	Op     string `json:"op"`
	Class  string `json:"class"`
	Result string `json:"result,omitempty"`
	Rule   string `json:"rule"`
}

// BinaryTable renders the full dispatch matrix, one row per kind and
// operator.
func BinaryTable() []BinaryRow {
	rows := make([]BinaryRow, 0, len(types.Scalars())*18)
	for _, s := range types.Scalars() {
		for _, op := range token.Operators() {
			row := BinaryRow{Kind: s.String(), Op: op.String(), Class: op.Class().String()}
			spec, err := codegen.ResolveBinary(s, op, "")
			if err != nil {
				row.Rule = codegen.KindOf(err).String()
			} else {
				row.Rule = spec.Mnemonic()
				if spec.IsCompare() {
					row.Result = types.Bool1.String()
				} else {
					row.Result = s.String()
				}
			}
			rows = append(rows, row)
		}
	}
	return rows
}
