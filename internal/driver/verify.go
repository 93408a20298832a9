package driver

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"volt/internal/codegen"
	"volt/internal/diag"
	"volt/internal/interp"
	"volt/internal/ir"
	"volt/internal/token"
	"volt/internal/types"
)

// Options configures a verification run.
type Options struct {
	// Jobs caps concurrent units; <= 0 means one per CPU.
	Jobs int
	// Cache, when set, serves a clean prior report for an unchanged
	// fingerprint and stores the new one after a clean run.
	Cache *Cache
	// RefreshCache skips the lookup but still stores the result.
	RefreshCache bool
	// Progress receives unit lifecycle events, e.g. for a terminal UI.
	Progress ProgressSink
	// Timer, when set, collects phase timings.
	Timer *Timer
	// Diags collects non-fatal degradations such as cache failures.
	Diags *diag.Bag
}

// CaseFailure is one matrix case whose generated code disagreed with the
// reference model.
type CaseFailure struct {
	Case string `json:"case"`
	Got  string `json:"got"`
	Want string `json:"want"`
}

// UnitReport summarizes one verification unit.
type UnitReport struct {
	Unit      string        `json:"unit"`
	Cases     int           `json:"cases"`
	Failures  []CaseFailure `json:"failures,omitempty"`
	ElapsedMS float64       `json:"elapsed_ms"`
}

// Report is the outcome of a full verification run.
type Report struct {
	Fingerprint string       `json:"fingerprint"`
	Units       []UnitReport `json:"units"`
	Cases       int          `json:"cases"`
	Failures    int          `json:"failures"`
	FromCache   bool         `json:"from_cache"`
}

// Clean reports whether every case passed.
func (r *Report) Clean() bool {
	return r != nil && r.Failures == 0
}

// Verify runs the full verification matrix: every cast pair, every
// operator against every scalar kind, truthiness coercions, promotion and
// the array paths, each checked against the reference model. Units run
// concurrently, one builder and one function per unit. The returned error
// covers infrastructure problems only; semantic disagreements land in the
// report as failures.
func Verify(ctx context.Context, opts Options) (*Report, error) {
	sink := opts.Progress
	if sink == nil {
		sink = discardSink{}
	}
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	idx := opts.Timer.Begin("fingerprint")
	fp := Fingerprint()
	opts.Timer.End(idx, fp.Short())

	if opts.Cache != nil && !opts.RefreshCache {
		idx = opts.Timer.Begin("cache probe")
		var cached Report
		ok, err := opts.Cache.Get(fp, &cached)
		if err != nil {
			opts.Diags.Add(diag.Warningf(diag.IOCacheDegraded, "cache read failed: %v", err))
		}
		if ok && cached.Fingerprint == fp.Hex() && cached.Failures == 0 {
			opts.Timer.End(idx, "hit")
			cached.FromCache = true
			return &cached, nil
		}
		opts.Timer.End(idx, "miss")
	}

	us := units()
	for _, u := range us {
		sink.OnEvent(Event{Unit: u.name, Stage: StageResolve, Status: StatusQueued})
	}

	idx = opts.Timer.Begin("units")
	reports := make([]UnitReport, len(us))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(us)))
	for i, u := range us {
		i, u := i, u
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			sink.OnEvent(Event{Unit: u.name, Stage: StageEmit, Status: StatusWorking})
			start := time.Now()
			rep, err := u.run()
			rep.Unit = u.name
			rep.ElapsedMS = float64(time.Since(start).Microseconds()) / 1000.0
			if err != nil {
				sink.OnEvent(Event{
					Unit: u.name, Stage: StageExecute, Status: StatusError,
					Err: err, Elapsed: time.Since(start),
				})
				return fmt.Errorf("unit %s: %w", u.name, err)
			}
			status := StatusDone
			if len(rep.Failures) > 0 {
				status = StatusError
			}
			sink.OnEvent(Event{
				Unit: u.name, Stage: StageCheck, Status: status,
				Cases: rep.Cases, Elapsed: time.Since(start),
			})
			reports[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	opts.Timer.End(idx, fmt.Sprintf("%d units", len(us)))

	out := &Report{Fingerprint: fp.Hex(), Units: reports}
	for i := range reports {
		out.Cases += reports[i].Cases
		out.Failures += len(reports[i].Failures)
	}

	if opts.Cache != nil && out.Failures == 0 {
		idx = opts.Timer.Begin("cache store")
		if err := opts.Cache.Put(fp, out); err != nil {
			opts.Diags.Add(diag.Warningf(diag.IOCacheDegraded, "cache write failed: %v", err))
			opts.Timer.End(idx, "degraded")
		} else {
			opts.Timer.End(idx, "")
		}
	}
	return out, nil
}

type unit struct {
	name string
	run  func() (UnitReport, error)
}

// UnitNames lists the verification units in run order, for progress UIs.
func UnitNames() []string {
	us := units()
	names := make([]string, len(us))
	for i, u := range us {
		names[i] = u.name
	}
	return names
}

func units() []unit {
	us := []unit{
		{name: "precedence", run: runPrecedence},
		{name: "truthiness", run: runTruthiness},
	}
	for _, s := range types.Scalars() {
		us = append(us, unit{
			name: "casts/" + s.String(),
			run:  func() (UnitReport, error) { return runCasts(s) },
		})
	}
	for _, s := range types.Scalars() {
		us = append(us, unit{
			name: "binary/" + s.String(),
			run:  func() (UnitReport, error) { return runBinary(s) },
		})
	}
	return append(us,
		unit{name: "promote", run: runPromote},
		unit{name: "arrays", run: runArrays},
	)
}

// rankOrder is the promotion ladder the driver trusts, low to high. The
// resolver under test keeps its own table; precedence cases diff the two.
var rankOrder = []types.Scalar{
	types.Bool1, types.Int8, types.Int16, types.Int32,
	types.Int64, types.Float32, types.Float64,
}

func rankOf(s types.Scalar) int {
	for i, k := range rankOrder {
		if k == s {
			return i
		}
	}
	return -1
}

// refResolve is the dispatch contract: whether an operator resolves
// directly for a kind, and the expected error kind when it does not.
// Floats reject the logical and bitwise classes outright; integers lack a
// lowering for shifts only.
func refResolve(s types.Scalar, op token.Operator) (bool, codegen.ErrorKind) {
	if s.IsFloat() {
		switch op.Class() {
		case token.ClassArithmetic, token.ClassComparison:
			return true, codegen.ErrUnknown
		default:
			return false, codegen.ErrBinaryOp
		}
	}
	if op == token.OpShl || op == token.OpShr {
		return false, codegen.ErrToken
	}
	return true, codegen.ErrUnknown
}

func errKindString(err error) string {
	if err == nil {
		return "no error"
	}
	return codegen.KindOf(err).String()
}

// check records one value produced by generated code together with the
// expected result. elem >= 0 reads an element of the array val addresses.
type check struct {
	name string
	val  ir.Value
	elem int
	kind types.Scalar
	want probe
}

// runChecks executes the unit's function once and diffs every check.
// Execution faults are infrastructure errors, not case failures: the
// matrix never emits faulting code on purpose.
func runChecks(fn *ir.Func, checks []check) ([]CaseFailure, error) {
	if len(checks) == 0 {
		return nil, nil
	}
	tr, err := interp.Run(fn)
	if err != nil {
		return nil, err
	}
	var fails []CaseFailure
	for _, c := range checks {
		var got interp.Value
		if c.elem >= 0 {
			got = tr.Elem(c.val, uint32(c.elem))
		} else {
			got = tr.Value(c.val)
		}
		if got.Type != types.ScalarOf(c.kind) {
			fails = append(fails, CaseFailure{Case: c.name, Got: got.Type.String(), Want: c.kind.String()})
			continue
		}
		gs, ws := formatValue(got), formatProbe(c.kind, c.want)
		if gs != ws {
			fails = append(fails, CaseFailure{Case: c.name, Got: gs, Want: ws})
		}
	}
	return fails, nil
}

func runPrecedence() (UnitReport, error) {
	var rep UnitReport
	for _, a := range types.Scalars() {
		for _, b := range types.Scalars() {
			rep.Cases++
			name := fmt.Sprintf("%s vs %s", a, b)
			got, err := codegen.Precedence(types.ScalarOf(a), types.ScalarOf(b))
			if err != nil {
				rep.Failures = append(rep.Failures, CaseFailure{Case: name, Got: err.Error(), Want: "a winner"})
				continue
			}
			sym, err := codegen.Precedence(types.ScalarOf(b), types.ScalarOf(a))
			if err != nil || sym != got {
				rep.Failures = append(rep.Failures, CaseFailure{
					Case: name, Got: fmt.Sprintf("%s, reversed %s", got, sym), Want: "order independence",
				})
				continue
			}
			want := a
			if rankOf(b) > rankOf(a) {
				want = b
			}
			if got.Elem != want {
				rep.Failures = append(rep.Failures, CaseFailure{Case: name, Got: got.String(), Want: want.String()})
			}
		}
	}
	rep.Cases++
	arr := types.ArrayOf(types.Float32, 3)
	if _, err := codegen.Precedence(arr, types.ScalarOf(types.Int32)); codegen.KindOf(err) != codegen.ErrType {
		rep.Failures = append(rep.Failures, CaseFailure{
			Case: "[3 x f32] vs i32", Got: errKindString(err), Want: codegen.ErrType.String(),
		})
	}
	return rep, nil
}

func runTruthiness() (UnitReport, error) {
	var rep UnitReport
	b := ir.NewBuilder(ir.NewFunc("truthiness"))
	var checks []check
	for _, s := range types.Scalars() {
		for _, p := range probesFor(s) {
			rep.Cases++
			name := fmt.Sprintf("bool(%s %s)", s, formatProbe(s, p))
			v, err := codegen.ToBool(b, emitProbe(b, s, p))
			if err != nil {
				rep.Failures = append(rep.Failures, CaseFailure{Case: name, Got: errKindString(err), Want: "no error"})
				continue
			}
			checks = append(checks, check{name: name, val: v, elem: -1, kind: types.Bool1, want: boolProbe(truthy(s, p))})
		}
	}
	rep.Cases++
	addr := b.Alloc(types.ArrayOf(types.Float32, 3))
	if _, err := codegen.ToBool(b, addr); codegen.KindOf(err) != codegen.ErrType {
		rep.Failures = append(rep.Failures, CaseFailure{
			Case: "bool([3 x f32] address)", Got: errKindString(err), Want: codegen.ErrType.String(),
		})
	}
	fails, err := runChecks(b.Func(), checks)
	if err != nil {
		return rep, err
	}
	rep.Failures = append(rep.Failures, fails...)
	return rep, nil
}

func runCasts(src types.Scalar) (UnitReport, error) {
	var rep UnitReport
	b := ir.NewBuilder(ir.NewFunc("casts_" + src.String()))
	var checks []check

	// the equal pair sits outside the table
	rep.Cases++
	if _, err := codegen.ResolveCast(src, src, ""); codegen.KindOf(err) != codegen.ErrType {
		rep.Failures = append(rep.Failures, CaseFailure{
			Case: fmt.Sprintf("%s->%s", src, src), Got: errKindString(err), Want: codegen.ErrType.String(),
		})
	}

	for _, dst := range types.Scalars() {
		if dst == src {
			continue
		}
		rep.Cases++
		op, err := codegen.ResolveCast(src, dst, "verify")
		if err != nil {
			rep.Failures = append(rep.Failures, CaseFailure{
				Case: fmt.Sprintf("%s->%s", src, dst), Got: errKindString(err), Want: "a rule",
			})
			continue
		}
		for _, p := range probesFor(src) {
			rep.Cases++
			name := fmt.Sprintf("%s->%s %s", src, dst, formatProbe(src, p))
			v := op.Emit(b, emitProbe(b, src, p))
			checks = append(checks, check{name: name, val: v, elem: -1, kind: dst, want: refCast(src, dst, p)})
		}
	}

	fails, err := runChecks(b.Func(), checks)
	if err != nil {
		return rep, err
	}
	rep.Failures = append(rep.Failures, fails...)
	return rep, nil
}

// binaryPairs yields the operand pairs for one operator's value cases.
// Integer division and modulo skip zero divisors; fault behavior belongs
// to the evaluator's own tests.
func binaryPairs(s types.Scalar, op token.Operator, ps []probe) [][2]probe {
	out := make([][2]probe, 0, len(ps)*len(ps))
	for _, a := range ps {
		for _, b := range ps {
			if (op == token.OpDiv || op == token.OpMod) && !s.IsFloat() && b.i == 0 {
				continue
			}
			out = append(out, [2]probe{a, b})
		}
	}
	return out
}

func runBinary(s types.Scalar) (UnitReport, error) {
	var rep UnitReport
	b := ir.NewBuilder(ir.NewFunc("binary_" + s.String()))
	warns := diag.NewBag(512)
	wantWarnings := 0
	var checks []check
	ps := probesFor(s)

	for _, op := range token.Operators() {
		rep.Cases++
		resolves, wantKind := refResolve(s, op)
		name := fmt.Sprintf("%s %s resolves", s, op)
		if _, err := codegen.ResolveBinary(s, op, ""); resolves && err != nil {
			rep.Failures = append(rep.Failures, CaseFailure{Case: name, Got: errKindString(err), Want: "no error"})
		} else if !resolves && codegen.KindOf(err) != wantKind {
			rep.Failures = append(rep.Failures, CaseFailure{Case: name, Got: errKindString(err), Want: wantKind.String()})
		}

		// shifts have no lowering for either family once the float
		// rewrite lands on i64, so apply reports a token error
		if op == token.OpShl || op == token.OpShr {
			rep.Cases++
			if s.IsFloat() {
				wantWarnings++
			}
			lhs, rhs := emitProbe(b, s, ps[1]), emitProbe(b, s, ps[1])
			_, err := codegen.Binary(b, lhs, rhs, op, warns)
			if codegen.KindOf(err) != codegen.ErrToken {
				rep.Failures = append(rep.Failures, CaseFailure{
					Case: fmt.Sprintf("%s %s applies", s, op), Got: errKindString(err), Want: codegen.ErrToken.String(),
				})
			}
			continue
		}

		for _, pair := range binaryPairs(s, op, ps) {
			rep.Cases++
			name := fmt.Sprintf("%s: %s %s %s", s, formatProbe(s, pair[0]), op, formatProbe(s, pair[1]))
			if s.IsFloat() && op.Class() == token.ClassBitwise {
				wantWarnings++
			}
			lhs, rhs := emitProbe(b, s, pair[0]), emitProbe(b, s, pair[1])
			v, err := codegen.Binary(b, lhs, rhs, op, warns)
			if err != nil {
				rep.Failures = append(rep.Failures, CaseFailure{Case: name, Got: errKindString(err), Want: "no error"})
				continue
			}
			kind, want := refBinary(s, op, pair[0], pair[1])
			checks = append(checks, check{name: name, val: v, elem: -1, kind: kind, want: want})
		}
	}

	rep.Cases++
	if warns.Len() != wantWarnings {
		rep.Failures = append(rep.Failures, CaseFailure{
			Case: fmt.Sprintf("%s warning count", s),
			Got:  strconv.Itoa(warns.Len()), Want: strconv.Itoa(wantWarnings),
		})
	}
	for _, d := range warns.Items() {
		if d.Code != diag.GenBitwiseFloatCast {
			rep.Failures = append(rep.Failures, CaseFailure{
				Case: fmt.Sprintf("%s warning code", s),
				Got:  d.Code.ID(), Want: diag.GenBitwiseFloatCast.ID(),
			})
		}
	}

	fails, err := runChecks(b.Func(), checks)
	if err != nil {
		return rep, err
	}
	rep.Failures = append(rep.Failures, fails...)
	return rep, nil
}

func runPromote() (UnitReport, error) {
	var rep UnitReport
	b := ir.NewBuilder(ir.NewFunc("promote"))
	var checks []check

	cases := []struct {
		ls types.Scalar
		lp probe
		rs types.Scalar
		rp probe
		op token.Operator
	}{
		{types.Int32, probe{i: 7}, types.Float64, probe{f: 2.5}, token.OpAdd},
		{types.Bool1, probe{i: 1}, types.Int8, probe{i: 3}, token.OpAdd},
		{types.Float32, probe{f: 2.5}, types.Int64, probe{i: 3}, token.OpMul},
		{types.Int16, probe{i: -7}, types.Int32, probe{i: 2}, token.OpDiv},
		{types.Int8, probe{i: 9}, types.Float32, probe{f: 0.5}, token.OpGreater},
		{types.Float64, probe{f: 0.1}, types.Float32, probe{f: 2.5}, token.OpLessEq},
	}
	for _, c := range cases {
		rep.Cases++
		name := fmt.Sprintf("%s %s %s %s %s", c.ls, formatProbe(c.ls, c.lp), c.op, c.rs, formatProbe(c.rs, c.rp))
		x, y := emitProbe(b, c.ls, c.lp), emitProbe(b, c.rs, c.rp)
		px, py, err := codegen.Promote(b, x, y)
		if err != nil {
			rep.Failures = append(rep.Failures, CaseFailure{Case: name, Got: errKindString(err), Want: "no error"})
			continue
		}
		common := c.ls
		if rankOf(c.rs) > rankOf(c.ls) {
			common = c.rs
		}
		v, err := codegen.Binary(b, px, py, c.op, nil)
		if err != nil {
			rep.Failures = append(rep.Failures, CaseFailure{Case: name, Got: errKindString(err), Want: "no error"})
			continue
		}
		kind, want := refBinary(common, c.op, refCast(c.ls, common, c.lp), refCast(c.rs, common, c.rp))
		checks = append(checks, check{name: name, val: v, elem: -1, kind: kind, want: want})
	}

	// mixed operands without promotion must be rejected, not coerced
	rep.Cases++
	_, err := codegen.Binary(b, b.ConstInt(types.Int32, 1), b.ConstFloat(types.Float32, 1), token.OpAdd, nil)
	if codegen.KindOf(err) != codegen.ErrType {
		rep.Failures = append(rep.Failures, CaseFailure{
			Case: "i32 + f32 unpromoted", Got: errKindString(err), Want: codegen.ErrType.String(),
		})
	}

	rep.Cases++
	addr := b.Alloc(types.ArrayOf(types.Int32, 2))
	if _, err := codegen.Binary(b, addr, b.ConstInt(types.Int32, 1), token.OpAdd, nil); codegen.KindOf(err) != codegen.ErrType {
		rep.Failures = append(rep.Failures, CaseFailure{
			Case: "address + i32", Got: errKindString(err), Want: codegen.ErrType.String(),
		})
	}

	rep.Cases++
	if _, _, err := codegen.Promote(b, addr, b.ConstInt(types.Int32, 1)); codegen.KindOf(err) != codegen.ErrType {
		rep.Failures = append(rep.Failures, CaseFailure{
			Case: "promote address", Got: errKindString(err), Want: codegen.ErrType.String(),
		})
	}

	fails, rerr := runChecks(b.Func(), checks)
	if rerr != nil {
		return rep, rerr
	}
	rep.Failures = append(rep.Failures, fails...)
	return rep, nil
}

func runArrays() (UnitReport, error) {
	var rep UnitReport
	b := ir.NewBuilder(ir.NewFunc("arrays"))
	var checks []check
	fail := func(name, got, want string) {
		rep.Failures = append(rep.Failures, CaseFailure{Case: name, Got: got, Want: want})
	}

	// pack then unpack round-trip
	packed, err := codegen.Pack(b, []ir.Value{
		b.ConstInt(types.Int32, 1), b.ConstInt(types.Int32, 2), b.ConstInt(types.Int32, 3),
	})
	if err != nil {
		return rep, err
	}
	loaded, err := codegen.Unpack(b, packed, true)
	if err != nil {
		return rep, err
	}
	for i, v := range loaded {
		rep.Cases++
		checks = append(checks, check{
			name: fmt.Sprintf("pack i32 [%d]", i), val: v, elem: -1,
			kind: types.Int32, want: probe{i: int64(i) + 1},
		})
	}

	// mixed pack promotes every element to the widest kind
	mixed, err := codegen.PackCast(b, []ir.Value{
		b.ConstBool(true), b.ConstInt(types.Int32, 5), b.ConstFloat(types.Float32, 2.5),
	})
	if err != nil {
		return rep, err
	}
	rep.Cases++
	if want := types.ArrayOf(types.Float32, 3); mixed.Type != want {
		fail("packcast type", mixed.Type.String(), want.String())
	}
	for i, w := range []probe{{f: 1}, {f: 5}, {f: 2.5}} {
		rep.Cases++
		checks = append(checks, check{
			name: fmt.Sprintf("packcast [%d]", i), val: mixed, elem: i,
			kind: types.Float32, want: w,
		})
	}

	// three-way pack resolves the common kind pairwise
	triple, err := codegen.Pack3(b, b.ConstInt(types.Int32, 1), b.ConstFloat(types.Float64, 0.5), b.ConstInt(types.Int8, 2))
	if err != nil {
		return rep, err
	}
	rep.Cases++
	if want := types.ArrayOf(types.Float64, 3); triple.Type != want {
		fail("pack3 type", triple.Type.String(), want.String())
	}
	for i, w := range []probe{{f: 1}, {f: 0.5}, {f: 2}} {
		rep.Cases++
		checks = append(checks, check{
			name: fmt.Sprintf("pack3 [%d]", i), val: triple, elem: i,
			kind: types.Float64, want: w,
		})
	}

	// splat broadcast
	spread, err := codegen.Splat(b, b.ConstFloat(types.Float32, 1.5), 4)
	if err != nil {
		return rep, err
	}
	for i := 0; i < 4; i++ {
		rep.Cases++
		checks = append(checks, check{
			name: fmt.Sprintf("splat [%d]", i), val: spread, elem: i,
			kind: types.Float32, want: probe{f: 1.5},
		})
	}

	// element conversion truncates toward zero
	f32s := []probe{{f: float64(float32(-3.9))}, {f: 2.5}, {f: 7}}
	src, err := codegen.Pack(b, []ir.Value{
		b.ConstFloat(types.Float32, f32s[0].f),
		b.ConstFloat(types.Float32, f32s[1].f),
		b.ConstFloat(types.Float32, f32s[2].f),
	})
	if err != nil {
		return rep, err
	}
	ints, err := codegen.CastArray(b, src, types.Int32)
	if err != nil {
		return rep, err
	}
	rep.Cases++
	if want := types.ArrayOf(types.Int32, 3); ints.Type != want {
		fail("arraycast type", ints.Type.String(), want.String())
	}
	for i, p := range f32s {
		rep.Cases++
		checks = append(checks, check{
			name: fmt.Sprintf("arraycast [%d]", i), val: ints, elem: i,
			kind: types.Int32, want: refCast(types.Float32, types.Int32, p),
		})
	}

	// identity conversion returns the same address untouched
	rep.Cases++
	same, err := codegen.CastArray(b, src, types.Float32)
	if err != nil {
		return rep, err
	}
	if same.ID != src.ID {
		fail("arraycast identity", same.String(), src.String())
	}

	// writes through an element address land in the cell
	rep.Cases++
	slot, err := codegen.Index(b, packed, 1)
	if err != nil {
		return rep, err
	}
	b.Store(slot, b.ConstInt(types.Int32, 42))
	checks = append(checks, check{
		name: "store through index", val: packed, elem: 1,
		kind: types.Int32, want: probe{i: 42},
	})

	// category errors
	rep.Cases++
	if _, err := codegen.Pack(b, []ir.Value{b.ConstInt(types.Int32, 1), b.ConstInt(types.Int64, 2)}); codegen.KindOf(err) != codegen.ErrType {
		fail("pack mixed kinds", errKindString(err), codegen.ErrType.String())
	}
	rep.Cases++
	if _, err := codegen.Unpack(b, b.ConstInt(types.Int32, 1), true); codegen.KindOf(err) != codegen.ErrType {
		fail("unpack scalar", errKindString(err), codegen.ErrType.String())
	}
	rep.Cases++
	if _, err := codegen.Splat(b, packed, 3); codegen.KindOf(err) != codegen.ErrType {
		fail("splat address", errKindString(err), codegen.ErrType.String())
	}
	rep.Cases++
	if _, err := codegen.CastArray(b, b.ConstFloat(types.Float64, 1), types.Int32); codegen.KindOf(err) != codegen.ErrType {
		fail("arraycast scalar", errKindString(err), codegen.ErrType.String())
	}
	rep.Cases++
	if _, err := codegen.Index(b, b.ConstInt(types.Int32, 1), 0); codegen.KindOf(err) != codegen.ErrType {
		fail("index scalar", errKindString(err), codegen.ErrType.String())
	}
	rep.Cases++
	if _, err := codegen.Pack3(b, packed, b.ConstInt(types.Int32, 1), b.ConstInt(types.Int32, 2)); codegen.KindOf(err) != codegen.ErrType {
		fail("pack3 address", errKindString(err), codegen.ErrType.String())
	}

	fails, rerr := runChecks(b.Func(), checks)
	if rerr != nil {
		return rep, rerr
	}
	rep.Failures = append(rep.Failures, fails...)
	return rep, nil
}
