package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"runtime"
	"slices"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	algocomplex "github.com/cwbudde/algo-complex"
	"github.com/cwbudde/algo-complex/internal/cpu"
)

const (
	opAdd = "add"
	opSub = "sub"
	opMul = "mul"

	typeBuiltin = "builtin"

	// inputPool is the number of distinct operand pairs cycled through per run.
	inputPool = 256
)

var (
	allOps   = []string{opAdd, opSub, opMul}
	allTypes = []string{"int32", "int64", "float32", "float64", typeBuiltin}
)

var (
	errUnknownOp    = errors.New("benchcomplex: unknown op")
	errUnknownType  = errors.New("benchcomplex: unknown type")
	errInvalidIters = errors.New("benchcomplex: iters must be positive")
)

// profile is the benchmark configuration. It can be loaded from YAML.
type profile struct {
	Ops    []string `yaml:"ops"`
	Types  []string `yaml:"types"`
	Iters  int      `yaml:"iters"`
	Warmup int      `yaml:"warmup"`
	Seed   int64    `yaml:"seed"`
}

type benchResult struct {
	Type    string  `yaml:"type"`
	Op      string  `yaml:"op"`
	NsPerOp float64 `yaml:"ns_per_op"`
}

type report struct {
	Arch     string        `yaml:"arch"`
	Features string        `yaml:"features"`
	Iters    int           `yaml:"iters"`
	Results  []benchResult `yaml:"results"`
}

func main() {
	var (
		opList      = flag.String("ops", strings.Join(allOps, ","), "comma-separated ops: add, sub, mul")
		typeList    = flag.String("types", strings.Join(allTypes, ","), "comma-separated component types")
		iters       = flag.Int("iters", 1_000_000, "operations per measurement")
		warmup      = flag.Int("warmup", 10_000, "warmup operations")
		seed        = flag.Int64("seed", 1, "rng seed")
		profileFile = flag.String("profile", "", "YAML profile overriding the flags above")
		outFile     = flag.String("out", "", "write results as YAML to file")
	)
	flag.Parse()

	p := profile{
		Ops:    parseList(*opList),
		Types:  parseList(*typeList),
		Iters:  *iters,
		Warmup: *warmup,
		Seed:   *seed,
	}

	if *profileFile != "" {
		if err := loadProfile(*profileFile, &p); err != nil {
			fmt.Fprintf(os.Stderr, "error loading profile: %v\n", err)
			os.Exit(1)
		}
	}

	rep, err := run(os.Stdout, p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *outFile != "" {
		if err := writeReport(*outFile, rep); err != nil {
			fmt.Fprintf(os.Stderr, "error writing report: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("\nResults written to: %s\n", *outFile)
	}
}

// run validates p, benchmarks every requested (type, op) pair and prints a table to w.
func run(w io.Writer, p profile) (report, error) {
	if err := validate(p); err != nil {
		return report{}, err
	}

	features := cpu.DetectFeatures()
	rep := report{
		Arch:     runtime.GOARCH,
		Features: features.String(),
		Iters:    p.Iters,
	}

	fmt.Fprintf(w, "arch=%s features=%s iters=%d warmup=%d\n", rep.Arch, rep.Features, p.Iters, p.Warmup)
	fmt.Fprintf(w, "%8s  %6s  %10s\n", "type", "op", "ns/op")

	rnd := rand.New(rand.NewSource(p.Seed))

	for _, typ := range p.Types {
		results := benchmarkType(rnd, typ, p)

		sort.Slice(results, func(i, j int) bool {
			return results[i].NsPerOp < results[j].NsPerOp
		})

		for _, res := range results {
			fmt.Fprintf(w, "%8s  %6s  %10.2f\n", res.Type, res.Op, res.NsPerOp)
		}

		rep.Results = append(rep.Results, results...)
	}

	return rep, nil
}

func validate(p profile) error {
	if p.Iters <= 0 {
		return fmt.Errorf("%w: got %d", errInvalidIters, p.Iters)
	}

	for _, op := range p.Ops {
		if !slices.Contains(allOps, op) {
			return fmt.Errorf("%w: %q", errUnknownOp, op)
		}
	}

	for _, typ := range p.Types {
		if !slices.Contains(allTypes, typ) {
			return fmt.Errorf("%w: %q", errUnknownType, typ)
		}
	}

	return nil
}

func benchmarkType(rnd *rand.Rand, typ string, p profile) []benchResult {
	switch typ {
	case "int32":
		return benchmarkComplex[int32](rnd, typ, p)
	case "int64":
		return benchmarkComplex[int64](rnd, typ, p)
	case "float32":
		return benchmarkComplex[float32](rnd, typ, p)
	case "float64":
		return benchmarkComplex[float64](rnd, typ, p)
	default:
		return benchmarkBuiltin(rnd, p)
	}
}

func benchmarkComplex[T algocomplex.Number](rnd *rand.Rand, typ string, p profile) []benchResult {
	xs := make([]algocomplex.Complex[T], inputPool)
	ys := make([]algocomplex.Complex[T], inputPool)

	for i := 0; i < inputPool; i++ {
		xs[i] = algocomplex.New(randomComponent[T](rnd), randomComponent[T](rnd))
		ys[i] = algocomplex.New(randomComponent[T](rnd), randomComponent[T](rnd))
	}

	results := make([]benchResult, 0, len(p.Ops))

	for _, op := range p.Ops {
		fn := complexOp[T](op)

		var acc algocomplex.Complex[T]

		for i := 0; i < p.Warmup; i++ {
			acc = acc.Add(fn(xs[i%inputPool], ys[i%inputPool]))
		}

		runtime.GC()

		start := time.Now()

		for i := 0; i < p.Iters; i++ {
			acc = acc.Add(fn(xs[i%inputPool], ys[i%inputPool]))
		}

		elapsed := time.Since(start)
		sink = acc.String()

		results = append(results, benchResult{
			Type:    typ,
			Op:      op,
			NsPerOp: float64(elapsed.Nanoseconds()) / float64(p.Iters),
		})
	}

	return results
}

func benchmarkBuiltin(rnd *rand.Rand, p profile) []benchResult {
	xs := make([]complex128, inputPool)
	ys := make([]complex128, inputPool)

	for i := 0; i < inputPool; i++ {
		xs[i] = complex(randomComponent[float64](rnd), randomComponent[float64](rnd))
		ys[i] = complex(randomComponent[float64](rnd), randomComponent[float64](rnd))
	}

	results := make([]benchResult, 0, len(p.Ops))

	for _, op := range p.Ops {
		fn := builtinOp(op)

		var acc complex128

		for i := 0; i < p.Warmup; i++ {
			acc += fn(xs[i%inputPool], ys[i%inputPool])
		}

		runtime.GC()

		start := time.Now()

		for i := 0; i < p.Iters; i++ {
			acc += fn(xs[i%inputPool], ys[i%inputPool])
		}

		elapsed := time.Since(start)
		sink = fmt.Sprint(acc)

		results = append(results, benchResult{
			Type:    typeBuiltin,
			Op:      op,
			NsPerOp: float64(elapsed.Nanoseconds()) / float64(p.Iters),
		})
	}

	return results
}

// sink keeps the accumulated results alive so the loops are not eliminated.
var sink string

func complexOp[T algocomplex.Number](op string) func(a, b algocomplex.Complex[T]) algocomplex.Complex[T] {
	switch op {
	case opSub:
		return algocomplex.Complex[T].Sub
	case opMul:
		return algocomplex.Complex[T].Mul
	default:
		return algocomplex.Complex[T].Add
	}
}

func builtinOp(op string) func(a, b complex128) complex128 {
	switch op {
	case opSub:
		return func(a, b complex128) complex128 { return a - b }
	case opMul:
		return func(a, b complex128) complex128 { return a * b }
	default:
		return func(a, b complex128) complex128 { return a + b }
	}
}

// randomComponent returns a value in [-100, 100), truncated for integer T.
func randomComponent[T algocomplex.Number](rnd *rand.Rand) T {
	return T(rnd.Float64()*200 - 100)
}

// loadProfile overlays the fields set in the YAML file onto p.
func loadProfile(filename string, p *profile) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	var fromFile profile
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		return fmt.Errorf("parse %s: %w", filename, err)
	}

	if len(fromFile.Ops) > 0 {
		p.Ops = fromFile.Ops
	}

	if len(fromFile.Types) > 0 {
		p.Types = fromFile.Types
	}

	if fromFile.Iters != 0 {
		p.Iters = fromFile.Iters
	}

	if fromFile.Warmup != 0 {
		p.Warmup = fromFile.Warmup
	}

	if fromFile.Seed != 0 {
		p.Seed = fromFile.Seed
	}

	return nil
}

func writeReport(filename string, rep report) error {
	data, err := yaml.Marshal(rep)
	if err != nil {
		return err
	}

	return os.WriteFile(filename, data, 0o644)
}

func parseList(list string) []string {
	parts := strings.Split(list, ",")

	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}

		out = append(out, part)
	}

	return out
}
