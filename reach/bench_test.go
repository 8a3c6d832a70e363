package reach_test

import (
	"fmt"
	"testing"

	"github.com/mcat12/p4gcl/gcl"
	"github.com/mcat12/p4gcl/ir"
	"github.com/mcat12/p4gcl/optimize"
	"github.com/mcat12/p4gcl/predicate"
	"github.com/mcat12/p4gcl/reach"
)

var benchSizes = []int{10, 100, 1000}

func chainProgram(n int) (*ir.Program, ir.Metadata) {
	const v predicate.VarID = 0
	stmts := make([]ir.Stmt, n)
	for i := range stmts {
		stmts[i] = ir.Assign(v, predicate.NewLit(i%2 == 0))
	}
	prog := &ir.Program{Controls: []ir.ControlDecl{{Name: "C", Apply: stmts}}}
	meta := ir.Metadata{VarType: map[predicate.VarID]predicate.Type{v: predicate.Bool}}
	return prog, meta
}

func BenchmarkCompute(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		n := n
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			prog, meta := chainProgram(n)
			g, _, err := gcl.NewBuilder(meta).Lower(prog)
			if err != nil {
				b.Fatalf("lower: %v", err)
			}
			if err := optimize.MergeTrivialEdges(g); err != nil {
				b.Fatalf("simplify: %v", err)
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := reach.Compute(g); err != nil {
					b.Fatalf("compute: %v", err)
				}
			}
		})
	}
}
