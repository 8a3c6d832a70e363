package gcl_test

import (
	"fmt"
	"testing"

	"github.com/mcat12/p4gcl/gcl"
	"github.com/mcat12/p4gcl/ir"
	"github.com/mcat12/p4gcl/predicate"
)

// benchSizes are the straight-line assignment counts to benchmark.
var benchSizes = []int{10, 100, 1000}

// chainProgram builds a single control whose apply body is n sequential
// boolean assignments to the same variable, the simplest workload that
// scales the graph builder's node/edge count linearly with n.
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

func BenchmarkBuilderLower(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		n := n
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			prog, meta := chainProgram(n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, _, err := gcl.NewBuilder(meta).Lower(prog); err != nil {
					b.Fatalf("lower: %v", err)
				}
			}
		})
	}
}
