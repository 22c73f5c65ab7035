package ast

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListPair_TerminatesInNothing(t *testing.T) {
	list := Pair(IntLit(1), Pair(IntLit(2), Pair(IntLit(3), Nothing())))

	walk := func(n int) *Expr {
		cur := list
		for i := 0; i < n; i++ {
			cur = cur.Tail
		}
		return cur
	}

	assert.Equal(t, ExprNothing, walk(3).Kind)
	assert.Equal(t, int64(1), walk(0).Head.IntValue)
	assert.Equal(t, int64(2), walk(1).Head.IntValue)
	assert.Equal(t, int64(3), walk(2).Head.IntValue)
}

func TestType_String(t *testing.T) {
	assert.Equal(t, "Integer", Named("Integer").String())
	assert.Equal(t, "[Integer]", List(Named("Integer")).String())
	assert.Equal(t, "Integer?", Optional(Named("Integer")).String())
	assert.Equal(t, "Shape", Named("Shape").String())
}

func TestPrint_RendersSimpleFunctionClause(t *testing.T) {
	m := &Module{
		Name:       "__anonymous",
		Importable: false,
		Functions: []*Function{
			{
				Name: "square",
				Clauses: []*Clause{
					{Params: []string{"n"}, Body: Binary("*", Call("n", nil, RefVariable), Call("n", nil, RefVariable))},
				},
			},
		},
	}

	var b strings.Builder
	assert.NoError(t, Print(&b, m))
	assert.Contains(t, b.String(), "square n = n * n")
}

func TestPrint_ReconstructsImportFingerprints(t *testing.T) {
	m := &Module{
		Name:       "M",
		Importable: true,
		Depends:    []string{"Hyperion!a", "Ocellus.map"},
	}

	var b strings.Builder
	assert.NoError(t, Print(&b, m))
	out := b.String()
	assert.Contains(t, out, "import Hyperion except a")
	assert.Contains(t, out, "import Ocellus only map")
	assert.Contains(t, out, "module M where")
}
