package linestream_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thinclang/thinc/internal/linestream"
)

func TestLineKeyOrdering(t *testing.T) {
	a := linestream.Of(5)
	b := a.After()
	c := b.After()

	assert.True(t, a.Less(b))
	assert.True(t, b.Less(c))
	assert.True(t, a.Less(linestream.Of(6)))
	assert.Equal(t, 0, a.Compare(linestream.Of(5)))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, c.Compare(a))
}

func TestRenumberMapJoinSplitResolve(t *testing.T) {
	m := make(linestream.RenumberMap)
	m.Join(4, 3) // line 4 folded into line 3
	m.Split(7)   // line 7 split into two

	assert.Equal(t, 3, m.Resolve(4))
	assert.Equal(t, 7, m.Resolve(7)) // split: tolerate repositioning, attach by original
	assert.Equal(t, 9, m.Resolve(9)) // untouched
}

func TestRenumberMapMergeLatestWins(t *testing.T) {
	m1 := linestream.RenumberMap{1: {Line: 2}}
	m2 := linestream.RenumberMap{1: {Line: 9}, 3: {Absent: true}}

	merged := linestream.Merge(m1, m2)
	assert.Equal(t, 9, merged.Resolve(1))
	assert.Equal(t, 3, merged.Resolve(3))
}
