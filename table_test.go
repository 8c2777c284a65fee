package dynacl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable(t *testing.T) {
	var tb Table
	assert.Zero(t, tb.Len())
	assert.Zero(t, tb.Get(NoSymbol))
	assert.Zero(t, tb.Get(numSymbols))

	tb.set(GetPlatformIDs, 0x10)
	tb.set(Finish, 0x20)
	assert.Equal(t, 2, tb.Len())
	assert.Equal(t, uintptr(0x20), tb.Get(Finish))

	tb.clear(Finish)
	assert.Zero(t, tb.Get(Finish))
	assert.Equal(t, 1, tb.Len())

	tb.reset()
	assert.Zero(t, tb.Len())
}

func TestTableExports(t *testing.T) {
	var f func() int32
	tb := Table{exports: new([numSymbols]any)}
	tb.exports[UnloadCompiler] = &f

	tb.set(UnloadCompiler, 0x1000)
	assert.NotNil(t, f)
	tb.set(Flush, 0x2000)
	assert.Equal(t, 2, tb.Len())

	tb.reset()
	assert.Nil(t, f)
	assert.Zero(t, tb.Len())
}
