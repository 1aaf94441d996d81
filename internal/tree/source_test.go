package tree

import (
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestPackage() *types.Package {
	other := types.NewPackage("example.com/other", "other")
	foreign := types.NewNamed(types.NewTypeName(token.NoPos, other, "Thing", nil), types.NewStruct(nil, nil), nil)

	pkg := types.NewPackage("example.com/a", "a")
	scope := pkg.Scope()
	local := types.NewNamed(types.NewTypeName(token.NoPos, pkg, "Local", nil), types.NewStruct(nil, nil), nil)
	scope.Insert(local.Obj())
	scope.Insert(types.NewTypeName(token.NoPos, pkg, "LocalAlias", local))
	scope.Insert(types.NewTypeName(token.NoPos, pkg, "Foreign", foreign))
	scope.Insert(types.NewTypeName(token.NoPos, pkg, "Strings", types.NewSlice(types.Typ[types.String])))
	sig := types.NewSignatureType(nil, nil, nil, nil, nil, false)
	scope.Insert(types.NewFunc(token.NoPos, pkg, "Run", sig))
	scope.Insert(types.NewFunc(token.NoPos, pkg, "helper", sig))
	scope.Insert(types.NewVar(token.NoPos, pkg, "Default", local))
	scope.Insert(types.NewConst(token.NoPos, pkg, "Answer", types.Typ[types.Int], nil))
	return pkg
}

func TestMembers(t *testing.T) {
	pkg := newTestPackage()
	t.Run("strict", func(t *testing.T) {
		assert.Equal(t, []string{"Local", "LocalAlias", "Run", "Strings"}, Members(pkg, true))
	})
	t.Run("loose", func(t *testing.T) {
		assert.Equal(t, []string{"Foreign", "Local", "LocalAlias", "Run", "Strings"}, Members(pkg, false))
	})
	t.Run("nil package", func(t *testing.T) {
		assert.Nil(t, Members(nil, true))
	})
}
