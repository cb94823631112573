package vectors

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorMethodsAreDocumented(t *testing.T) {
	files := map[string]string{
		"vector1d.go": "Vector1D",
		"vector2d.go": "Vector2D",
		"vector3d.go": "Vector3D",
		"vector4d.go": "Vector4D",
		"vector5d.go": "Vector5D",
		"array.go":    "Array",
	}

	fset := token.NewFileSet()
	for name, typ := range files {
		t.Run(typ, func(t *testing.T) {
			f, err := parser.ParseFile(fset, name, nil, parser.ParseComments)
			require.NoError(t, err)

			methods := 0
			for _, decl := range f.Decls {
				fn, ok := decl.(*ast.FuncDecl)
				if !ok || fn.Recv == nil || !fn.Name.IsExported() {
					continue
				}
				star, ok := fn.Recv.List[0].Type.(*ast.StarExpr)
				if !ok || star.X.(*ast.Ident).Name != typ {
					continue
				}
				methods++
				assert.NotNil(t, fn.Doc, "%s.%s has no doc comment", typ, fn.Name.Name)
			}
			assert.Positive(t, methods)
		})
	}
}
