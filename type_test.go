package anybox

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type celsius float64

func TestTypeIdOf(t *testing.T) {
	require.Equal(t, TypeIdOf[int](), TypeIdOf[int]())
	require.Equal(t, TypeIdOf[[]byte](), TypeIdOf[[]uint8]())

	require.NotEqual(t, TypeIdOf[int](), TypeIdOf[int32]())
	require.NotEqual(t, TypeIdOf[int](), TypeIdOf[*int]())
	require.NotEqual(t, TypeIdOf[float64](), TypeIdOf[celsius]())
	require.NotEqual(t, TypeIdOf[Value[int]](), TypeIdOf[Value[int64]]())

	require.False(t, TypeIdOf[struct{}]().IsZero())
}

func TestTypeIdAsMapKey(t *testing.T) {
	names := map[TypeId]string{
		TypeIdOf[int]():     "int",
		TypeIdOf[string]():  "string",
		TypeIdOf[celsius](): "celsius",
	}

	require.Len(t, names, 3)
	require.Equal(t, "celsius", names[TypeIdOf[celsius]()])
}

func TestTypeIdString(t *testing.T) {
	require.Equal(t, "int", TypeIdOf[int]().String())
	require.Equal(t, "[]uint8", TypeIdOf[[]byte]().String())
	require.Equal(t, "anybox.celsius", TypeIdOf[celsius]().String())
	require.Equal(t, "anybox.Value[string]", TypeIdOf[Value[string]]().String())

	require.Equal(t, "TypeId(map[string]int)", fmt.Sprintf("%#v", TypeIdOf[map[string]int]()))

	var zero TypeId
	require.True(t, zero.IsZero())
	require.Equal(t, "TypeId(nil)", zero.String())
	require.Equal(t, "TypeId(nil)", fmt.Sprintf("%#v", zero))
}

func TestTypeRef(t *testing.T) {
	require.Equal(t, TypeIdOf[celsius](), Type[celsius]().TypeId())

	var hasTypeId HasTypeId = TypeRef[string]{}
	require.Equal(t, TypeIdOf[string](), hasTypeId.TypeId())
}
