package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComplexNames(t *testing.T) {
	inner := NewObject()
	inner.Properties.Set("owner", &RefType{Name: "User"})
	inner.Properties.Set("pets", &ArrayType{Item: &ArrayType{Item: &RefType{Name: "Pet"}}})

	outer := NewObject()
	outer.Properties.Set("first", &RefType{Name: "Pet"})
	outer.Properties.Set("nested", inner)
	outer.Properties.Set("broken", &RefType{})
	outer.Properties.Set("name", &StringType{})
	outer.Properties.Set("status", &EnumType{Values: []string{"A"}})

	assert.Equal(t, []string{"Pet", "User"}, ComplexNames(outer))
	assert.Equal(t, []string{"Pet"}, ComplexNames(&ArrayType{Item: &RefType{Name: "Pet"}}))
	assert.Empty(t, ComplexNames(&RefType{}))
	assert.Empty(t, ComplexNames(&NumberType{}))
	assert.Empty(t, ComplexNames(&ObjectType{Open: true}))
}

func TestOperationPartitions(t *testing.T) {
	op := OperationDescriptor{
		Params: []ParamDescriptor{
			{Name: "limit", Location: LocationQuery},
			{Name: "orgId", Location: LocationPath},
			{Name: "offset", Location: LocationQuery},
			{Name: "id", Location: LocationPath},
		},
	}

	var path, query []string
	for _, p := range op.PathParams() {
		path = append(path, p.Name)
	}
	for _, p := range op.QueryParams() {
		query = append(query, p.Name)
	}
	assert.Equal(t, []string{"orgId", "id"}, path)
	assert.Equal(t, []string{"limit", "offset"}, query)
	assert.Empty(t, OperationDescriptor{}.PathParams())
}

func TestServiceUnitOrder(t *testing.T) {
	unit := NewServiceUnit("UserService")
	unit.Operations.Set("list", OperationDescriptor{MethodName: "list"})
	unit.Operations.Set("get", OperationDescriptor{MethodName: "get"})
	unit.Operations.Set("list", OperationDescriptor{MethodName: "list", Path: "/v2"})
	unit.Imports.Set("User", struct{}{})
	unit.Imports.Set("Pet", struct{}{})
	unit.Imports.Set("User", struct{}{})

	ops := unit.OperationList()
	if assert.Len(t, ops, 2) {
		assert.Equal(t, "list", ops[0].MethodName)
		assert.Equal(t, "/v2", ops[0].Path, "replacing keeps the original slot")
		assert.Equal(t, "get", ops[1].MethodName)
	}
	assert.Equal(t, []string{"User", "Pet"}, unit.ImportNames())
}
