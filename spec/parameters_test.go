package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodyParameter(t *testing.T) {
	repo := loadPetstore(t)

	add, ok := repo.Operation("addPet")
	require.True(t, ok)
	body := repo.BodyParameter(add)
	require.NotNil(t, body)
	assert.Equal(t, "body", body.Name)
	assert.True(t, body.IsBody())
	assert.Equal(t, "#/definitions/Pet", body.Schema.Get("$ref").Text())

	get, ok := repo.Operation("getPetById")
	require.True(t, ok)
	assert.Nil(t, repo.BodyParameter(get))
}

func TestRequestBodyParameter(t *testing.T) {
	repo := loadOAS3(t)

	create, ok := repo.Operation("createPet")
	require.True(t, ok)
	body := repo.BodyParameter(create)
	require.NotNil(t, body, "requestBody $ref is resolved")
	assert.Equal(t, BodyParameterName, body.Name)
	assert.Equal(t, "Pet to add", body.Description)
	assert.True(t, body.Required)
	assert.Equal(t, "Pet", repo.ParameterTypeDescription(body))

	dog, ok := repo.Operation("createDog")
	require.True(t, ok)
	body = repo.BodyParameter(dog)
	require.NotNil(t, body)
	assert.Equal(t, "#/components/schemas/Dog", body.Schema.Get("$ref").Text(), "the JSON media type is preferred")

	list, ok := repo.Operation("listPets")
	require.True(t, ok)
	assert.Nil(t, repo.BodyParameter(list))
}

func TestParameterTypeDescription(t *testing.T) {
	repo := loadPetstore(t)

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"primitive", `{"name": "petId", "in": "path", "type": "integer"}`, "integer"},
		{"array of primitives", `{"name": "s", "in": "query", "type": "array", "items": {"type": "string"}}`, "array of string"},
		{"array of models", `{"name": "s", "in": "query", "type": "array", "items": {"$ref": "#/definitions/Tag"}}`, "array of Tag"},
		{"array of unknown objects", `{"name": "s", "in": "query", "type": "array", "items": {}}`, "array of unknown objects"},
		{"array without items", `{"name": "s", "in": "query", "type": "array"}`, "array of unknown"},
		{"body model", `{"name": "body", "in": "body", "schema": {"$ref": "#/definitions/Pet"}}`, "Pet"},
		{"body inline", `{"name": "body", "in": "body", "schema": {"type": "object"}}`, "inline object"},
		{"body array", `{"name": "body", "in": "body", "schema": {"type": "array", "items": {"$ref": "#/definitions/User"}}}`, "inline object"},
		{"oas3 query primitive", `{"name": "limit", "in": "query", "schema": {"type": "integer"}}`, "integer"},
		{"oas3 query array", `{"name": "ids", "in": "query", "schema": {"type": "array", "items": {"type": "string"}}}`, "array of string"},
		{"oas3 query model", `{"name": "f", "in": "query", "schema": {"$ref": "#/components/schemas/Filter"}}`, "Filter"},
		{"oas3 content", `{"name": "f", "in": "query", "content": {"application/json": {"schema": {"type": "boolean"}}}}`, "boolean"},
		{"nothing", `{"name": "x", "in": "header"}`, "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newParameter(mustParse(t, tt.raw))
			assert.Equal(t, tt.want, repo.ParameterTypeDescription(p))
		})
	}
}

func TestParameterTypeDescriptionPetstore(t *testing.T) {
	repo := loadPetstore(t)

	op, ok := repo.Operation("findPetsByStatus")
	require.True(t, ok)
	assert.Equal(t, "array of string", repo.ParameterTypeDescription(op.Parameters[0]))

	op, ok = repo.Operation("uploadFile")
	require.True(t, ok)
	descs := make([]string, 0, len(op.Parameters))
	for _, p := range op.Parameters {
		descs = append(descs, repo.ParameterTypeDescription(p))
	}
	assert.Equal(t, []string{"integer", "string", "file"}, descs)
}

func TestLookupPointer(t *testing.T) {
	repo, err := New(mustParse(t, `
swagger: "2.0"
paths:
  /a/b:
    get: {operationId: ab}
definitions: {}
list: [zero, one]
"x~y": {v: 1}
`))
	require.NoError(t, err)

	assert.Equal(t, "ab", repo.lookupPointer("#/paths/~1a~1b/get/operationId").Text())
	assert.Equal(t, "one", repo.lookupPointer("#/list/1").Text())
	assert.Equal(t, "1", repo.lookupPointer("#/x~0y/v").Text())
	assert.True(t, repo.lookupPointer("#/list/9").IsMissing())
	assert.True(t, repo.lookupPointer("other.json#/a").IsMissing())
}
