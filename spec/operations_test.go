package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func operationIDs(ops []*Operation) []string {
	ids := make([]string, 0, len(ops))
	for _, op := range ops {
		ids = append(ids, op.OperationID)
	}
	return ids
}

func TestOperationsByResource(t *testing.T) {
	repo := loadPetstore(t)

	tests := []struct {
		name   string
		filter OperationFilter
		want   []string
	}{
		{
			name:   "pet",
			filter: OperationFilter{Resources: []string{"pet"}},
			want: []string{
				"addPet", "updatePet", "findPetsByStatus", "findPetsByTags",
				"getPetById", "updatePetWithForm", "deletePet", "uploadFile",
			},
		},
		{
			name:   "store",
			filter: OperationFilter{Resources: []string{"store"}},
			want:   []string{"getInventory", "placeOrder", "getOrderById", "deleteOrder"},
		},
		{
			name:   "operation ids across resources",
			filter: OperationFilter{OperationIDs: []string{"addPet", "uploadFile", "getInventory"}},
			want:   []string{"addPet", "uploadFile", "getInventory"},
		},
		{
			name: "both axes",
			filter: OperationFilter{
				Resources:    []string{"pet"},
				OperationIDs: []string{"addPet", "getInventory"},
			},
			want: []string{"addPet"},
		},
		{
			name:   "no match",
			filter: OperationFilter{Resources: []string{"nothing"}},
			want:   []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, operationIDs(repo.Operations(tt.filter)))
		})
	}

	assert.Len(t, repo.Operations(OperationFilter{}), 20)
}

func TestParseOperationFilter(t *testing.T) {
	f := ParseOperationFilter("pet, store", "")
	assert.Equal(t, []string{"pet", "store"}, f.Resources)
	assert.Nil(t, f.OperationIDs)

	f = ParseOperationFilter(" ", "addPet,,uploadFile")
	assert.Nil(t, f.Resources)
	assert.Equal(t, []string{"addPet", "uploadFile"}, f.OperationIDs)
}

func TestOperationFields(t *testing.T) {
	repo := loadPetstore(t)

	op, ok := repo.Operation("findPetsByTags")
	require.True(t, ok)
	assert.Equal(t, "get", op.Method)
	assert.Equal(t, "/pet/findByTags", op.Path)
	assert.Equal(t, "GET /pet/findByTags", op.Title())
	assert.Equal(t, "Finds Pets by tags", op.Summary)
	assert.Contains(t, op.Description, "Muliple tags")
	assert.Equal(t, []string{"pet"}, op.Tags)
	assert.Equal(t, []string{"pet"}, op.Resources())
	assert.True(t, op.Deprecated)
	require.Len(t, op.Parameters, 1)
	assert.Equal(t, "tags", op.Parameters[0].Name)
	assert.Equal(t, InQuery, op.Parameters[0].In)
	assert.True(t, op.Parameters[0].Required)

	_, ok = repo.Operation("nope")
	assert.False(t, ok)
}

func TestOperationPathLevelParameters(t *testing.T) {
	repo := loadPetstore(t)

	get, ok := repo.Operation("getUserByName")
	require.True(t, ok)
	require.Len(t, get.Parameters, 1, "operation parameter overrides the path-level one")
	assert.Contains(t, get.Parameters[0].Description, "Use user1 for testing")

	update, ok := repo.Operation("updateUser")
	require.True(t, ok)
	require.Len(t, update.Parameters, 2)
	assert.Equal(t, "username", update.Parameters[0].Name)
	assert.Equal(t, "The user name", update.Parameters[0].Description)
	assert.Equal(t, InBody, update.Parameters[1].In)

	del, ok := repo.Operation("deleteUser")
	require.True(t, ok)
	require.Len(t, del.Parameters, 1)
	assert.Equal(t, "The name that needs to be deleted", del.Parameters[0].Description, "$ref parameter is resolved")
}

func TestOperationsOAS3(t *testing.T) {
	repo := loadOAS3(t)

	assert.Equal(t,
		[]string{"listPets", "createPet", "showPetById", "createDog", "health"},
		operationIDs(repo.Operations(OperationFilter{})))

	health, ok := repo.Operation("health")
	require.True(t, ok)
	assert.Empty(t, health.Tags)
	assert.Equal(t, []string{"health"}, health.Resources(), "untagged operations use their first path segment")
	assert.Equal(t, []string{"health"}, operationIDs(repo.Operations(OperationFilter{Resources: []string{"health"}})))

	show, ok := repo.Operation("showPetById")
	require.True(t, ok)
	require.Len(t, show.Parameters, 1)
	assert.Equal(t, "petId", show.Parameters[0].Name)
	assert.Equal(t, "string", show.Parameters[0].Schema.Get("type").Text())
}

func TestOperationsSkipUnresolvableParameter(t *testing.T) {
	repo, err := New(mustParse(t, `
swagger: "2.0"
paths:
  /things:
    summary: not an operation
    parameters: []
    x-internal: true
    get:
      operationId: listThings
      parameters:
        - $ref: "#/parameters/missing"
        - name: q
          in: query
          type: string
definitions: {}
`))
	require.NoError(t, err)

	ops := repo.Operations(OperationFilter{})
	require.Len(t, ops, 1)
	require.Len(t, ops[0].Parameters, 1)
	assert.Equal(t, "q", ops[0].Parameters[0].Name)
	assert.Equal(t, []string{"things"}, ops[0].Resources())
}

func TestPathResource(t *testing.T) {
	assert.Equal(t, "pet", pathResource("/pet/{petId}"))
	assert.Equal(t, DefaultResource, pathResource("/"))
	assert.Equal(t, "v1", pathResource("//v1/x"))
}
