package spec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/swaggerdoc/oaserrors"
)

func fieldKeys(fields []Field) []string {
	keys := make([]string, 0, len(fields))
	for _, f := range fields {
		keys = append(keys, f.Key)
	}
	return keys
}

func TestModelProperties(t *testing.T) {
	repo := loadPetstore(t)

	props, err := repo.ModelProperties("Pet")
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "category", "name", "photoUrls", "tags", "status"}, fieldKeys(props))

	byRef, err := repo.ModelProperties("#/definitions/Pet")
	require.NoError(t, err)
	assert.Equal(t, props, byRef)
}

func TestModelPropertiesUnknown(t *testing.T) {
	repo := loadPetstore(t)

	_, err := repo.ModelProperties("DoesNotExist")
	require.Error(t, err)

	var unknown *oaserrors.UnknownModelError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "DoesNotExist", unknown.Model)
	assert.ErrorIs(t, err, oaserrors.ErrUnknownModel)
}

func TestModelPropertiesAllOf(t *testing.T) {
	repo := loadOAS3(t)

	props, err := repo.ModelProperties("Dog")
	require.NoError(t, err)
	assert.Equal(t, []string{"packSize", "id", "name", "tag", "breed"}, fieldKeys(props))

	name := Mapping(props...).Get("name")
	assert.Equal(t, "Dog name", name.Get("description").Text(), "later allOf entries win")
}

func TestModelPropertiesAllOfErrors(t *testing.T) {
	repo, err := New(mustParse(t, `
swagger: "2.0"
paths: {}
definitions:
  A:
    allOf:
      - $ref: "#/definitions/B"
  B:
    allOf:
      - $ref: "#/definitions/A"
  Self:
    allOf:
      - $ref: "#/definitions/Self"
  Broken:
    allOf:
      - $ref: "#/definitions/Nowhere"
  Linked:
    properties:
      next:
        $ref: "#/definitions/Linked"
`))
	require.NoError(t, err)

	_, err = repo.ModelProperties("A")
	var cyclic *oaserrors.CyclicModelReferenceError
	require.True(t, errors.As(err, &cyclic), "got %v", err)
	assert.Equal(t, []string{"A", "B", "A"}, cyclic.Chain)
	assert.ErrorIs(t, err, oaserrors.ErrCyclicModelReference)

	_, err = repo.ModelProperties("Self")
	assert.ErrorIs(t, err, oaserrors.ErrCyclicModelReference)

	_, err = repo.ModelProperties("Broken")
	var unknown *oaserrors.UnknownModelError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "Nowhere", unknown.Model)
	assert.Equal(t, "#/definitions/Nowhere", unknown.Ref)

	// Property references are not followed while collapsing.
	props, err := repo.ModelProperties("Linked")
	require.NoError(t, err)
	assert.Equal(t, []string{"next"}, fieldKeys(props))
}

func TestCollapseProperties(t *testing.T) {
	repo := loadPetstore(t)

	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"inline", `{"type": "object", "properties": {"b": {}, "a": {}}}`, []string{"b", "a"}},
		{"reference", `{"$ref": "#/definitions/Tag"}`, []string{"id", "name"}},
		{"allOf mix", `{"allOf": [{"$ref": "#/definitions/Tag"}, {"properties": {"extra": {}}}]}`, []string{"id", "name", "extra"}},
		{"empty", `{"type": "object"}`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props, err := repo.CollapseProperties(mustParse(t, tt.src))
			require.NoError(t, err)
			if tt.want == nil {
				assert.Empty(t, props)
				return
			}
			assert.Equal(t, tt.want, fieldKeys(props))
		})
	}
}
