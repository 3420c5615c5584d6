package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	Clear()
	t.Cleanup(Clear)

	Register(Dataset{Name: "scores", Label: "Scores", DefaultPath: "a.csv", Schema: scoresSchema()})
	Register(Dataset{Name: "alpha", Label: "Alpha", Schema: Schema{Fields: []FieldSpec{{Name: "X", Type: FieldInt}}}})

	assert.Equal(t, []string{"alpha", "scores"}, Names())
	require.Len(t, All(), 2)

	d, ok := Get("alpha")
	require.True(t, ok)
	assert.Equal(t, "alpha", d.Schema.Name, "schema name defaults to dataset name")

	_, ok = Get("missing")
	assert.False(t, ok)
}

func TestRegister_Panics(t *testing.T) {
	Clear()
	t.Cleanup(Clear)

	Register(Dataset{Name: "dup", Schema: scoresSchema()})
	assert.Panics(t, func() { Register(Dataset{Name: "dup", Schema: scoresSchema()}) })

	bad := Schema{Fields: []FieldSpec{{Name: "A"}, {Name: "A"}}}
	assert.Panics(t, func() { Register(Dataset{Name: "bad", Schema: bad}) })
}

func TestDataset_PathOverride(t *testing.T) {
	path := numberedFile(t, 20)
	d := Dataset{Name: "scores", DefaultPath: path, Schema: scoresSchema()}

	assert.Equal(t, path, d.Path(""))
	assert.Equal(t, "other.csv", d.Path("other.csv"))

	all, err := d.LoadAll(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 20, all.Len())

	first, err := d.LoadFirst(context.Background(), 5, "")
	require.NoError(t, err)
	assert.Equal(t, 5, first.Len())

	_, err = d.LoadAll(context.Background(), path+".missing")
	assert.ErrorIs(t, err, ErrAccess)
}

func TestSchema_Validate(t *testing.T) {
	assert.NoError(t, scoresSchema().Validate())
	assert.Error(t, Schema{Fields: []FieldSpec{{Name: ""}}}.Validate())
	assert.Error(t, Schema{Fields: []FieldSpec{{Name: "A"}, {Name: "A"}}}.Validate())
}

func TestSchema_LookupAndColumns(t *testing.T) {
	s := scoresSchema()

	spec, ok := s.Lookup("semestre")
	require.True(t, ok)
	assert.Equal(t, FieldInt, spec.Type)

	_, ok = s.Lookup("SEMESTRE")
	assert.False(t, ok, "lookup is case-sensitive")

	assert.Equal(t, []string{"SCHOOL_ID", "PUNT_LECTURA_CRITICA", "PUNT_GLOBAL", "semestre"}, s.Columns())
}
