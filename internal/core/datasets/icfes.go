package datasets

import (
	"context"

	"github.com/JonMunkholm/datasets/internal/core"
)

// ICFESPath is the conventional location of the ICFES exam results file.
const ICFESPath = "anonymized/icfes_combined_anonymized.csv"

// ICFESSchema returns the ICFES exam results schema: a school identifier,
// score and percentile per subject plus the global pair, and the term indicator.
func ICFESSchema() core.Schema {
	return core.Schema{
		Name: "icfes",
		Fields: []core.FieldSpec{
			{Name: "SCHOOL_ID", Type: core.FieldText},
			{Name: "PUNT_LECTURA_CRITICA", Type: core.FieldFloat},
			{Name: "PERCENTIL_LECTURA_CRITICA", Type: core.FieldFloat},
			{Name: "PUNT_MATEMATICAS", Type: core.FieldFloat},
			{Name: "PERCENTIL_MATEMATICAS", Type: core.FieldFloat},
			{Name: "PUNT_C_NATURALES", Type: core.FieldFloat},
			{Name: "PERCENTIL_C_NATURALES", Type: core.FieldFloat},
			{Name: "PUNT_SOCIALES_CIUDADANAS", Type: core.FieldFloat},
			{Name: "PERCENTIL_SOCIALES_CIUDADANAS", Type: core.FieldFloat},
			{Name: "PUNT_INGLES", Type: core.FieldFloat},
			{Name: "PERCENTIL_INGLES", Type: core.FieldFloat},
			{Name: "PUNT_GLOBAL", Type: core.FieldFloat},
			{Name: "PERCENTIL_GLOBAL", Type: core.FieldFloat},
			{Name: "semestre", Type: core.FieldInt},
		},
	}
}

// ICFES returns the catalog entry for the ICFES exam results file.
func ICFES() core.Dataset {
	return core.Dataset{
		Name:        "icfes",
		Label:       "ICFES exam results",
		DefaultPath: ICFESPath,
		Schema:      ICFESSchema(),
	}
}

// LoadICFES reads the full ICFES file. An empty path means ICFESPath.
func LoadICFES(ctx context.Context, path string) (*core.Table, error) {
	return ICFES().LoadAll(ctx, path)
}

// LoadICFESSubset reads the first n rows of the ICFES file.
func LoadICFESSubset(ctx context.Context, n int, path string) (*core.Table, error) {
	return ICFES().LoadFirst(ctx, n, path)
}
