package datasets

import (
	"context"

	"github.com/JonMunkholm/datasets/internal/core"
)

// StudentPath is the conventional location of the student records file.
const StudentPath = "anonymized/student_info_anonymized.csv"

// StudentSchema returns the per-term student academic records schema.
func StudentSchema() core.Schema {
	return core.Schema{
		Name: "student",
		Fields: []core.FieldSpec{
			{Name: "STUDENT_ID", Type: core.FieldText},
			{Name: "ADMISSION_TYPE", Type: core.FieldText},
			{Name: "STUDY_PROGRAM", Type: core.FieldText},
			{Name: "TEST_SCORE_NEEDED_MAJOR", Type: core.FieldFloat},
			{Name: "ENTRY_TERM", Type: core.FieldInt},
			{Name: "TEST_SCORE", Type: core.FieldFloat},
			{Name: "TERM_CODE", Type: core.FieldInt},
			{Name: "TERM_GPA", Type: core.FieldFloat},
			{Name: "OVERALL_GPA", Type: core.FieldFloat},
			{Name: "HOURS_TAKEN", Type: core.FieldFloat},
			{Name: "HOURS_FINISHED", Type: core.FieldFloat},
			{Name: "HOURS_PASSED", Type: core.FieldFloat},
			{Name: "HOURS_FAILED", Type: core.FieldFloat},
			{Name: "HOURS_DROPPED", Type: core.FieldFloat},
			{Name: "SCHOOL_ID", Type: core.FieldText},
		},
	}
}

// Student returns the catalog entry for the student records file.
func Student() core.Dataset {
	return core.Dataset{
		Name:        "student",
		Label:       "Student academic records",
		DefaultPath: StudentPath,
		Schema:      StudentSchema(),
	}
}

// LoadStudents reads the full student file. An empty path means StudentPath.
func LoadStudents(ctx context.Context, path string) (*core.Table, error) {
	return Student().LoadAll(ctx, path)
}

// LoadStudentsSubset reads the first n rows of the student file.
func LoadStudentsSubset(ctx context.Context, n int, path string) (*core.Table, error) {
	return Student().LoadFirst(ctx, n, path)
}
