package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildCandidateQuery(t *testing.T) {
	query, args, err := buildCandidateQuery("Kayaking", "Private").ToSql()

	assert.NoError(t, err)
	assert.Equal(t,
		"SELECT ia.instructor, ia.qualification, ir.rate FROM instructor_activity_levels ia "+
			"LEFT JOIN instructor_rates ir ON ia.qualification = ir.qualification AND ia.activity_name = ir.activity_name AND ir.session_type = $1 "+
			"WHERE ia.activity_name = $2 ORDER BY ia.instructor",
		query,
	)
	assert.Equal(t, []any{"Private", "Kayaking"}, args)
}
