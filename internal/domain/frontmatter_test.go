package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestFrontmatterEncode_Basic(t *testing.T) {
	fm := &Frontmatter{
		Title: "Test Course",
		Course: CourseMeta{
			Credit:           3,
			AssessmentMethod: "考试",
			CourseNature:     "必修",
			HourDistribution: HourMeta{Theory: 48},
			GradingScheme: []GradeShare{
				{Name: "期末考试", Percent: 70},
				{Name: "作业", Percent: 30},
			},
		},
	}

	out, err := fm.Encode()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "---\n"))
	assert.True(t, strings.HasSuffix(out, "---"))
	assert.Contains(t, out, "title: Test Course")
	assert.Contains(t, out, "credit: 3")
	assert.Contains(t, out, "assessmentMethod: 考试")
	assert.Contains(t, out, "courseNature: 必修")
	assert.Contains(t, out, "theory: 48")
	assert.Contains(t, out, "name: 期末考试")
	assert.Contains(t, out, "percent: 70")
}

func TestFrontmatterEncode_QuotesUnsafeStrings(t *testing.T) {
	fm := &Frontmatter{
		Title: `Logic: An "Introduction"`,
		Course: CourseMeta{
			AssessmentMethod: "open: book",
		},
	}

	out, err := fm.Encode()
	require.NoError(t, err)

	// yaml.v3 must quote values containing colons or quotes so the header
	// stays parseable.
	var decoded Frontmatter
	body := strings.TrimSuffix(strings.TrimPrefix(out, "---\n"), "---")
	require.NoError(t, yaml.Unmarshal([]byte(body), &decoded))
	assert.Equal(t, fm.Title, decoded.Title)
	assert.Equal(t, "open: book", decoded.Course.AssessmentMethod)
}

func TestFrontmatterEncode_EmptyGradingScheme(t *testing.T) {
	fm := &Frontmatter{Title: "Simple"}
	out, err := fm.Encode()
	require.NoError(t, err)
	assert.Contains(t, out, "gradingScheme: []")
}
