package generation

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hitsz-openauto/coursegen/internal/domain"
	"github.com/hitsz-openauto/coursegen/internal/plan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture builds a data directory with one plan file and a repos directory,
// returning a loaded store plus the directories.
func fixture(t *testing.T, planYAML string) (store *plan.Store, dataDir, reposDir, docsDir string) {
	t.Helper()

	dataDir = t.TempDir()
	reposDir = filepath.Join(t.TempDir(), "repos")
	docsDir = filepath.Join(t.TempDir(), "docs")

	require.NoError(t, os.MkdirAll(filepath.Join(dataDir, "plans"), 0755))
	require.NoError(t, os.MkdirAll(reposDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "plans", "plan.yaml"), []byte(planYAML), 0644))

	store, err := plan.Load(dataDir)
	require.NoError(t, err)
	return store, dataDir, reposDir, docsDir
}

func writeCourseDoc(t *testing.T, reposDir, repoID, body string) {
	t.Helper()
	content := "# " + repoID + "\n\n" + body
	require.NoError(t, os.WriteFile(filepath.Join(reposDir, repoID+".mdx"), []byte(content), 0644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

const scenarioPlan = `
info:
  year: "2022"
  major_code: "010101"
  major_name: 计算机科学与技术
  plan_ID: "2022-010101"
courses:
  - course_code: COMP2001
    course_name: 数据结构
    credit: 3
    assessment_method: 考试
    course_nature: 必修
    recommended_year_semester: 第一学年秋季
    hours:
      theory: 48
    grade_details:
      - name: 期末考试
        percent: "70%"
      - name: 作业
        percent: "30%"
`

func TestGenerate_EndToEnd(t *testing.T) {
	store, dataDir, reposDir, docsDir := fixture(t, scenarioPlan)

	writeCourseDoc(t, reposDir, "COMP2001", "课程介绍在这里。")
	require.NoError(t, os.WriteFile(filepath.Join(reposDir, "COMP2001.json"), []byte(`{
		"syllabus.pdf": {"size": 2048, "time": 1640000000},
		"hw1.pdf": {"size": 1024, "time": 1640000000}
	}`), 0644))

	g := &Generator{
		Store:    store,
		Shared:   plan.LoadCategories(dataDir),
		ReposDir: reposDir,
		DocsDir:  docsDir,
	}
	report, err := g.Generate()
	require.NoError(t, err)
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, 1, report.CoursePages)
	assert.Empty(t, report.SkippedCourses)

	// Year sidecar and index.
	var ym yearMeta
	require.NoError(t, json.Unmarshal([]byte(readFile(t, filepath.Join(docsDir, "2022", "meta.json"))), &ym))
	assert.Equal(t, "2022", ym.Title)

	yearIndex := readFile(t, filepath.Join(docsDir, "2022", "index.mdx"))
	assert.Contains(t, yearIndex, `<Card title="计算机科学与技术" href="/docs/2022/010101" />`)

	// Program sidecar marks a root, expandable node.
	var pm programMeta
	require.NoError(t, json.Unmarshal([]byte(readFile(t, filepath.Join(docsDir, "2022", "010101", "meta.json"))), &pm))
	assert.Equal(t, "计算机科学与技术", pm.Title)
	assert.True(t, pm.Root)
	assert.True(t, pm.DefaultOpen)
	assert.Equal(t, []string{"...", "fresh-autumn"}, pm.Pages)

	programIndex := readFile(t, filepath.Join(docsDir, "2022", "010101", "index.mdx"))
	assert.Contains(t, programIndex, `<Card title="大一·秋" href="/docs/2022/010101/fresh-autumn" />`)

	// Semester index has exactly one card, for the written course.
	semIndex := readFile(t, filepath.Join(docsDir, "2022", "010101", "fresh-autumn", "index.mdx"))
	assert.Contains(t, semIndex, "title: 大一·秋")
	assert.Equal(t, 1, strings.Count(semIndex, "<Card "))
	assert.Contains(t, semIndex, `<Card title="数据结构" href="/docs/2022/010101/fresh-autumn/COMP2001" />`)

	// Course page: frontmatter round-trip plus rendered tree in name order.
	coursePage := readFile(t, filepath.Join(docsDir, "2022", "010101", "fresh-autumn", "COMP2001.mdx"))
	assert.Contains(t, coursePage, "title: 数据结构")
	assert.Contains(t, coursePage, "credit: 3")
	assert.Contains(t, coursePage, "assessmentMethod: 考试")
	assert.Contains(t, coursePage, "courseNature: 必修")
	assert.Contains(t, coursePage, "theory: 48")
	assert.Contains(t, coursePage, "name: 期末考试")
	assert.Contains(t, coursePage, "percent: 70")
	assert.Contains(t, coursePage, "<CourseInfo />")
	assert.Contains(t, coursePage, "课程介绍在这里。")
	assert.Contains(t, coursePage, "## 资源下载")
	assert.Contains(t, coursePage, `<Files url="https://open.osa.moe/openauto/COMP2001">`)

	hw1 := strings.Index(coursePage, `<File name="hw1.pdf"`)
	syllabus := strings.Index(coursePage, `<File name="syllabus.pdf"`)
	require.Positive(t, hw1)
	require.Positive(t, syllabus)
	assert.Less(t, hw1, syllabus)
}

func TestGenerate_MissingCourseIsSkipped(t *testing.T) {
	store, dataDir, reposDir, docsDir := fixture(t, scenarioPlan)
	// No COMP2001.mdx on disk.

	g := &Generator{
		Store:    store,
		Shared:   plan.LoadCategories(dataDir),
		ReposDir: reposDir,
		DocsDir:  docsDir,
	}
	report, err := g.Generate()
	require.NoError(t, err)

	assert.Equal(t, 0, report.CoursePages)
	assert.Equal(t, []string{"COMP2001"}, report.SkippedCourses)

	// No semester directory, no card anywhere.
	_, statErr := os.Stat(filepath.Join(docsDir, "2022", "010101", "fresh-autumn"))
	assert.True(t, os.IsNotExist(statErr))

	programIndex := readFile(t, filepath.Join(docsDir, "2022", "010101", "index.mdx"))
	assert.NotContains(t, programIndex, "COMP2001")
	assert.Equal(t, 0, strings.Count(programIndex, "<Card "))
}

func TestGenerate_EmptyFilterExcludesEverything(t *testing.T) {
	store, dataDir, reposDir, docsDir := fixture(t, scenarioPlan)
	writeCourseDoc(t, reposDir, "COMP2001", "内容")

	g := &Generator{
		Store:    store,
		Filter:   plan.NewFilter(),
		Shared:   plan.LoadCategories(dataDir),
		ReposDir: reposDir,
		DocsDir:  docsDir,
	}
	report, err := g.Generate()
	require.NoError(t, err)
	assert.Equal(t, 0, report.CoursePages)
	// Filtered-out courses are not "missing"; they are not skipped either.
	assert.Empty(t, report.SkippedCourses)
}

func TestGenerate_FilterAllowList(t *testing.T) {
	store, dataDir, reposDir, docsDir := fixture(t, scenarioPlan+`
  - course_code: MATH1001
    course_name: 微积分
    recommended_year_semester: 第一学年秋季
`)
	writeCourseDoc(t, reposDir, "COMP2001", "内容")
	writeCourseDoc(t, reposDir, "MATH1001", "内容")

	g := &Generator{
		Store:    store,
		Filter:   plan.NewFilter("COMP2001"),
		Shared:   plan.LoadCategories(dataDir),
		ReposDir: reposDir,
		DocsDir:  docsDir,
	}
	report, err := g.Generate()
	require.NoError(t, err)
	assert.Equal(t, 1, report.CoursePages)

	semIndex := readFile(t, filepath.Join(docsDir, "2022", "010101", "fresh-autumn", "index.mdx"))
	assert.Contains(t, semIndex, "COMP2001")
	assert.NotContains(t, semIndex, "MATH1001")
}

func TestGenerate_MultiSemesterCourse(t *testing.T) {
	store, dataDir, reposDir, docsDir := fixture(t, `
info:
  year: "2022"
  major_code: "010101"
  major_name: 计算机科学与技术
  plan_ID: "x"
courses:
  - course_code: PROJ3001
    course_name: 项目实践
    recommended_year_semester: 第三学年秋季,第四学年秋季
`)
	writeCourseDoc(t, reposDir, "PROJ3001", "实践内容")

	g := &Generator{
		Store:    store,
		Shared:   plan.LoadCategories(dataDir),
		ReposDir: reposDir,
		DocsDir:  docsDir,
	}
	report, err := g.Generate()
	require.NoError(t, err)
	assert.Equal(t, 2, report.CoursePages)

	for _, folder := range []string{"junior-autumn", "senior-autumn"} {
		page := readFile(t, filepath.Join(docsDir, "2022", "010101", folder, "PROJ3001.mdx"))
		assert.Contains(t, page, "title: 项目实践")

		semIndex := readFile(t, filepath.Join(docsDir, "2022", "010101", folder, "index.mdx"))
		assert.Contains(t, semIndex, "/"+folder+"/PROJ3001")
	}

	var pm programMeta
	require.NoError(t, json.Unmarshal([]byte(readFile(t, filepath.Join(docsDir, "2022", "010101", "meta.json"))), &pm))
	assert.Equal(t, []string{"...", "junior-autumn", "senior-autumn"}, pm.Pages)
}

func TestGenerate_NoSemesterCourseLandsInProgramDir(t *testing.T) {
	store, dataDir, reposDir, docsDir := fixture(t, `
info:
  year: "2022"
  major_code: "010101"
  major_name: 计算机科学与技术
  plan_ID: "x"
courses:
  - course_code: FREE0001
    course_name: 任选课
`)
	writeCourseDoc(t, reposDir, "FREE0001", "内容")

	g := &Generator{
		Store:    store,
		Shared:   plan.LoadCategories(dataDir),
		ReposDir: reposDir,
		DocsDir:  docsDir,
	}
	_, err := g.Generate()
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(docsDir, "2022", "010101", "FREE0001.mdx"))
}

func TestGenerate_MissingReposDir(t *testing.T) {
	store, dataDir, _, docsDir := fixture(t, scenarioPlan)

	g := &Generator{
		Store:    store,
		Shared:   plan.LoadCategories(dataDir),
		ReposDir: filepath.Join(t.TempDir(), "does-not-exist"),
		DocsDir:  docsDir,
	}
	_, err := g.Generate()
	require.Error(t, err)

	var missing *plan.MissingDirError
	assert.True(t, errors.As(err, &missing))
}

func TestGenerate_SharedCategories(t *testing.T) {
	store, dataDir, reposDir, docsDir := fixture(t, scenarioPlan)
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "shared_categories.yaml"), []byte(`
categories:
  - id: cross-specialty
    title: 跨专业选修
    repo_ids: [CHEM1012, SPST1004]
  - id: empty-cat
    title: 空分类
    repo_ids: [NOPE0001]
no_course_info_repo_ids: [CHEM1012]
`), 0644))

	writeCourseDoc(t, reposDir, "COMP2001", "内容")
	writeCourseDoc(t, reposDir, "CHEM1012", "化学内容")
	writeCourseDoc(t, reposDir, "SPST1004", "天文内容")

	g := &Generator{
		Store:    store,
		Shared:   plan.LoadCategories(dataDir),
		ReposDir: reposDir,
		DocsDir:  docsDir,
	}
	_, err := g.Generate()
	require.NoError(t, err)

	catDir := filepath.Join(docsDir, "2022", "010101", "cross-specialty")
	chem := readFile(t, filepath.Join(catDir, "CHEM1012.mdx"))
	assert.NotContains(t, chem, "<CourseInfo />")
	spst := readFile(t, filepath.Join(catDir, "SPST1004.mdx"))
	assert.Contains(t, spst, "<CourseInfo />")

	catIndex := readFile(t, filepath.Join(catDir, "index.mdx"))
	assert.Contains(t, catIndex, "title: 跨专业选修")
	assert.Equal(t, 2, strings.Count(catIndex, "<Card "))

	// A category with no available courses leaves no directory behind.
	_, statErr := os.Stat(filepath.Join(docsDir, "2022", "010101", "empty-cat"))
	assert.True(t, os.IsNotExist(statErr))

	var pm programMeta
	require.NoError(t, json.Unmarshal([]byte(readFile(t, filepath.Join(docsDir, "2022", "010101", "meta.json"))), &pm))
	assert.Equal(t, []string{"...", "fresh-autumn", "cross-specialty"}, pm.Pages)
}

func TestDocTitle(t *testing.T) {
	assert.Equal(t, "线性代数", docTitle("# MATH1002 - 线性代数\n\n正文", "MATH1002"))
	assert.Equal(t, "普通天文学", docTitle("---\ntitle: \"普通天文学\"\n---\n正文", "SPST1004"))
	assert.Equal(t, "plain heading", docTitle("# plain heading\nbody", "X"))
	assert.Equal(t, "FALLBACK", docTitle("", "FALLBACK"))
	assert.Equal(t, "FALLBACK", docTitle("\n\n\n", "FALLBACK"))
}

func TestStripTitleBlock(t *testing.T) {
	assert.Equal(t, "body line", stripTitleBlock("# Title\n\nbody line"))
	assert.Equal(t, "", stripTitleBlock("# Title\n"))
	assert.Equal(t, "", stripTitleBlock("single"))
}

func TestBuildFrontmatter_DropsZeroPercentGrades(t *testing.T) {
	zero := "0%"
	bad := "n/a"
	seventy := "70%"
	c := domain.Course{
		RepoID: "COMP2001",
		Name:   "课程",
		GradeDetails: []domain.GradeDetail{
			{Name: "出勤", Percent: &zero},
			{Name: "神秘", Percent: &bad},
			{Name: "实验", Percent: nil},
			{Name: "期末", Percent: &seventy},
		},
	}

	fm, err := buildFrontmatter("课程", &c)
	require.NoError(t, err)
	assert.Contains(t, fm, "name: 期末")
	assert.NotContains(t, fm, "出勤")
	assert.NotContains(t, fm, "神秘")
	assert.NotContains(t, fm, "实验")
}
