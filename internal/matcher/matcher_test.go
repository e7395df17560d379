package matcher

import (
	"fmt"
	"strings"
	"testing"

	"github.com/alexanderramin/grapple/internal/catalog"
	"github.com/alexanderramin/grapple/internal/domain"
	"github.com/alexanderramin/grapple/internal/exclusion"
	"github.com/alexanderramin/grapple/internal/lexicon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	cat      *catalog.Catalog
	ext      *lexicon.Extractor
	resolver *exclusion.Resolver
	m        *Matcher
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	return fixture{
		cat:      cat,
		ext:      lexicon.NewExtractor(),
		resolver: exclusion.NewResolver(cat),
		m:        New(cat, DefaultOptions()),
	}
}

func (fx fixture) run(text string) Result {
	f := fx.ext.Extract(text)
	return fx.m.Match(f, fx.resolver.Resolve(f.Negations))
}

func names(ms []domain.TechniqueMatch) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.Name
	}
	return out
}

func TestMatch_ExactNameIsPrimary(t *testing.T) {
	fx := newFixture(t)

	for _, rec := range fx.cat.All() {
		text := rec.Name + " 배우고 싶어요"
		f := fx.ext.Extract(text)

		assert.GreaterOrEqual(t, fx.m.Score(rec, f), ExactNamePoints, rec.Name)
		res := fx.m.Match(f, exclusion.Set{})
		assert.Contains(t, names(res.Primary), rec.Name, text)
		assert.Contains(t, res.MentionedNames, rec.Name)
	}
}

func TestMatch_LegNeckChoke(t *testing.T) {
	fx := newFixture(t)
	res := fx.run("다리로 목 조르는 기술 배우고 싶어요")

	require.NotEmpty(t, res.Primary)
	assert.Equal(t, "트라이앵글", res.Primary[0].Name)
	assert.Equal(t, domain.SubmissionChoke, res.Primary[0].SubType)
	assert.Empty(t, res.MentionedNames)
}

func TestMatch_ExcludedTechniqueIsDropped(t *testing.T) {
	fx := newFixture(t)
	res := fx.run("트라이앵글은 말고 다리로 목 조르는 기술")

	assert.NotContains(t, names(res.Primary), "트라이앵글")
	assert.NotContains(t, names(res.Related), "트라이앵글")
	assert.Contains(t, res.MentionedNames, "트라이앵글")
}

func TestMatch_FuzzyOneSubstitution(t *testing.T) {
	fx := newFixture(t)

	res := fx.run("트라이앵굴")
	assert.Contains(t, append(names(res.Primary), names(res.Related)...), "트라이앵글")

	for _, rec := range fx.cat.All() {
		runes := []rune(rec.Name)
		if len(runes) < 5 || strings.Contains(rec.Name, " ") {
			continue
		}
		runes[len(runes)/2] = '흙'
		typo := string(runes)

		res := fx.run(typo)
		all := append(names(res.Primary), names(res.Related)...)
		assert.Contains(t, all, rec.Name, "typo %q", typo)
	}
}

func TestMatch_KeywordOccurrencesAndTiers(t *testing.T) {
	cat, err := catalog.New([]domain.TechniqueRecord{
		{Name: "aa", Category: domain.CategoryGuard, Difficulty: 1, Keywords: []string{"다리"}},
		{Name: "bb", Category: domain.CategoryGuard, Difficulty: 1, Keywords: []string{"팔"}},
		{Name: "cc", Category: domain.CategoryGuard, Difficulty: 1, Keywords: []string{"목"}},
	})
	require.NoError(t, err)
	m := New(cat, DefaultOptions())
	ext := lexicon.NewExtractorWithRules(nil)

	// body-part tags are not in any description, so only keywords count
	res := m.Match(ext.Extract("다리 다리 팔"), exclusion.Set{})

	assert.Equal(t, []string{"aa"}, names(res.Primary))
	assert.Equal(t, 6, res.Primary[0].Score)
	assert.Equal(t, []string{"bb"}, names(res.Related))
	assert.Equal(t, 3, res.Related[0].Score)
}

func TestMatch_TagAndPairBonus(t *testing.T) {
	cat, err := catalog.New([]domain.TechniqueRecord{
		{Name: "zz", Category: domain.CategorySubmission, Difficulty: 3, SubType: domain.SubmissionChoke,
			Descriptions: []string{"다리 목 조르기"}},
	})
	require.NoError(t, err)
	m := New(cat, DefaultOptions())
	ext := lexicon.NewExtractorWithRules(nil)

	rec, _ := cat.ByExactName("zz")
	// 다리, 목, 조르기 tags: 3*2, pairs 다리-조르기 and 목-조르기: 2*4; description tokens 다리/조르기 hit the index
	f := ext.Extract("다리 목 조르기")
	assert.Equal(t, 6+8+6, m.Score(rec, f))
}

func TestMatch_StableOrderAndTruncation(t *testing.T) {
	var recs []domain.TechniqueRecord
	for i := 0; i < 20; i++ {
		recs = append(recs, domain.TechniqueRecord{
			Name: fmt.Sprintf("t%02d", i), Category: domain.CategoryGuard, Difficulty: 1, Keywords: []string{"다리"},
		})
	}
	cat, err := catalog.New(recs)
	require.NoError(t, err)

	m := New(cat, DefaultOptions())
	ext := lexicon.NewExtractorWithRules(nil)

	res := m.Match(ext.Extract("다리 다리"), exclusion.Set{})
	require.Len(t, res.Primary, 8)
	for i, tm := range res.Primary {
		assert.Equal(t, fmt.Sprintf("t%02d", i), tm.Name)
	}
	assert.Empty(t, res.Related)

	res = m.Match(ext.Extract("다리"), exclusion.Set{})
	assert.Empty(t, res.Primary)
	require.Len(t, res.Related, 12)
	assert.Equal(t, "t00", res.Related[0].Name)
	assert.Equal(t, "t11", res.Related[11].Name)
}

func TestMatch_CategoryExclusion(t *testing.T) {
	fx := newFixture(t)
	res := fx.run("서브미션은 빼고 다리로 목 조르는 기술")

	for _, tm := range append(res.Primary, res.Related...) {
		assert.NotEqual(t, domain.CategorySubmission, tm.Category, tm.Name)
	}
}

func TestMatch_NothingMatches(t *testing.T) {
	fx := newFixture(t)
	res := fx.run("안녕하세요")

	assert.Empty(t, res.Primary)
	assert.Empty(t, res.Related)
}

func TestNew_FillsZeroOptions(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)

	m := New(cat, Options{})
	assert.Equal(t, DefaultOptions(), m.opts)
}
