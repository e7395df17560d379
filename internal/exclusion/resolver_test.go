package exclusion

import (
	"testing"

	"github.com/alexanderramin/grapple/internal/catalog"
	"github.com/alexanderramin/grapple/internal/domain"
	"github.com/alexanderramin/grapple/internal/lexicon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResolver(t *testing.T) *Resolver {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	return NewResolver(cat)
}

func spansOf(text string) []lexicon.NegationSpan {
	return lexicon.NewExtractor().Extract(text).Negations
}

func TestResolve_ExactTechnique(t *testing.T) {
	set := newResolver(t).Resolve(spansOf("트라이앵글은 말고 다른 서브미션들을 배우고 싶어요"))

	assert.Equal(t, []string{"트라이앵글"}, set.Techniques)
	assert.Empty(t, set.Categories)
	assert.Empty(t, set.FreeText)
}

func TestResolve_AliasAndLastWord(t *testing.T) {
	r := newResolver(t)

	set := r.Resolve([]lexicon.NegationSpan{{Kind: lexicon.SpanExclusive, Phrase: "나는 킴우라", Term: "킴우라"}})
	assert.Equal(t, []string{"키무라"}, set.Techniques)

	set = r.Resolve(spansOf("클로즈드 가드 빼고"))
	assert.Equal(t, []string{"클로즈드 가드"}, set.Techniques)
}

func TestResolve_Category(t *testing.T) {
	set := newResolver(t).Resolve(spansOf("서브미션들은 빼고 가드만"))

	assert.Equal(t, []domain.Category{domain.CategorySubmission}, set.Categories)
	assert.True(t, set.Excludes(domain.TechniqueRecord{Name: "암바", Category: domain.CategorySubmission}))
	assert.False(t, set.Excludes(domain.TechniqueRecord{Name: "하프가드", Category: domain.CategoryGuard}))
}

func TestResolve_SubmissionType(t *testing.T) {
	set := newResolver(t).Resolve([]lexicon.NegationSpan{{Kind: lexicon.SpanExclusive, Phrase: "레그락", Term: "레그락"}})

	assert.Contains(t, set.Techniques, "힐훅")
	assert.Contains(t, set.Techniques, "니바")
	assert.NotContains(t, set.Techniques, "암바")
}

func TestResolve_ContainmentFallback(t *testing.T) {
	set := newResolver(t).Resolve([]lexicon.NegationSpan{{Kind: lexicon.SpanExclusive, Phrase: "스파이더", Term: "스파이더"}})

	assert.Equal(t, []string{"스파이더 가드"}, set.Techniques)
	assert.Empty(t, set.FreeText)
}

func TestResolve_UnresolvedBecomesFreeText(t *testing.T) {
	set := newResolver(t).Resolve([]lexicon.NegationSpan{
		{Kind: lexicon.SpanExclusive, Phrase: "무거운것", Term: "무거운것"},
		{Kind: lexicon.SpanExclusive, Phrase: "무거운것", Term: "무거운것"},
	})

	assert.Empty(t, set.Techniques)
	assert.Empty(t, set.Categories)
	assert.Equal(t, []string{"무거운것"}, set.FreeText)
}

func TestResolve_Preference(t *testing.T) {
	set := newResolver(t).Resolve(spansOf("암바보다는 트라이앵글을 배우고 싶어"))

	assert.Equal(t, []string{"암바"}, set.Techniques)
	require.Len(t, set.Preferences, 1)
	assert.Equal(t, domain.Preference{Avoid: "암바", Prefer: "트라이앵글"}, set.Preferences[0])
}

func TestResolve_NoSpans(t *testing.T) {
	set := newResolver(t).Resolve(nil)
	assert.True(t, set.Empty())
}
