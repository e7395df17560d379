package lexicon

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Rule folds spelling variants and typos onto a canonical term.
type Rule struct {
	Canonical string
	Variants  []string
}

// DefaultRules is the ordered normalization table. Rules are applied in a
// single left-to-right pass; see buildReplacer for how overlaps resolve.
var DefaultRules = []Rule{
	{Canonical: "하프가드", Variants: []string{"하프 가드", "half guard", "반가드", "하프가듣", "하프가들", "하프"}},
	{Canonical: "바디트라이앵글", Variants: []string{"몸삼각", "바디 트라이앵글", "body triangle"}},
	{Canonical: "트라이앵글", Variants: []string{"triangle", "트라이앙글", "트라이엥글", "삼각"}},
	{Canonical: "기요틴", Variants: []string{"guillotine", "기욜틴", "길로틴", "단두대"}},
	{Canonical: "암바", Variants: []string{"armbar", "암바르", "아무바", "엠바", "엄바"}},
	{Canonical: "키무라", Variants: []string{"kimura", "킴우라"}},
	{Canonical: "오모플라타", Variants: []string{"omoplata", "옴플라타"}},
	{Canonical: "리어네이키드", Variants: []string{"rear naked", "리어 네이키드", "rnc"}},
	{Canonical: "스위프", Variants: []string{"sweep", "스윕"}},
	{Canonical: "배우고", Variants: []string{"배으고", "학습하고", "습득하고"}},
	{Canonical: "어려워", Variants: []string{"어려와"}},
	{Canonical: "경기", Variants: []string{"토너먼트", "매치"}},
	{Canonical: "연습", Variants: []string{"실습"}},
	{Canonical: "테이크다운", Variants: []string{"takedown", "테이크 다운"}},
	{Canonical: "패스", Variants: []string{"패쓰"}},
}

// buildReplacer turns the rules into one strings.Replacer. Canonical terms
// are registered as identities first so text that is already canonical is
// never rewritten again (하프가드 must not become 하프가드가드). Variants follow,
// longest first, ties in rule order. strings.Replacer compares candidates in
// argument order at each position, so the result does not depend on map order.
func buildReplacer(rules []Rule) *strings.Replacer {
	type variant struct {
		from, to string
	}
	var oldnew []string
	var variants []variant
	for _, r := range rules {
		oldnew = append(oldnew, r.Canonical, r.Canonical)
		for _, v := range r.Variants {
			variants = append(variants, variant{from: strings.ToLower(v), to: r.Canonical})
		}
	}
	sort.SliceStable(variants, func(i, j int) bool {
		return utf8.RuneCountInString(variants[i].from) > utf8.RuneCountInString(variants[j].from)
	})
	for _, v := range variants {
		oldnew = append(oldnew, v.from, v.to)
	}
	return strings.NewReplacer(oldnew...)
}
