package lexicon

import "github.com/alexanderramin/grapple/internal/domain"

// Tag is a feature label plus the surface forms that signal it.
type Tag struct {
	Name     string
	Synonyms []string
}

// Body-part tags. The tag names also appear verbatim in catalog
// descriptions, which is what the matcher's tag bonus relies on.
// 몸통 uses 복부 rather than 배 so that 배우고 does not tag the torso.
var bodyPartTags = []Tag{
	{Name: "다리", Synonyms: []string{"다리", "발", "무릎", "허벅지", "발목", "종아리"}},
	{Name: "목", Synonyms: []string{"목", "목구멍", "목덜미", "경동맥"}},
	{Name: "팔", Synonyms: []string{"팔", "팔꿈치", "손목", "어깨", "겨드랑이"}},
	{Name: "몸통", Synonyms: []string{"몸통", "허리", "가슴", "등", "엉덩이", "복부"}},
}

var actionTags = []Tag{
	{Name: "꺾기", Synonyms: []string{"꺾기", "꺾는", "비트는", "관절기", "꺽는"}},
	{Name: "조르기", Synonyms: []string{"조르기", "조르는", "목조르기", "초크", "죄기"}},
	{Name: "넘기기", Synonyms: []string{"넘어뜨리기", "넘기기", "뒤집기", "던지기", "메치기"}},
	{Name: "잡기", Synonyms: []string{"잡기", "붙잡기", "고정하기", "컨트롤", "홀드"}},
	{Name: "밀기", Synonyms: []string{"밀기", "밀어내기", "밀어서", "누르기"}},
	{Name: "걸기", Synonyms: []string{"걸기", "거는", "걸어서", "후크"}},
}

type difficultyCue struct {
	Cue   domain.DifficultyCue
	Words []string
}

// Checked in order; the first table with a hit wins.
var difficultyCues = []difficultyCue{
	{Cue: domain.CueEasy, Words: []string{"기본", "쉬운", "간단한", "처음", "초보", "초급"}},
	{Cue: domain.CueHard, Words: []string{"어려운", "복잡한", "고급", "마스터", "상급", "고수"}},
}

type intensityTier struct {
	Level     domain.Intensity
	Modifiers []string
}

// Highest tier first.
var intensityTiers = []intensityTier{
	{Level: domain.IntensityVeryHigh, Modifiers: []string{"완전", "완벽하게", "너무너무", "아주아주", "엄청"}},
	{Level: domain.IntensityHigh, Modifiers: []string{"정말", "매우", "아주", "완전히", "집중적으로", "공격적으로", "빡세게", "강하게"}},
	{Level: domain.IntensityMedium, Modifiers: []string{"좀", "조금", "약간", "제법", "꽤"}},
	{Level: domain.IntensityLow, Modifiers: []string{"살짝", "다소", "조금은", "약간은", "가볍게", "천천히"}},
}

type emotionCue struct {
	Emotion domain.Emotion
	Words   []string
}

var emotionCues = []emotionCue{
	{Emotion: domain.EmotionFrustration, Words: []string{"답답", "짜증", "힘들", "어려워", "막막"}},
	{Emotion: domain.EmotionPositive, Words: []string{"재밌", "좋아", "즐거", "신나"}},
	{Emotion: domain.EmotionAnxiety, Words: []string{"무서", "걱정", "불안"}},
}

var beginnerWords = []string{"초보", "처음", "모르", "기본", "입문"}

var takedownWords = []string{"테이크다운", "넘어뜨리기", "던지기", "메치기", "태클", "서서", "스탠딩"}
