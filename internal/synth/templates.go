package synth

import (
	"fmt"

	"github.com/alexanderramin/grapple/internal/domain"
)

type transition struct {
	From, To   domain.Category
	Connection string
}

// transitions are directed: From is practiced into To.
var transitions = []transition{
	{domain.CategoryGuard, domain.CategorySubmission, "가드에서 직접 서브미션"},
	{domain.CategoryGuard, domain.CategorySweep, "가드에서 스위프로 포지션 변경"},
	{domain.CategorySweep, domain.CategorySubmission, "스위프 성공 후 서브미션"},
	{domain.CategoryGuardPass, domain.CategorySubmission, "패스 성공 후 서브미션"},
	{domain.CategoryTakedown, domain.CategoryGuardPass, "테이크다운 후 가드 패스"},
	{domain.CategoryMount, domain.CategorySubmission, "마운트에서 서브미션 마무리"},
	{domain.CategoryBackControl, domain.CategorySubmission, "백 포지션에서 서브미션 마무리"},
	{domain.CategoryGuardPass, domain.CategorySideControl, "패스 후 사이드컨트롤 안정화"},
	{domain.CategorySideControl, domain.CategoryMount, "사이드컨트롤에서 마운트 전환"},
	{domain.CategoryEscape, domain.CategoryGuard, "이스케이프 후 가드 회복"},
}

const maxCombinations = 4

var warmupByCategory = map[domain.Category][]string{
	domain.CategoryGuard:       {"다리 스트레칭", "고관절 돌리기", "가드 포지션 연습"},
	domain.CategorySubmission:  {"팔 스트레칭", "어깨 돌리기", "목 스트레칭"},
	domain.CategoryTakedown:    {"전신 스트레칭", "발목 돌리기", "무브먼트 드릴"},
	domain.CategorySweep:       {"고관절 돌리기", "브릿지 드릴", "힙 무브먼트"},
	domain.CategoryGuardPass:   {"하체 스트레칭", "스텝 드릴", "무릎 돌리기"},
	domain.CategoryEscape:      {"새우빼기 드릴", "브릿지 드릴", "어깨 돌리기"},
	domain.CategoryMount:       {"코어 활성화", "고관절 돌리기"},
	domain.CategorySideControl: {"코어 활성화", "가슴 스트레칭"},
	domain.CategoryBackControl: {"코어 활성화", "고관절 돌리기", "팔 스트레칭"},
}

var baseWarmup = []string{"전체 관절 돌리기", "가벼운 움직임", "호흡 준비"}

var cooldown = domain.PhaseBlock{
	Exercises: []string{
		"정적 스트레칭 (전신)",
		"심호흡 운동",
		"관절 이완",
		"부상 방지 스트레칭",
		"명상 및 정리",
	},
	Focus: "근육 이완 및 정신적 정리",
}

const wholeBodyFocus = "전신 준비"

var keyPoints = map[domain.Category][]string{
	domain.CategoryGuard:       {"정확한 포지션", "거리 조절", "상대 컨트롤"},
	domain.CategorySubmission:  {"적절한 각도", "점진적 압력", "상대 반응 읽기"},
	domain.CategorySweep:       {"타이밍", "중심 잡기", "연결동작"},
	domain.CategoryGuardPass:   {"압력 유지", "빠른 전환", "안정된 마무리"},
	domain.CategoryEscape:      {"공간 만들기", "효율적 움직임", "다음 포지션 준비"},
	domain.CategoryTakedown:    {"밸런스", "진입 타이밍", "마무리 확실히"},
	domain.CategoryMount:       {"무게 중심 낮추기", "베이스 넓히기", "상대 팔 고립"},
	domain.CategorySideControl: {"가슴 압박 유지", "엉덩이 낮추기", "상대 엘보우 차단"},
	domain.CategoryBackControl: {"시트벨트 그립", "훅 유지", "상대 손 컨트롤"},
}

var defaultKeyPoints = []string{"정확한 실행", "안전 확보", "반복 연습"}

var commonMistakes = map[domain.Category][]string{
	domain.CategorySubmission:  {"성급한 실행", "과도한 힘", "각도 무시"},
	domain.CategoryGuard:       {"수동적 자세", "거리 조절 실패", "그립 놓침"},
	domain.CategorySweep:       {"타이밍 놓침", "불완전한 준비", "연결 부족"},
	domain.CategoryGuardPass:   {"조급함", "압력 부족", "포지션 불안정"},
	domain.CategoryTakedown:    {"밸런스 상실", "진입 실패", "마무리 소홀"},
	domain.CategoryEscape:      {"늦은 반응", "힘으로만 빠져나가기"},
	domain.CategoryMount:       {"너무 높은 자세", "양손 짚기"},
	domain.CategorySideControl: {"공간 허용", "무게 분산 실패"},
	domain.CategoryBackControl: {"발목 교차", "그립 놓침"},
}

var defaultMistakes = []string{"기본기 부족", "반복 부족"}

var (
	easyTips   = []string{"천천히 정확하게", "기본 동작 완전 숙지", "안전 최우선"}
	hardTips   = []string{"세부 디테일 집중", "다양한 변형 시도", "실전 상황 적용"}
	normalTips = []string{"적당한 속도로", "정확성과 효율성", "연결 기술 연습"}
)

var beltAdvice = map[domain.Belt]string{
	domain.BeltWhite:  "기본기에 충실하고 안전을 최우선으로 하세요",
	domain.BeltBlue:   "기술들의 연결과 흐름을 중시하세요",
	domain.BeltPurple: "자신만의 게임 스타일을 발전시키세요",
	domain.BeltBrown:  "디테일과 타이밍에 집중하세요",
	domain.BeltBlack:  "완성도를 높이고 후진을 양성하세요",
}

const (
	defaultBeltAdvice  = "꾸준한 연습이 답입니다"
	hardSetAdvice      = "고난이도 기술들이 포함되어 있으니 충분한 기본기 연습 후 시도하세요"
	diverseSetAdvice   = "다양한 카테고리의 기술을 배우고 있으니 연결성을 중시하세요"
	closingAdvice      = "매 훈련마다 작은 개선점을 찾아 발전시키세요"
	hardSetAverage     = 4.0
	diverseSetCategory = 3
)

func difficultyTips(d domain.ProgramDifficulty, tier int) []string {
	switch {
	case d == domain.ProgramEasy || tier <= 2:
		return clone(easyTips)
	case d == domain.ProgramHard || tier >= 4:
		return clone(hardTips)
	default:
		return clone(normalTips)
	}
}

func lookupOr(m map[domain.Category][]string, c domain.Category, def []string) []string {
	if v, ok := m[c]; ok {
		return clone(v)
	}
	return clone(def)
}

func practiceMethod(first, second string) string {
	return fmt.Sprintf("%s → %s 자연스러운 연결 연습", first, second)
}

func clone(s []string) []string {
	return append([]string(nil), s...)
}
