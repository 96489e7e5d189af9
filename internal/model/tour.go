package model

// TourStep はガイドツアーの現在位置を表す列挙型です
type TourStep int

const (
	TourStepHome TourStep = iota
	TourStepLevels
	TourStepPractice
	TourStepProfile
	TourStepDone
)

// tourStepNames は永続化・レスポンスで使う文字列表現
var tourStepNames = [...]string{
	TourStepHome:     "home",
	TourStepLevels:   "levels",
	TourStepPractice: "practice",
	TourStepProfile:  "profile",
	TourStepDone:     "done",
}

func (s TourStep) String() string {
	if s < TourStepHome || s > TourStepDone {
		return "home"
	}
	return tourStepNames[s]
}

// ParseTourStep は永続化された文字列をステップに戻します。
// 不明な値は安全側に倒して home を返します (遷移エラーは存在しない)。
func ParseTourStep(name string) TourStep {
	for i, n := range tourStepNames {
		if n == name {
			return TourStep(i)
		}
	}
	return TourStepHome
}

// NextTourStep は固定順序で1つ進めます。終端 (done) ではそのまま留まります。
func NextTourStep(s TourStep) TourStep {
	if s >= TourStepDone {
		return TourStepDone
	}
	return s + 1
}

// TourStateResponse はツアー状態APIのレスポンスDTO
type TourStateResponse struct {
	Active bool   `json:"active"`
	Step   string `json:"step"`
}
