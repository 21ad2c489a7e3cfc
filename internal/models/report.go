package models

// RuleID — идентификатор правила проверки пароля
type RuleID string

const (
	RuleMinLength8  RuleID = "min_length_8"
	RuleMinLength14 RuleID = "min_length_14"
	RuleHasUpper    RuleID = "has_upper"
	RuleHasLower    RuleID = "has_lower"
	RuleHasDigit    RuleID = "has_digit"
	RuleHasSpecial  RuleID = "has_special"
)

// Tier — грубая категория надежности
type Tier int

const (
	TierWeak Tier = iota
	TierMedium
	TierStrong
)

func (t Tier) String() string {
	switch t {
	case TierMedium:
		return "medium"
	case TierStrong:
		return "strong"
	default:
		return "weak"
	}
}

type RuleResult struct {
	RuleID    RuleID `json:"rule_id"`
	Satisfied bool   `json:"satisfied"`
	Weight    int    `json:"weight"` // Вес правила, а не начисленные баллы
}

// StrengthReport — результат оценки пароля.
// Results всегда содержит все правила в фиксированном порядке.
type StrengthReport struct {
	TotalScore int          `json:"total_score"`
	Results    []RuleResult `json:"results"`
	Tier       Tier         `json:"tier"`
}

// Passed сообщает, выполнено ли правило id
func (r StrengthReport) Passed(id RuleID) bool {
	for _, res := range r.Results {
		if res.RuleID == id {
			return res.Satisfied
		}
	}
	return false
}
