package strength

import (
	"strings"
	"unicode/utf8"

	"passwordStrength/internal/models"
)

// DefaultSpecialChars — набор спецсимволов, за которые начисляются баллы
const DefaultSpecialChars = `!@#$%^&*(),.?"':{}|<>`

// Пороги категорий: нижняя граница включительно
const (
	mediumThreshold = 40
	strongThreshold = 70
)

type rule struct {
	id     models.RuleID
	weight int
	check  func(password string) bool
}

// Scorer оценивает пароль по фиксированному набору правил
type Scorer struct {
	rules []rule
}

var defaultScorer = NewScorer("")

// NewScorer создает оценщик с заданным набором спецсимволов.
// Пустая строка означает DefaultSpecialChars.
func NewScorer(special string) *Scorer {
	if special == "" {
		special = DefaultSpecialChars
	}
	return &Scorer{rules: []rule{
		{models.RuleMinLength8, 20, minLength(8)},
		{models.RuleMinLength14, 10, minLength(14)},
		{models.RuleHasUpper, 20, hasInRange('A', 'Z')},
		{models.RuleHasLower, 10, hasInRange('a', 'z')},
		{models.RuleHasDigit, 15, hasInRange('0', '9')},
		{models.RuleHasSpecial, 25, func(p string) bool { return strings.ContainsAny(p, special) }},
	}}
}

// Evaluate оценивает пароль оценщиком по умолчанию
func Evaluate(password string) models.StrengthReport {
	return defaultScorer.Evaluate(password)
}

// Evaluate применяет все правила независимо и суммирует веса.
// Функция определена для любой строки, включая пустую.
func (s *Scorer) Evaluate(password string) models.StrengthReport {
	report := models.StrengthReport{Results: make([]models.RuleResult, 0, len(s.rules))}
	for _, r := range s.rules {
		ok := r.check(password)
		report.Results = append(report.Results, models.RuleResult{
			RuleID:    r.id,
			Satisfied: ok,
			Weight:    r.weight,
		})
		if ok {
			report.TotalScore += r.weight
		}
	}
	report.Tier = TierFor(report.TotalScore)
	return report
}

// TierFor переводит числовую оценку в категорию
func TierFor(score int) models.Tier {
	switch {
	case score >= strongThreshold:
		return models.TierStrong
	case score >= mediumThreshold:
		return models.TierMedium
	default:
		return models.TierWeak
	}
}

func minLength(n int) func(string) bool {
	return func(p string) bool { return utf8.RuneCountInString(p) >= n }
}

func hasInRange(lo, hi rune) func(string) bool {
	return func(p string) bool {
		return strings.ContainsFunc(p, func(r rune) bool { return r >= lo && r <= hi })
	}
}
