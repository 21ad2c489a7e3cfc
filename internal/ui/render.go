package ui

import (
	"fmt"
	"image/color"

	"passwordStrength/internal/models"
	"passwordStrength/internal/strength"
)

var ruleTitles = map[models.RuleID]string{
	models.RuleMinLength8:  "Минимум 8 символов",
	models.RuleMinLength14: "Минимум 14 символов",
	models.RuleHasUpper:    "Хотя бы одна заглавная буква",
	models.RuleHasLower:    "Хотя бы одна строчная буква",
	models.RuleHasDigit:    "Хотя бы одна цифра",
	models.RuleHasSpecial:  "Хотя бы один спецсимвол",
}

var (
	colorWeak   = color.NRGBA{R: 0xe5, G: 0x39, B: 0x35, A: 0xff}
	colorMedium = color.NRGBA{R: 0xfb, G: 0x8c, B: 0x00, A: 0xff}
	colorStrong = color.NRGBA{R: 0x43, G: 0xa0, B: 0x47, A: 0xff}
)

// ruleLine — строка индикатора правила, например "✅ Минимум 8 символов"
func ruleLine(r models.RuleResult) string {
	mark := "❌"
	if r.Satisfied {
		mark = "✅"
	}
	title, ok := ruleTitles[r.RuleID]
	if !ok {
		title = string(r.RuleID)
	}
	return mark + " " + title
}

func tierText(t models.Tier) string {
	switch t {
	case models.TierStrong:
		return "Надежный пароль"
	case models.TierMedium:
		return "Пароль средней надежности"
	default:
		return "Слабый пароль"
	}
}

func tierColor(t models.Tier) color.Color {
	switch t {
	case models.TierStrong:
		return colorStrong
	case models.TierMedium:
		return colorMedium
	default:
		return colorWeak
	}
}

func estimateLine(e strength.Estimation) string {
	if e.CrackTime == "" {
		return ""
	}
	line := fmt.Sprintf("Время подбора: %s (энтропия %.1f бит)", e.CrackTime, e.Entropy)
	if e.Truncated {
		line += ", по первым символам"
	}
	return line
}
