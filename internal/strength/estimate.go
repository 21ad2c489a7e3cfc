package strength

import (
	zxcvbn "github.com/nbutton23/zxcvbn-go"
)

// maxEstimateRunes ограничивает вход zxcvbn: время его разбора растет
// сверхлинейно, а вызов идет прямо из обработчика кнопки
const maxEstimateRunes = 64

// Estimation — справочная оценка zxcvbn, на TotalScore не влияет
type Estimation struct {
	Score     int     // 0..4
	Entropy   float64 // бит
	CrackTime string
	Truncated bool // оценен только префикс из maxEstimateRunes символов
}

// Estimate возвращает оценку времени подбора пароля
func Estimate(password string) Estimation {
	if password == "" {
		return Estimation{}
	}
	truncated := false
	if r := []rune(password); len(r) > maxEstimateRunes {
		password = string(r[:maxEstimateRunes])
		truncated = true
	}
	m := zxcvbn.PasswordStrength(password, nil)
	return Estimation{
		Score:     m.Score,
		Entropy:   m.Entropy,
		CrackTime: m.CrackTimeDisplay,
		Truncated: truncated,
	}
}
