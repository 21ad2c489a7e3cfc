package generator

import (
	"crypto/rand"
	"math/big"
)

// Length — длина сгенерированного пароля
const Length = 12

// Source — источник случайных чисел. IntN возвращает число из [0, n).
// *math/rand/v2.Rand удовлетворяет этому интерфейсу.
type Source interface {
	IntN(n int) int
}

// Classes — наборы символов, из которых собирается пароль
type Classes struct {
	Upper   string
	Lower   string
	Digits  string
	Special string
}

var DefaultClasses = Classes{
	Upper:   "ABCDEFGHIJKLMNOPQRSTUVWXYZ",
	Lower:   "abcdefghijklmnopqrstuvwxyz",
	Digits:  "0123456789",
	Special: "!@#$%^&*()",
}

// WithDefaults подставляет стандартный набор вместо пустого
func (c Classes) WithDefaults() Classes {
	if c.Upper == "" {
		c.Upper = DefaultClasses.Upper
	}
	if c.Lower == "" {
		c.Lower = DefaultClasses.Lower
	}
	if c.Digits == "" {
		c.Digits = DefaultClasses.Digits
	}
	if c.Special == "" {
		c.Special = DefaultClasses.Special
	}
	return c
}

type Generator struct {
	src     Source
	classes Classes
}

// New создает генератор. При src == nil используется crypto/rand.
func New(src Source, classes Classes) *Generator {
	if src == nil {
		src = cryptoSource{}
	}
	return &Generator{src: src, classes: classes.WithDefaults()}
}

// Generate создает пароль длины Length, в котором есть хотя бы по одному
// символу из каждого набора. Позиции обязательных символов перемешиваются.
func (g *Generator) Generate() string {
	c := g.classes
	res := make([]rune, 0, Length)

	for _, set := range []string{c.Upper, c.Lower, c.Digits, c.Special} {
		res = append(res, g.pick([]rune(set)))
	}

	all := []rune(c.Upper + c.Lower + c.Digits + c.Special)
	for len(res) < Length {
		res = append(res, g.pick(all))
	}

	// Фишер–Йетс
	for i := len(res) - 1; i > 0; i-- {
		j := g.src.IntN(i + 1)
		res[i], res[j] = res[j], res[i]
	}
	return string(res)
}

func (g *Generator) pick(set []rune) rune {
	return set[g.src.IntN(len(set))]
}

type cryptoSource struct{}

func (cryptoSource) IntN(n int) int {
	// Начиная с Go 1.24 crypto/rand не возвращает ошибок чтения
	idx, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(idx.Int64())
}
