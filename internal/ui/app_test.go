package ui

import (
	"math/rand/v2"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passwordStrength/internal/generator"
	"passwordStrength/internal/tips"
)

func newTestUI(t *testing.T) *AppContext {
	t.Helper()
	a := test.NewTempApp(t)
	w := a.NewWindow("test")
	t.Cleanup(w.Close)

	return StartUI(w, Options{
		Generator: generator.New(rand.New(rand.NewPCG(1, 2)), generator.Classes{}),
		Tips:      tips.New(nil),
	})
}

func ruleTexts(ctx *AppContext) []string {
	var res []string
	for _, l := range ctx.ruleLabels {
		res = append(res, l.Text)
	}
	return res
}

func TestStartUIInitialState(t *testing.T) {
	ctx := newTestUI(t)

	require.Len(t, ctx.ruleLabels, 6)
	for _, text := range ruleTexts(ctx) {
		assert.Contains(t, text, "❌")
	}
	assert.Equal(t, float64(0), ctx.bar.Value)
	assert.Empty(t, ctx.tierText.Text)
	assert.True(t, ctx.plainEntry.Hidden)
	assert.False(t, ctx.maskedEntry.Hidden)
}

func TestCheckButton(t *testing.T) {
	ctx := newTestUI(t)

	test.Type(ctx.maskedEntry, "Aa1!aaaa")
	test.Tap(ctx.checkBtn)

	assert.Equal(t, float64(90), ctx.bar.Value)
	assert.Equal(t, "Надежный пароль", ctx.tierText.Text)
	assert.Equal(t, colorStrong, ctx.tierText.Color)
	assert.Equal(t, "❌ Минимум 14 символов", ctx.ruleLabels[1].Text)
	assert.Equal(t, "✅ Хотя бы один спецсимвол", ctx.ruleLabels[5].Text)
	assert.NotEmpty(t, ctx.estimateLabel.Text)
}

func TestCheckButtonWeak(t *testing.T) {
	ctx := newTestUI(t)

	ctx.maskedEntry.SetText("aaaaaaaa")
	test.Tap(ctx.checkBtn)

	assert.Equal(t, float64(30), ctx.bar.Value)
	assert.Equal(t, "Слабый пароль", ctx.tierText.Text)
	assert.Equal(t, colorWeak, ctx.tierText.Color)
}

func TestShowPasswordToggle(t *testing.T) {
	ctx := newTestUI(t)
	ctx.maskedEntry.SetText("secret")

	test.Tap(ctx.showCheck)
	assert.False(t, ctx.plainEntry.Hidden)
	assert.True(t, ctx.maskedEntry.Hidden)
	assert.Equal(t, "secret", ctx.plainEntry.Text)

	ctx.plainEntry.SetText("Secret123")
	test.Tap(ctx.showCheck)
	assert.True(t, ctx.plainEntry.Hidden)
	assert.Equal(t, "Secret123", ctx.maskedEntry.Text)
}

func TestSuggestButton(t *testing.T) {
	ctx := newTestUI(t)

	test.Tap(ctx.suggestBtn)

	pw := ctx.plainEntry.Text
	assert.Len(t, pw, generator.Length)
	assert.Equal(t, pw, ctx.maskedEntry.Text)
	assert.True(t, ctx.showCheck.Checked)
	assert.False(t, ctx.plainEntry.Hidden)
	assert.GreaterOrEqual(t, ctx.bar.Value, float64(90))
	assert.Equal(t, "Надежный пароль", ctx.tierText.Text)
	for i, text := range ruleTexts(ctx) {
		if i == 1 {
			assert.Equal(t, "❌ Минимум 14 символов", text)
			continue
		}
		assert.Contains(t, text, "✅")
	}
}

func TestTipNavigation(t *testing.T) {
	ctx := newTestUI(t)

	assert.Equal(t, tips.DefaultTips[0], ctx.tipLabel.Text)
	assert.Equal(t, "1/6", ctx.tipCounter.Text)
	assert.True(t, ctx.prevTipBtn.Disabled())
	assert.False(t, ctx.nextTipBtn.Disabled())

	for i := 0; i < 5; i++ {
		test.Tap(ctx.nextTipBtn)
	}
	assert.Equal(t, tips.DefaultTips[5], ctx.tipLabel.Text)
	assert.Equal(t, "6/6", ctx.tipCounter.Text)
	assert.True(t, ctx.nextTipBtn.Disabled())
	assert.False(t, ctx.prevTipBtn.Disabled())

	test.Tap(ctx.prevTipBtn)
	assert.Equal(t, "5/6", ctx.tipCounter.Text)
}

func TestCopyButton(t *testing.T) {
	ctx := newTestUI(t)
	ctx.maskedEntry.SetText("Copy-Me1")

	test.Tap(ctx.copyBtn)

	assert.Equal(t, "Copy-Me1", fyne.CurrentApp().Clipboard().Content())
}

func TestActionsMenu(t *testing.T) {
	ctx := newTestUI(t)

	menu := ctx.actionsMenu()
	require.Len(t, menu.Items, 3)

	menu.Items[1].Action()
	assert.Len(t, ctx.plainEntry.Text, generator.Length)
}

func TestRightClickContainer(t *testing.T) {
	clicked := 0
	c := NewRightClickContainer(widget.NewLabel("rules"), func(*desktop.MouseEvent) { clicked++ })

	c.MouseDown(&desktop.MouseEvent{Button: desktop.MouseButtonPrimary})
	c.MouseDown(&desktop.MouseEvent{Button: desktop.MouseButtonSecondary})

	assert.Equal(t, 1, clicked)
}
