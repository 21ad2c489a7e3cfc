package ui

import (
	"fmt"
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"passwordStrength/internal/generator"
	"passwordStrength/internal/models"
	"passwordStrength/internal/strength"
	"passwordStrength/internal/tips"
)

// Options — зависимости окна. Нулевые поля заменяются значениями по умолчанию.
type Options struct {
	Scorer    *strength.Scorer
	Generator *generator.Generator
	Tips      *tips.Rotator
	Logger    *zap.Logger
	Animate   bool
}

// AppContext хранит состояние окна в рамках одной сессии
type AppContext struct {
	Window    fyne.Window
	Scorer    *strength.Scorer
	Generator *generator.Generator
	Tips      *tips.Rotator
	Log       *zap.Logger
	Animate   bool

	// Маскированное и открытое поля синхронизируются, видно только одно
	maskedEntry *widget.Entry
	plainEntry  *widget.Entry
	showCheck   *widget.Check

	checkBtn   *widget.Button
	suggestBtn *widget.Button
	copyBtn    *widget.Button

	ruleLabels    []*widget.Label
	bar           *widget.ProgressBar
	tierText      *canvas.Text
	estimateLabel *widget.Label
	anim          *fyne.Animation

	tipLabel   *widget.Label
	tipCounter *widget.Label
	prevTipBtn *widget.Button
	nextTipBtn *widget.Button
}

// StartUI инициализирует интерфейс и устанавливает его в окно w
func StartUI(w fyne.Window, opts Options) *AppContext {
	ctx := &AppContext{
		Window:    w,
		Scorer:    opts.Scorer,
		Generator: opts.Generator,
		Tips:      opts.Tips,
		Log:       opts.Logger,
		Animate:   opts.Animate,
	}
	if ctx.Scorer == nil {
		ctx.Scorer = strength.NewScorer("")
	}
	if ctx.Generator == nil {
		ctx.Generator = generator.New(nil, generator.DefaultClasses)
	}
	if ctx.Tips == nil {
		ctx.Tips = tips.New(nil)
	}
	if ctx.Log == nil {
		ctx.Log = zap.NewNop()
	}

	w.SetContent(ctx.build())
	ctx.renderRules(ctx.Scorer.Evaluate(""))
	ctx.renderTip()
	return ctx
}

func (ctx *AppContext) build() fyne.CanvasObject {
	ctx.maskedEntry = widget.NewPasswordEntry()
	ctx.maskedEntry.SetPlaceHolder("Введите пароль")
	ctx.plainEntry = widget.NewEntry()
	ctx.plainEntry.SetPlaceHolder("Введите пароль")
	ctx.plainEntry.Hide()

	ctx.maskedEntry.OnChanged = func(s string) {
		if ctx.plainEntry.Text != s {
			ctx.plainEntry.SetText(s)
		}
	}
	ctx.plainEntry.OnChanged = func(s string) {
		if ctx.maskedEntry.Text != s {
			ctx.maskedEntry.SetText(s)
		}
	}

	ctx.showCheck = widget.NewCheck("Показать пароль", ctx.setPlaintext)

	ctx.checkBtn = widget.NewButton("Проверить", func() {
		ctx.evaluate(ctx.password())
	})
	ctx.suggestBtn = widget.NewButton("Предложить пароль", ctx.suggest)
	ctx.copyBtn = widget.NewButton("Копировать", func() {
		ctx.copyPassword()
	})

	rules := container.NewVBox()
	for range ctx.Scorer.Evaluate("").Results {
		l := widget.NewLabel("")
		ctx.ruleLabels = append(ctx.ruleLabels, l)
		rules.Add(l)
	}

	ctx.bar = widget.NewProgressBar()
	ctx.bar.Max = 100
	ctx.bar.TextFormatter = func() string {
		return fmt.Sprintf("%.0f / 100", ctx.bar.Value)
	}
	ctx.tierText = canvas.NewText("", color.Black)
	ctx.tierText.TextStyle = fyne.TextStyle{Bold: true}
	ctx.tierText.Alignment = fyne.TextAlignCenter
	ctx.estimateLabel = widget.NewLabel("")

	ctx.tipLabel = widget.NewLabel("")
	ctx.tipLabel.Wrapping = fyne.TextWrapWord
	ctx.tipCounter = widget.NewLabel("")
	ctx.prevTipBtn = widget.NewButton("◀", func() {
		ctx.Tips.Previous()
		ctx.renderTip()
	})
	ctx.nextTipBtn = widget.NewButton("▶", func() {
		ctx.Tips.Next()
		ctx.renderTip()
	})

	tipCard := widget.NewCard("Советы по безопасности", "",
		container.NewBorder(nil,
			container.NewHBox(ctx.prevTipBtn, ctx.tipCounter, ctx.nextTipBtn),
			nil, nil, ctx.tipLabel),
	)

	// Правый клик по списку правил открывает меню действий
	wrappedRules := NewRightClickContainer(rules, func(ev *desktop.MouseEvent) {
		widget.ShowPopUpMenuAtPosition(ctx.actionsMenu(), ctx.Window.Canvas(), ev.AbsolutePosition)
	})

	return container.NewVBox(
		container.NewStack(ctx.maskedEntry, ctx.plainEntry),
		container.NewHBox(ctx.showCheck, ctx.copyBtn),
		container.NewGridWithColumns(2, ctx.checkBtn, ctx.suggestBtn),
		widget.NewSeparator(),
		wrappedRules,
		ctx.bar,
		ctx.tierText,
		ctx.estimateLabel,
		widget.NewSeparator(),
		tipCard,
	)
}

func (ctx *AppContext) actionsMenu() *fyne.Menu {
	return fyne.NewMenu("Действия",
		fyne.NewMenuItem("Проверить", func() { ctx.evaluate(ctx.password()) }),
		fyne.NewMenuItem("Предложить пароль", ctx.suggest),
		fyne.NewMenuItem("Копировать", ctx.copyPassword),
	)
}

func (ctx *AppContext) copyPassword() {
	fyne.CurrentApp().Clipboard().SetContent(ctx.password())
}

// password возвращает текст видимого поля
func (ctx *AppContext) password() string {
	if ctx.showCheck.Checked {
		return ctx.plainEntry.Text
	}
	return ctx.maskedEntry.Text
}

func (ctx *AppContext) setPlaintext(on bool) {
	if on {
		ctx.plainEntry.SetText(ctx.maskedEntry.Text)
		ctx.maskedEntry.Hide()
		ctx.plainEntry.Show()
		return
	}
	ctx.maskedEntry.SetText(ctx.plainEntry.Text)
	ctx.plainEntry.Hide()
	ctx.maskedEntry.Show()
}

// suggest вставляет сгенерированный пароль, показывает его открыто и оценивает
func (ctx *AppContext) suggest() {
	pw := ctx.Generator.Generate()
	ctx.maskedEntry.SetText(pw)
	ctx.plainEntry.SetText(pw)
	ctx.showCheck.SetChecked(true)
	ctx.Log.Debug("password suggested")
	ctx.evaluate(pw)
}

func (ctx *AppContext) evaluate(password string) {
	report := ctx.Scorer.Evaluate(password)
	est := strength.Estimate(password)
	ctx.Log.Debug("password evaluated",
		zap.Int("score", report.TotalScore),
		zap.Stringer("tier", report.Tier),
		zap.Int("zxcvbn_score", est.Score),
	)
	ctx.renderReport(report, est)
	ctx.animateTo(report.TotalScore)
}

func (ctx *AppContext) renderReport(report models.StrengthReport, est strength.Estimation) {
	ctx.renderRules(report)
	ctx.tierText.Text = tierText(report.Tier)
	ctx.tierText.Color = tierColor(report.Tier)
	ctx.tierText.Refresh()
	ctx.estimateLabel.SetText(estimateLine(est))
}

func (ctx *AppContext) renderRules(report models.StrengthReport) {
	for i, res := range report.Results {
		ctx.ruleLabels[i].SetText(ruleLine(res))
	}
}

// animateTo плавно заполняет индикатор от 0 до score за одну секунду
func (ctx *AppContext) animateTo(score int) {
	if ctx.anim != nil {
		ctx.anim.Stop()
	}
	target := float64(score)
	if !ctx.Animate {
		ctx.bar.SetValue(target)
		return
	}
	ctx.anim = fyne.NewAnimation(time.Second, func(p float32) {
		ctx.bar.SetValue(target * float64(p))
	})
	ctx.anim.Start()
}

func (ctx *AppContext) renderTip() {
	ctx.tipLabel.SetText(ctx.Tips.Current())
	ctx.tipCounter.SetText(ctx.Tips.Counter())
	setEnabled(ctx.prevTipBtn, ctx.Tips.CanGoPrevious())
	setEnabled(ctx.nextTipBtn, ctx.Tips.CanGoNext())
	ctx.Log.Debug("tip shown", zap.Int("index", ctx.Tips.Index()))
}

func setEnabled(b *widget.Button, on bool) {
	if on {
		b.Enable()
	} else {
		b.Disable()
	}
}
