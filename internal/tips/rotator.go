package tips

import "fmt"

// DefaultTips — стандартный список советов по безопасности
var DefaultTips = []string{
	"🔒 Никому не сообщайте свой пароль",
	"🔑 Используйте отдельный пароль для каждого аккаунта",
	"🔄 Регулярно меняйте пароли",
	"⚠️ Не используйте личные данные в качестве пароля",
	"✔️ Включите двухфакторную аутентификацию",
	"📱 Храните пароли в надежном месте",
}

// Rotator хранит позицию в списке советов. Границы не зацикливаются.
type Rotator struct {
	tips  []string
	index int
}

// New создает ротатор над копией списка. Пустой список заменяется DefaultTips.
func New(list []string) *Rotator {
	if len(list) == 0 {
		list = DefaultTips
	}
	return &Rotator{tips: append([]string(nil), list...)}
}

func (r *Rotator) Next() int {
	if r.CanGoNext() {
		r.index++
	}
	return r.index
}

func (r *Rotator) Previous() int {
	if r.CanGoPrevious() {
		r.index--
	}
	return r.index
}

func (r *Rotator) CanGoNext() bool     { return r.index < len(r.tips)-1 }
func (r *Rotator) CanGoPrevious() bool { return r.index > 0 }

func (r *Rotator) Current() string { return r.tips[r.index] }
func (r *Rotator) Index() int      { return r.index }
func (r *Rotator) Len() int        { return len(r.tips) }

// Counter возвращает позицию в виде "1/6"
func (r *Rotator) Counter() string {
	return fmt.Sprintf("%d/%d", r.index+1, len(r.tips))
}
