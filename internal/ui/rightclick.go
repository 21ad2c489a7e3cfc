package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// RightClickContainer — обертка, передающая клик правой кнопкой в OnRightClick
type RightClickContainer struct {
	widget.BaseWidget
	content      fyne.CanvasObject
	OnRightClick func(*desktop.MouseEvent)
}

func NewRightClickContainer(content fyne.CanvasObject, callback func(*desktop.MouseEvent)) *RightClickContainer {
	res := &RightClickContainer{
		content:      content,
		OnRightClick: callback,
	}
	res.ExtendBaseWidget(res)
	return res
}

func (c *RightClickContainer) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(c.content)
}

func (c *RightClickContainer) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button == desktop.MouseButtonSecondary && c.OnRightClick != nil {
		c.OnRightClick(ev)
	}
}

// MouseUp нужен только для реализации desktop.Mouseable
func (c *RightClickContainer) MouseUp(*desktop.MouseEvent) {}
