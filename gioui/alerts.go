package gioui

import (
	"image"
	"image/color"
	"slices"
	"time"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
)

type (
	AlertPriority int

	Alert struct {
		Message  string
		Priority AlertPriority
		expires  time.Time
	}

	// Alerts is the list of messages shown at the bottom of the window until
	// they expire.
	Alerts struct {
		alerts []Alert
		now    func() time.Time
	}

	AlertStyle struct {
		Bg   color.NRGBA
		Text color.NRGBA
	}

	AlertsWidget struct {
		Model  *Alerts
		Styles map[AlertPriority]AlertStyle
		App    *App
	}
)

const (
	Info AlertPriority = iota
	Warning
	Error
)

func NewAlerts() *Alerts {
	return &Alerts{now: time.Now}
}

// Add shows message for duration. A message already shown is only renewed.
func (a *Alerts) Add(message string, priority AlertPriority, duration time.Duration) {
	expires := a.now().Add(duration)
	if i := slices.IndexFunc(a.alerts, func(al Alert) bool { return al.Message == message }); i >= 0 {
		a.alerts[i].Priority = max(a.alerts[i].Priority, priority)
		a.alerts[i].expires = expires
		return
	}
	a.alerts = append(a.alerts, Alert{Message: message, Priority: priority, expires: expires})
}

// Update drops expired alerts. It returns the time the next alert expires
// and whether there is one.
func (a *Alerts) Update() (time.Time, bool) {
	now := a.now()
	a.alerts = slices.DeleteFunc(a.alerts, func(al Alert) bool { return !now.Before(al.expires) })
	var next time.Time
	for _, al := range a.alerts {
		if next.IsZero() || al.expires.Before(next) {
			next = al.expires
		}
	}
	return next, len(a.alerts) > 0
}

// Iterate yields the alerts, highest priority first.
func (a *Alerts) Iterate(yield func(Alert) bool) {
	sorted := slices.Clone(a.alerts)
	slices.SortStableFunc(sorted, func(x, y Alert) int { return int(y.Priority) - int(x.Priority) })
	for _, al := range sorted {
		if !yield(al) {
			return
		}
	}
}

var alertMargin = layout.UniformInset(unit.Dp(6))
var alertInset = layout.UniformInset(unit.Dp(6))

func (w AlertsWidget) Layout(gtx C) D {
	if next, ok := w.Model.Update(); ok {
		gtx.Execute(op.InvalidateCmd{At: next})
	}
	y := gtx.Constraints.Max.Y
	for alert := range w.Model.Iterate {
		style := w.Styles[alert.Priority]
		macro := op.Record(gtx.Ops)
		dims := alertMargin.Layout(gtx, func(gtx C) D {
			gtx.Constraints.Min.X = gtx.Constraints.Max.X
			return layout.Stack{Alignment: layout.W}.Layout(gtx,
				layout.Expanded(func(gtx C) D {
					paint.FillShape(gtx.Ops, style.Bg, clip.Rect{Max: gtx.Constraints.Min}.Op())
					return D{Size: gtx.Constraints.Min}
				}),
				layout.Stacked(func(gtx C) D {
					return alertInset.Layout(gtx, w.App.Label(alert.Message, style.Text).Layout)
				}),
			)
		})
		call := macro.Stop()
		y -= dims.Size.Y
		stack := op.Offset(image.Pt(0, y)).Push(gtx.Ops)
		call.Add(gtx.Ops)
		stack.Pop()
	}
	return D{}
}
