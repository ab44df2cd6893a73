// Package gioui is the desktop window of the fretboard.
package gioui

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/rossnomann/fretboard"
	"github.com/rossnomann/fretboard/diagram"
	"github.com/rossnomann/fretboard/internal/logging"
	"github.com/rossnomann/fretboard/theme"
	"golang.org/x/exp/shiny/materialdesign/icons"
)

type (
	App struct {
		Tunings     *fretboard.TuningCollection
		Theme       *theme.Theme
		Flat        bool
		Alerts      *Alerts
		KeyMap      KeyMap
		Preferences Preferences

		PrevBtn widget.Clickable
		NextBtn widget.Clickable

		shaper   *text.Shaper
		material *material.Theme
		quitted  bool
	}

	C = layout.Context
	D = layout.Dimensions
)

const Title = "Fretboard"

const warningDuration = 10 * time.Second

// NewApp returns the window state over tunings. The theme and the notation
// come from the preferences; warnings are shown as alerts.
func NewApp(tunings *fretboard.TuningCollection, preferences Preferences, warnings ...error) *App {
	a := &App{
		Tunings:     tunings,
		Flat:        preferences.Flat,
		Alerts:      NewAlerts(),
		Preferences: preferences,
		shaper:      text.NewShaper(text.WithCollection(gofont.Collection())),
	}
	var warn error
	if a.KeyMap, warn = LoadKeyMap(); warn != nil {
		warnings = append(warnings, warn)
	}
	th, err := theme.Load(preferences.Theme)
	if err != nil {
		warnings = append(warnings, err)
		th = theme.MustLoad(theme.Default)
	}
	a.SetTheme(th)
	for _, w := range warnings {
		if w != nil {
			a.Alerts.Add(w.Error(), Warning, warningDuration)
		}
	}
	return a
}

// SetTheme repaints the window chrome with th.
func (a *App) SetTheme(th *theme.Theme) {
	a.Theme = th
	m := material.NewTheme()
	m.Shaper = a.shaper
	m.Palette = material.Palette{
		Bg:         th.Color(diagram.Base),
		Fg:         th.Color(diagram.Text),
		ContrastBg: th.Color(diagram.Mauve),
		ContrastFg: th.Color(diagram.Crust),
	}
	a.material = m
}

// Do performs action and reports whether it was known.
func (a *App) Do(action KeyAction) bool {
	switch action {
	case NextTuning:
		a.Tunings.SelectNext()
	case PrevTuning:
		a.Tunings.SelectPrev()
	case NextTheme:
		th, err := theme.Load(theme.Next(a.Theme.Name))
		if err != nil {
			a.Alerts.Add(err.Error(), Error, warningDuration)
			break
		}
		a.SetTheme(th)
		a.Alerts.Add(th.DisplayName(), Info, 2*time.Second)
	case ToggleNotation:
		a.Flat = !a.Flat
	case Quit:
		a.quitted = true
	default:
		return false
	}
	logging.Logger().Debug("action", "action", action, "tuning", a.Tunings.Index(), "theme", a.Theme.Name)
	return true
}

func (a *App) Quitted() bool { return a.quitted }

// Main runs the window until it is closed.
func (a *App) Main() error {
	w := a.newWindow()
	var ops op.Ops
	title := ""
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			if t := a.title(); t != title {
				title = t
				w.Option(app.Title(title))
			}
			gtx := app.NewContext(&ops, e)
			a.Layout(gtx)
			e.Frame(gtx.Ops)
			if a.quitted {
				w.Perform(system.ActionClose)
			}
		}
	}
}

func (a *App) newWindow() *app.Window {
	w := new(app.Window)
	w.Option(app.Title(a.title()), app.Size(a.Preferences.WindowSize()))
	if a.Preferences.Window.Maximized {
		w.Option(app.Maximized.Option())
	}
	return w
}

func (a *App) title() string {
	t, err := a.Tunings.Selected()
	if err != nil {
		return Title
	}
	return fmt.Sprintf("%s - %s", Title, t.Name())
}

func (a *App) Layout(gtx C) D {
	defer clip.Rect(image.Rectangle{Max: gtx.Constraints.Max}).Push(gtx.Ops).Pop()
	paint.Fill(gtx.Ops, a.Theme.Color(diagram.BackgroundSwatch))
	event.Op(gtx.Ops, a)

	for a.PrevBtn.Clicked(gtx) {
		a.Do(PrevTuning)
	}
	for a.NextBtn.Clicked(gtx) {
		a.Do(NextTuning)
	}
	for {
		ev, ok := gtx.Event(key.Filter{Name: "", Optional: key.ModAlt | key.ModCommand | key.ModShift | key.ModShortcut | key.ModSuper})
		if !ok {
			break
		}
		if e, ok := ev.(key.Event); ok {
			if action, ok := a.KeyMap.Action(e); ok {
				a.Do(action)
			}
		}
	}

	tuning, err := a.Tunings.Selected()
	if err != nil {
		a.Alerts.Add(err.Error(), Error, warningDuration)
	}
	dims := layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx C) D { return a.layoutHeader(gtx, tuning) }),
		layout.Flexed(1, FretboardWidget{Tuning: tuning, Palette: a.Theme, Shaper: a.shaper}.Layout),
	)
	AlertsWidget{Model: a.Alerts, Styles: a.alertStyles(), App: a}.Layout(gtx)
	return dims
}

func (a *App) layoutHeader(gtx C, tuning fretboard.Tuning) D {
	bg := a.Theme.Color(diagram.Mantle)
	return layout.Stack{}.Layout(gtx,
		layout.Expanded(func(gtx C) D {
			paint.FillShape(gtx.Ops, bg, clip.Rect{Max: gtx.Constraints.Min}.Op())
			return D{Size: gtx.Constraints.Min}
		}),
		layout.Stacked(func(gtx C) D {
			gtx.Constraints.Min.X = gtx.Constraints.Max.X
			return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
				layout.Rigid(a.iconButton(&a.PrevBtn, icons.NavigationChevronLeft, a.KeyMap.Hint("Previous tuning", " (%s)", PrevTuning)).Layout),
				layout.Rigid(a.Label(tuning.Name(), a.Theme.Color(diagram.Text)).Layout),
				layout.Rigid(layout.Spacer{Width: unit.Dp(12)}.Layout),
				layout.Rigid(a.Label(tuning.Format(a.Flat), a.Theme.Color(diagram.Subtext0)).Layout),
				layout.Flexed(1, layout.Spacer{}.Layout),
				layout.Rigid(a.Label(a.Theme.DisplayName(), a.Theme.Color(diagram.Overlay1)).Layout),
				layout.Rigid(a.iconButton(&a.NextBtn, icons.NavigationChevronRight, a.KeyMap.Hint("Next tuning", " (%s)", NextTuning)).Layout),
			)
		}),
	)
}

func (a *App) iconButton(btn *widget.Clickable, icon []byte, description string) material.IconButtonStyle {
	ret := material.IconButton(a.material, btn, widgetForIcon(icon), description)
	ret.Background = color.NRGBA{}
	ret.Color = a.Theme.Color(diagram.Mauve)
	ret.Inset = layout.UniformInset(unit.Dp(6))
	return ret
}

// Label returns a single line label in the chrome font.
func (a *App) Label(str string, c color.NRGBA) LabelStyle {
	return LabelStyle{
		Text:      str,
		Color:     c,
		Alignment: layout.W,
		Font:      labelDefaultFont,
		FontSize:  labelDefaultFontSize,
		Shaper:    a.shaper,
	}
}

func (a *App) alertStyles() map[AlertPriority]AlertStyle {
	bg := a.Theme.Color(diagram.Surface0)
	return map[AlertPriority]AlertStyle{
		Info:    {Bg: bg, Text: a.Theme.Color(diagram.Text)},
		Warning: {Bg: bg, Text: a.Theme.Color(diagram.Yellow)},
		Error:   {Bg: bg, Text: a.Theme.Color(diagram.Red)},
	}
}
