package glowsphere

import (
	"fmt"
	"math"
	"strings"
)

// Control is a single named, editable field in a Panel folder.
type Control interface {
	// Name returns the control's label.
	Name() string
	// Nudge moves the control's value by the given number of steps, the way a slider or arrow key would.
	Nudge(steps float64)
	// String returns the control's current value formatted for display.
	String() string
}

//---------------//

// NumberControl binds a float64 field to a named control with declared bounds and step size.
type NumberControl struct {
	name     string
	target   *float64
	min, max float64
	step     float64
	onChange []func(value float64)
}

// Name returns the control's label.
func (number *NumberControl) Name() string {
	return number.name
}

// Min sets the control's lower bound, returning the control for chaining.
func (number *NumberControl) Min(min float64) *NumberControl {
	number.min = min
	return number
}

// Max sets the control's upper bound, returning the control for chaining.
func (number *NumberControl) Max(max float64) *NumberControl {
	number.max = max
	return number
}

// Step sets the control's step size, returning the control for chaining.
func (number *NumberControl) Step(step float64) *NumberControl {
	number.step = step
	return number
}

// Bounds returns the control's declared minimum, maximum, and step.
func (number *NumberControl) Bounds() (min, max, step float64) {
	return number.min, number.max, number.step
}

// OnChange registers a callback to run (synchronously) after every change to the value.
func (number *NumberControl) OnChange(fn func(value float64)) *NumberControl {
	number.onChange = append(number.onChange, fn)
	return number
}

// Value returns the bound field's current value.
func (number *NumberControl) Value() float64 {
	return *number.target
}

// SetValue writes the value given straight through to the bound field and then runs the change callbacks.
// The declared bounds aren't enforced here; they only shape Nudge().
func (number *NumberControl) SetValue(value float64) {
	*number.target = value
	for _, fn := range number.onChange {
		fn(value)
	}
}

// Nudge moves the value by steps * Step, snapping to the step grid and clamping to the declared bounds.
func (number *NumberControl) Nudge(steps float64) {

	step := number.step
	if step <= 0 {
		step = (number.max - number.min) / 100
	}
	if step <= 0 {
		step = 1
	}

	value := *number.target + steps*step
	value = math.Round(value/step) * step

	if number.max > number.min {
		value = math.Max(number.min, math.Min(number.max, value))
	}

	number.SetValue(value)

}

// String returns the value formatted to the precision implied by the step.
func (number *NumberControl) String() string {
	return fmt.Sprintf("%.*f", stepPrecision(number.step), *number.target)
}

func stepPrecision(step float64) int {
	if step <= 0 || step >= 1 {
		return 2
	}
	return int(math.Min(6, math.Ceil(-math.Log10(step)-1e-9)))
}

//---------------//

// ColorHueStep is how far a single Nudge() turns a ColorControl's hue, in degrees.
const ColorHueStep = 5.0

// ColorToneStep is how far a single Nudge() moves a ColorControl's saturation or value.
const ColorToneStep = 0.05

// ColorChannel is the HSV component a ColorControl's nudges edit.
type ColorChannel int

const (
	ColorHue ColorChannel = iota
	ColorSaturation
	ColorValue
)

func (channel ColorChannel) String() string {
	switch channel {
	case ColorSaturation:
		return "sat"
	case ColorValue:
		return "val"
	}
	return "hue"
}

// ColorControl binds a 24-bit 0xRRGGBB value to a named control. The value is a separate, editable representation; to affect a
// Light or Material, register an OnChange callback that converts and applies it.
type ColorControl struct {
	name     string
	target   *uint32
	onChange []func(hex uint32)

	// Channel is the component Nudge() edits; NextChannel() cycles it.
	Channel ColorChannel
}

// Name returns the control's label.
func (col *ColorControl) Name() string {
	return col.name
}

// OnChange registers a callback to run (synchronously) after every change to the color.
func (col *ColorControl) OnChange(fn func(hex uint32)) *ColorControl {
	col.onChange = append(col.onChange, fn)
	return col
}

// Value returns the stored color.
func (col *ColorControl) Value() uint32 {
	return *col.target
}

// SetValue stores the color given (masked to 24 bits) and then runs the change callbacks.
func (col *ColorControl) SetValue(hex uint32) {
	*col.target = hex & 0xffffff
	for _, fn := range col.onChange {
		fn(*col.target)
	}
}

// NextChannel switches Nudge() to the next HSV component, wrapping from value back to hue.
func (col *ColorControl) NextChannel() {
	col.Channel = (col.Channel + 1) % 3
}

// Nudge edits the selected channel: the hue turns by steps * ColorHueStep degrees, while saturation and value move by
// steps * ColorToneStep, clamped to 0..1.
func (col *ColorControl) Nudge(steps float64) {
	c := NewColorFromHex(*col.target)
	h, s, v := c.HSV()
	switch col.Channel {
	case ColorSaturation:
		s += steps * ColorToneStep
	case ColorValue:
		v += steps * ColorToneStep
	default:
		if s == 0 {
			// Grays have no hue to turn.
			return
		}
		h += steps * ColorHueStep
	}
	col.SetValue(NewColorFromHSV(h, s, v, 1).Hex())
}

// String returns the color as a #rrggbb string followed by the channel being edited.
func (col *ColorControl) String() string {
	return fmt.Sprintf("#%06x %s", *col.target, col.Channel)
}

//---------------//

// Folder is a named group of controls.
type Folder struct {
	Name     string
	Open     bool
	Controls []Control
}

// AddNumber binds a numeric field to a new control in the folder.
func (folder *Folder) AddNumber(name string, target *float64) *NumberControl {
	control := &NumberControl{name: name, target: target}
	folder.Controls = append(folder.Controls, control)
	return control
}

// AddColor binds a color value to a new control in the folder.
func (folder *Folder) AddColor(name string, target *uint32) *ColorControl {
	control := &ColorControl{name: name, target: target}
	folder.Controls = append(folder.Controls, control)
	return control
}

// Control returns the folder's control with the given name, or nil if there isn't one.
func (folder *Folder) Control(name string) Control {
	for _, c := range folder.Controls {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

//---------------//

// PanelRow is one visible line of a Panel: either a folder header (Control is nil) or a control within an open folder.
type PanelRow struct {
	Folder  *Folder
	Control Control
}

// Panel is a debug control panel: folders of named controls bound to live scene state, navigated one row at a time.
type Panel struct {
	Folders  []*Folder
	Hidden   bool
	selected int
}

// NewPanel creates a new, empty Panel.
func NewPanel() *Panel {
	return &Panel{}
}

// AddFolder adds a new, open folder to the Panel.
func (panel *Panel) AddFolder(name string) *Folder {
	folder := &Folder{Name: name, Open: true}
	panel.Folders = append(panel.Folders, folder)
	return folder
}

// Folder returns the Panel's folder with the given name, or nil if there isn't one.
func (panel *Panel) Folder(name string) *Folder {
	for _, f := range panel.Folders {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// Rows returns the Panel's visible rows: each folder header, followed by its controls if it is open.
func (panel *Panel) Rows() []PanelRow {
	rows := []PanelRow{}
	for _, folder := range panel.Folders {
		rows = append(rows, PanelRow{Folder: folder})
		if folder.Open {
			for _, control := range folder.Controls {
				rows = append(rows, PanelRow{Folder: folder, Control: control})
			}
		}
	}
	return rows
}

// Selected returns the index of the selected row.
func (panel *Panel) Selected() int {
	rows := len(panel.Rows())
	if rows == 0 {
		return 0
	}
	return min(panel.selected, rows-1)
}

// SelectedRow returns the selected row, and false if the Panel has no rows.
func (panel *Panel) SelectedRow() (PanelRow, bool) {
	rows := panel.Rows()
	if len(rows) == 0 {
		return PanelRow{}, false
	}
	return rows[panel.Selected()], true
}

// Move moves the selection by the number of rows given, wrapping around at either end.
func (panel *Panel) Move(delta int) {
	rows := len(panel.Rows())
	if rows == 0 {
		return
	}
	panel.selected = ((panel.Selected()+delta)%rows + rows) % rows
}

// Toggle opens or closes the selected row's folder, moving the selection onto the folder header.
func (panel *Panel) Toggle() {

	row, ok := panel.SelectedRow()
	if !ok {
		return
	}

	row.Folder.Open = !row.Folder.Open

	for i, r := range panel.Rows() {
		if r.Folder == row.Folder && r.Control == nil {
			panel.selected = i
			break
		}
	}

}

// Nudge nudges the selected control by the number of steps given. It does nothing if a folder header is selected.
func (panel *Panel) Nudge(steps float64) {
	if row, ok := panel.SelectedRow(); ok && row.Control != nil {
		row.Control.Nudge(steps)
	}
}

// NextChannel switches the selected color control to its next channel. It does nothing if another kind of row is selected.
func (panel *Panel) NextChannel() {
	if row, ok := panel.SelectedRow(); ok {
		if col, ok := row.Control.(*ColorControl); ok {
			col.NextChannel()
		}
	}
}

// String returns the Panel as text, one row per line, marking the selected row.
func (panel *Panel) String() string {

	builder := strings.Builder{}
	selected := panel.Selected()

	for i, row := range panel.Rows() {

		cursor := "  "
		if i == selected {
			cursor = "> "
		}

		if row.Control == nil {
			arrow := "+"
			if row.Folder.Open {
				arrow = "-"
			}
			fmt.Fprintf(&builder, "%s%s %s\n", cursor, arrow, row.Folder.Name)
		} else {
			fmt.Fprintf(&builder, "%s    %-10s %s\n", cursor, row.Control.Name(), row.Control.String())
		}

	}

	return builder.String()

}
