package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"airtimegraph/internal/graph"
)

// legendPanel lists every series of the current snapshot with a visibility
// checkbox. Legend-only series stay listed here while absent from the plot.
type legendPanel struct {
	box      *fyne.Container
	labels   []string
	checks   []*widget.Check
	onToggle func(index int, v graph.Visibility)
}

func newLegendPanel(onToggle func(index int, v graph.Visibility)) *legendPanel {
	return &legendPanel{
		box:      container.NewVBox(widget.NewLabel("Data rates")),
		onToggle: onToggle,
	}
}

func (l *legendPanel) Container() fyne.CanvasObject {
	return l.box
}

// Update syncs the panel to the snapshot series. Rows are rebuilt only when
// the series set changes; otherwise the checks are brought in line with the
// snapshot (the engine ignores echoes of values it already holds).
func (l *legendPanel) Update(series []graph.Series) {
	if l.sameSeries(series) {
		for i, s := range series {
			want := s.Visibility == graph.VisibilityVisible
			if l.checks[i].Checked != want {
				l.checks[i].SetChecked(want)
			}
		}

		return
	}

	l.labels = l.labels[:0]
	l.checks = l.checks[:0]
	l.box.RemoveAll()
	l.box.Add(widget.NewLabel("Data rates"))
	for i, s := range series {
		index := i
		check := widget.NewCheck(s.Label, func(checked bool) {
			v := graph.VisibilityLegendOnly
			if checked {
				v = graph.VisibilityVisible
			}
			l.onToggle(index, v)
		})
		check.SetChecked(s.Visibility == graph.VisibilityVisible)

		swatch := canvas.NewRectangle(s.Color)
		swatch.SetMinSize(fyne.NewSize(14, 4))

		l.labels = append(l.labels, s.Label)
		l.checks = append(l.checks, check)
		l.box.Add(container.NewHBox(check, swatch))
	}
	l.box.Refresh()
}

func (l *legendPanel) sameSeries(series []graph.Series) bool {
	if len(series) != len(l.labels) {
		return false
	}
	for i, s := range series {
		if s.Label != l.labels[i] {
			return false
		}
	}

	return true
}
