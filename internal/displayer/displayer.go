package displayer

import (
	"fmt"
	"math"
	"strconv"

	"fuelstat/internal/analysis"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	PageYearly        = "yearly"
	PageBest          = "best"
	PageWorst         = "worst"
	PageLeastEmission = "emissions"
)

var pageOrder = []string{PageYearly, PageBest, PageWorst, PageLeastEmission}

// Displayer shows a report as a set of tables in a terminal UI.
type Displayer struct {
	app    *tview.Application
	tabs   *tview.Pages
	report *analysis.Report

	statusText *tview.TextView
	helpText   *tview.TextView
	tables     map[string]*tview.Table
}

func New(report *analysis.Report) *Displayer {
	d := &Displayer{
		app:    tview.NewApplication(),
		tabs:   tview.NewPages(),
		report: report,
		tables: make(map[string]*tview.Table),
	}
	d.tables[PageYearly] = d.buildYearly()
	d.tables[PageBest] = buildMileage(report.Best)
	d.tables[PageWorst] = buildMileage(report.Worst)
	d.tables[PageLeastEmission] = d.buildEmissions()
	return d
}

// Table returns the table shown on a page, or nil for an unknown page.
func (d *Displayer) Table(page string) *tview.Table {
	return d.tables[page]
}

// Run blocks until the user quits.
func (d *Displayer) Run() error {
	title := tview.NewTextView().SetTextAlign(tview.AlignCenter).SetText("fuelstat - vehicle fuel economy by year")
	d.statusText = tview.NewTextView().SetTextAlign(tview.AlignCenter).SetDynamicColors(true)
	d.helpText = tview.NewTextView().SetTextAlign(tview.AlignCenter)

	headerFlex := tview.NewFlex().SetDirection(tview.FlexRow)
	headerFlex.AddItem(title, 1, 0, false)
	headerFlex.AddItem(d.statusText, 1, 0, false)
	headerFlex.AddItem(d.helpText, 1, 0, false)

	mainFlex := tview.NewFlex().SetDirection(tview.FlexRow)
	mainFlex.AddItem(headerFlex, 3, 0, false)

	for i, name := range pageOrder {
		d.tabs.AddPage(name, d.tables[name], true, i == 0)
	}
	mainFlex.AddItem(d.tabs, 0, 1, true)

	d.app.SetRoot(mainFlex, true)
	d.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Rune() {
		case 'q', 'Q':
			d.Shutdown()
			return nil
		case '1', '2', '3', '4':
			d.showPage(pageOrder[event.Rune()-'1'])
			return nil
		}
		return event
	})

	d.updateHeader(PageYearly)

	return d.app.Run()
}

func (d *Displayer) Shutdown() {
	d.app.Stop()
}

func (d *Displayer) showPage(name string) {
	d.tabs.SwitchToPage(name)
	d.updateHeader(name)
}

func (d *Displayer) updateHeader(page string) {
	d.helpText.SetText("[1 - Yearly] [2 - Best MPG] [3 - Worst MPG] [4 - Least emissions] [q - Quit]")
	d.statusText.SetText(fmt.Sprintf("[green]%d[white] records, [green]%d[white] plug-ins, [green]%d[white] years  |  page: [yellow]%s[white]",
		d.report.Records, d.report.PlugIns, len(d.report.Years), page))
}

func (d *Displayer) buildYearly() *tview.Table {
	tbl := newTable("Year", "L/100km", "CO2 g/km", "CO2 (scaled)", "Records", "Undefined")
	for i, y := range d.report.Yearly {
		setRow(tbl, i+1,
			strconv.Itoa(y.Year),
			formatFloat(y.LitersPer100km),
			formatFloat(y.GramsPerKm),
			formatFloat(y.ScaledGramsPerKm(d.report.EmissionsScale)),
			strconv.Itoa(y.Records),
			strconv.Itoa(y.Undefined),
		)
	}
	return tbl
}

func buildMileage(picks []analysis.Extremum) *tview.Table {
	tbl := newTable("Year", "Make", "Model", "MPG")
	for i, p := range picks {
		setRow(tbl, i+1, strconv.Itoa(p.Year), p.Make, p.Model, formatFloat(p.Comb08))
	}
	return tbl
}

func (d *Displayer) buildEmissions() *tview.Table {
	tbl := newTable("Make", "Years", "Share")
	for i, s := range d.report.Slices() {
		setRow(tbl, i+1, s.Make, strconv.Itoa(s.Count), fmt.Sprintf("%.1f%%", s.Percent))
	}
	return tbl
}

func newTable(headers ...string) *tview.Table {
	tbl := tview.NewTable().SetBorders(true).SetFixed(1, 0)
	for c, h := range headers {
		tbl.SetCell(0, c, tview.NewTableCell(h).SetSelectable(false).SetAlign(tview.AlignCenter))
	}
	return tbl
}

func setRow(tbl *tview.Table, row int, cells ...string) {
	for c, v := range cells {
		tbl.SetCell(row, c, tview.NewTableCell(v))
	}
}

func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
