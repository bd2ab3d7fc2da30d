package landtrendr

import (
	"fmt"
	"os"
	"text/tabwriter"
)

// PrettyPrint prints the Trendline as a readable table to the terminal,
// one row per point.
func (tl Trendline) PrettyPrint() {
	w := new(tabwriter.Writer)
	w.Init(os.Stdout, 5, 0, 3, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "%v|\t%v|\t%v|\t%v|\t%v|\t%v|\t%v|\t\n", "index", "Date", "Day", "Raw", "Fit", "Spike", "Vertex")
	fmt.Fprintln(w, "-----|\t------------|\t--------|\t----------|\t----------|\t------|\t-------|\t")
	for i, p := range tl {
		fmt.Fprintf(w, "%d|\t%s|\t%d|\t%.4f|\t%.4f|\t%v|\t%v|\t\n", i, p.IndexDate, p.IndexDay, p.ValRaw, p.ValFit, p.Spike, p.Vertex)
	}
	fmt.Fprintln(w)
	w.Flush()
}

// PrintLabels prints a LabelResult as a readable table to the terminal,
// one row per matched rule.
func PrintLabels(labels LabelResult) {
	w := new(tabwriter.Writer)
	w.Init(os.Stdout, 5, 0, 3, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "%v|\t%v|\t%v|\t%v|\t%v|\t\n", "Rule", "Class", "Onset", "Magnitude", "Duration")
	fmt.Fprintln(w, "------------|\t------|\t------|\t----------|\t---------|\t")
	for name, m := range labels {
		fmt.Fprintf(w, "%s|\t%d|\t%d|\t%.4f|\t%d|\t\n", name, m.ClassVal, m.OnsetYear, m.Magnitude, m.Duration)
	}
	fmt.Fprintln(w)
	w.Flush()
}
