package amplicon

import (
	"bytes"
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// writeHist renders the inferred amplicon lengths as an SVG histogram with
// a normal curve, fitted to the observed mean and stddev, drawn over it.
// lengths must be sorted, which Result.Lengths guarantees.
func writeHist(filename string, lengths []float64, bins int) error {
	if len(lengths) < 2 {
		return fmt.Errorf("failed to draw a histogram from %d amplicon length(s)", len(lengths))
	}
	if bins < 1 {
		bins = 20
	}

	p := plot.New()
	p.Title.Text = "Amplicon Length Distribution"
	p.X.Label.Text = "Amplicon Length (bp)"
	p.Y.Label.Text = "Sequence Count"

	lo, hi := lengths[0], lengths[len(lengths)-1]
	binWidth := (hi - lo + 1) / float64(bins)
	counts := make([]float64, bins)
	for _, l := range lengths {
		bin := int((l - lo) / binWidth)
		if bin >= bins {
			bin = bins - 1
		}
		counts[bin]++
	}

	observed := make(plotter.XYs, bins)
	for i := 0; i < bins; i++ {
		observed[i].X = lo + binWidth*float64(i) + binWidth/2
		observed[i].Y = counts[i]
	}

	obsLine, err := plotter.NewLine(observed)
	if err != nil {
		return fmt.Errorf("failed to draw the observed lengths: %v", err)
	}
	obsLine.Color = color.RGBA{B: 255, A: 255}
	obsLine.Width = vg.Points(2)
	p.Add(obsLine)
	p.Legend.Add("Observed", obsLine)
	p.Legend.Top = true

	// the overlay needs spread, identical lengths have none
	mean := stat.Mean(lengths, nil)
	sd := stat.StdDev(lengths, nil)
	if sd > 0 {
		dist := distuv.Normal{Mu: mean, Sigma: sd}
		scale := float64(len(lengths)) * binWidth

		expected := make(plotter.XYs, bins)
		for i := 0; i < bins; i++ {
			x := lo + binWidth*float64(i) + binWidth/2
			expected[i].X = x
			expected[i].Y = dist.Prob(x) * scale
		}

		expLine, err := plotter.NewLine(expected)
		if err != nil {
			return fmt.Errorf("failed to draw the fitted normal: %v", err)
		}
		expLine.Color = color.RGBA{R: 255, G: 100, B: 100, A: 255}
		expLine.Width = vg.Points(2)
		expLine.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
		p.Add(expLine)
		p.Legend.Add("Fitted Normal", expLine)
	}

	var buf bytes.Buffer
	writer, err := p.WriterTo(10*vg.Inch, 4*vg.Inch, "svg")
	if err != nil {
		return fmt.Errorf("failed to render the histogram: %v", err)
	}
	if _, err = writer.WriteTo(&buf); err != nil {
		return fmt.Errorf("failed to render the histogram: %v", err)
	}

	if err = os.WriteFile(filename, buf.Bytes(), 0666); err != nil {
		return fmt.Errorf("failed to write the histogram: %v", err)
	}
	return nil
}
