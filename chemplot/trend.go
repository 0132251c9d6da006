/*
 * trend.go, part of miguitas.
 *
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package chemplot

import (
	"fmt"
	"image/color"
	"io"

	chem "github.com/AmaiDonatsu/miguitas"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Trend returns, for atomic numbers from to to (both included), the
//valence electrons and the bonding slots of each element.
func Trend(from, to int) (valence, slots plotter.XYs, err error) {
	if from < 1 || to > chem.MaxAtomicNumber || from >= to {
		return nil, nil, fmt.Errorf("chemplot: range %d-%d must be increasing and within 1-%d: %w", from, to, chem.MaxAtomicNumber, chem.ErrInvalidOperand)
	}
	valence = make(plotter.XYs, 0, to-from+1)
	slots = make(plotter.XYs, 0, to-from+1)
	for z := from; z <= to; z++ {
		conf, err := chem.Configure(z)
		if err != nil {
			return nil, nil, err
		}
		valence = append(valence, plotter.XY{X: float64(z), Y: float64(conf.Valence)})
		slots = append(slots, plotter.XY{X: float64(z), Y: float64(conf.Slots)})
	}
	return valence, slots, nil
}

//SlotPlot builds a plot of the valence electrons and bonding slots against
//the atomic number, for the elements from to to.
func SlotPlot(from, to int, title string) (*plot.Plot, error) {
	valence, slots, err := Trend(from, to)
	if err != nil {
		return nil, err
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Z"
	p.Y.Label.Text = "Electrons"
	p.X.Min = float64(from)
	p.X.Max = float64(to)
	p.Y.Min = 0
	p.Y.Max = 8
	p.Add(plotter.NewGrid())
	vline, vpoints, err := plotter.NewLinePoints(valence)
	if err != nil {
		return nil, err
	}
	vline.Color = color.RGBA{R: 30, G: 90, B: 200, A: 255}
	vpoints.Color = vline.Color
	sline, spoints, err := plotter.NewLinePoints(slots)
	if err != nil {
		return nil, err
	}
	sline.Color = color.RGBA{R: 200, G: 40, B: 40, A: 255}
	spoints.Color = sline.Color
	p.Add(vline, vpoints, sline, spoints)
	p.Legend.Add("valence electrons", vline, vpoints)
	p.Legend.Add("bonding slots", sline, spoints)
	p.Legend.Top = true
	return p, nil
}

//SlotTrend saves the slot plot to filename. The format is taken from the
//extension (png, svg, pdf...).
func SlotTrend(from, to int, title, filename string) error {
	p, err := SlotPlot(from, to, title)
	if err != nil {
		return err
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}

//WriteSlotTrend writes the slot plot to w in the given format.
func WriteSlotTrend(w io.Writer, from, to int, title, format string) error {
	p, err := SlotPlot(from, to, title)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(6*vg.Inch, 4*vg.Inch, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
