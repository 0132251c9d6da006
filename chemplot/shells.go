/*
 * shells.go, part of miguitas.
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
	"math"
	"sort"

	chem "github.com/AmaiDonatsu/miguitas"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

//series is the set of elements sharing a valence shell and the block of
//their last filled orbital.
type series struct {
	shell, block int
	data         plotter.XYs
}

//shellSeries groups the elements from to to by valence shell and block,
//sorted by shell, then block. It also returns the highest shell seen.
func shellSeries(from, to int) ([]series, int, error) {
	if from < 1 || to > chem.MaxAtomicNumber || from >= to {
		return nil, 0, fmt.Errorf("chemplot: range %d-%d must be increasing and within 1-%d: %w", from, to, chem.MaxAtomicNumber, chem.ErrInvalidOperand)
	}
	index := make(map[[2]int]int)
	var ret []series
	maxshell := 1
	for z := from; z <= to; z++ {
		conf, err := chem.Configure(z)
		if err != nil {
			return nil, 0, err
		}
		key := [2]int{conf.Shell, conf.Orbitals[len(conf.Orbitals)-1].L}
		i, ok := index[key]
		if !ok {
			i = len(ret)
			index[key] = i
			ret = append(ret, series{shell: key[0], block: key[1]})
		}
		ret[i].data = append(ret[i].data, plotter.XY{X: float64(z), Y: float64(conf.Slots)})
		if conf.Shell > maxshell {
			maxshell = conf.Shell
		}
	}
	sort.SliceStable(ret, func(i, j int) bool {
		if ret[i].shell != ret[j].shell {
			return ret[i].shell < ret[j].shell
		}
		return ret[i].block < ret[j].block
	})
	return ret, maxshell, nil
}

//ShellPlot builds a scatter of the bonding slots against the atomic number,
//one color per valence shell and one glyph per block (s, p, d, f) of the
//last orbital filled.
func ShellPlot(from, to int, title string) (*plot.Plot, error) {
	all, maxshell, err := shellSeries(from, to)
	if err != nil {
		return nil, err
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Z"
	p.Y.Label.Text = "Bonding slots"
	p.Y.Min = 0
	p.Y.Max = 4
	p.Add(plotter.NewGrid())
	for _, ser := range all {
		s, err := plotter.NewScatter(ser.data)
		if err != nil {
			return nil, err
		}
		r, g, b := shellColor(ser.shell, maxshell)
		s.GlyphStyle.Color = color.RGBA{R: r, G: g, B: b, A: 255}
		s.GlyphStyle.Radius = vg.Points(3)
		s.GlyphStyle.Shape = blockGlyph(ser.block)
		p.Add(s)
		p.Legend.Add(fmt.Sprintf("shell %d (%s)", ser.shell, blockNames[ser.block]), s)
	}
	p.Legend.Top = true
	return p, nil
}

var blockNames = [...]string{"s", "p", "d", "f"}

//ShellScatter saves the shell plot to filename. The format is taken from
//the extension.
func ShellScatter(from, to int, title, filename string) error {
	p, err := ShellPlot(from, to, title)
	if err != nil {
		return err
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}

//blockGlyph returns the glyph for orbitals with angular number l.
func blockGlyph(l int) draw.GlyphDrawer {
	switch l {
	case 0:
		return draw.CircleGlyph{}
	case 1:
		return draw.SquareGlyph{}
	case 2:
		return draw.PyramidGlyph{}
	default:
		return draw.CrossGlyph{}
	}
}

//shellColor spreads steps keys over the hue circle, skipping the
//yellows that are hard to see on white.
func shellColor(key, steps int) (r, g, b uint8) {
	norm := 260.0 / float64(steps)
	hp := float64(key)*norm + 20.0
	h := hp + 20.0
	if hp < 55 {
		h = hp - 20.0
	}
	return hsv2rgb(h, 1, 1)
}

//hsv2rgb takes hue (0-360), s and v (0-1), returns r,g,b (0-255)
func hsv2rgb(h, s, v float64) (uint8, uint8, uint8) {
	full := 255.0 * v
	if s == 0 {
		return uint8(full), uint8(full), uint8(full)
	}
	h = math.Mod(h, 360) / 60
	i := math.Floor(h)
	f := h - i
	p := 1 - s
	q := 1 - s*f
	t := 1 - s*(1-f)
	var r, g, b float64
	switch int(i) {
	case 0:
		r, g, b = 1, t, p
	case 1:
		r, g, b = q, 1, p
	case 2:
		r, g, b = p, 1, t
	case 3:
		r, g, b = p, q, 1
	case 4:
		r, g, b = t, p, 1
	default:
		r, g, b = 1, p, q
	}
	return uint8(r * full), uint8(g * full), uint8(b * full)
}
