/*
 * trend_test.go, part of miguitas.
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
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	chem "github.com/AmaiDonatsu/miguitas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg/draw"
)

func TestTrend(t *testing.T) {
	valence, slots, err := Trend(1, 10)
	require.NoError(t, err)
	require.Len(t, valence, 10)
	require.Len(t, slots, 10)
	//carbon
	assert.Equal(t, 6.0, slots[5].X)
	assert.Equal(t, 4.0, slots[5].Y)
	assert.Equal(t, 4.0, valence[5].Y)
	//neon closes the second shell
	assert.Equal(t, 0.0, slots[9].Y)
	assert.Equal(t, 8.0, valence[9].Y)

	for _, r := range [][2]int{{0, 5}, {5, 5}, {10, 2}, {1, chem.MaxAtomicNumber + 1}} {
		_, _, err := Trend(r[0], r[1])
		assert.True(t, errors.Is(err, chem.ErrInvalidOperand), "%v", r)
	}
}

func TestSlotTrend(t *testing.T) {
	name := filepath.Join(t.TempDir(), "slots.png")
	require.NoError(t, SlotTrend(1, 36, "Bonding slots", name))
	info, err := os.Stat(name)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	var buf bytes.Buffer
	require.NoError(t, WriteSlotTrend(&buf, 1, 18, "First periods", "svg"))
	assert.Contains(t, buf.String(), "<svg")
}

func TestShellScatter(t *testing.T) {
	name := filepath.Join(t.TempDir(), "shells.svg")
	require.NoError(t, ShellScatter(1, 54, "Slots by shell", name))
	b, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Contains(t, string(b), "shell 5")

	_, err = ShellPlot(3, 3, "")
	assert.ErrorIs(t, err, chem.ErrInvalidOperand)
}

func TestShellSeriesSplitsBlocks(t *testing.T) {
	all, maxshell, err := shellSeries(19, 36)
	require.NoError(t, err)
	assert.Equal(t, 4, maxshell)
	require.Len(t, all, 3)
	zs := func(s series) []float64 {
		ret := make([]float64, 0, len(s.data))
		for _, xy := range s.data {
			ret = append(ret, xy.X)
		}
		return ret
	}
	assert.Equal(t, [2]int{4, 0}, [2]int{all[0].shell, all[0].block})
	assert.Equal(t, []float64{19, 20}, zs(all[0]))
	assert.Equal(t, [2]int{4, 1}, [2]int{all[1].shell, all[1].block})
	assert.Equal(t, []float64{31, 32, 33, 34, 35, 36}, zs(all[1]))
	//scandium to zinc end on 3d while their valence shell is 4
	assert.Equal(t, [2]int{4, 2}, [2]int{all[2].shell, all[2].block})
	assert.Equal(t, []float64{21, 22, 23, 24, 25, 26, 27, 28, 29, 30}, zs(all[2]))
	assert.Equal(t, draw.PyramidGlyph{}, blockGlyph(all[2].block))
}

func TestShellColor(t *testing.T) {
	r, g, b := hsv2rgb(0, 1, 1)
	assert.Equal(t, [3]uint8{255, 0, 0}, [3]uint8{r, g, b})
	r, g, b = hsv2rgb(240, 1, 1)
	assert.Equal(t, [3]uint8{0, 0, 255}, [3]uint8{r, g, b})
	r, g, b = hsv2rgb(90, 0, 0.5)
	assert.Equal(t, [3]uint8{127, 127, 127}, [3]uint8{r, g, b})
	seen := make(map[[3]uint8]bool)
	for k := 1; k <= 7; k++ {
		r, g, b := shellColor(k, 7)
		seen[[3]uint8{r, g, b}] = true
	}
	assert.Len(t, seen, 7)
}
