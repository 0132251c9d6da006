/*
 * metrics.go, part of miguitas.
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

//Package metrics exports the activity of a chem.Registry to Prometheus.
package metrics

import (
	"fmt"
	"net/http"

	chem "github.com/AmaiDonatsu/miguitas"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//Collector bundles the Prometheus metrics of the engine. It implements
//chem.Observer, so it can be handed to chem.WithObserver.
type Collector struct {
	gatherer prometheus.Gatherer

	AtomsCreated *prometheus.CounterVec
	BondsFormed  *prometheus.CounterVec
	Rejections   *prometheus.CounterVec

	Atoms          *prometheus.GaugeVec
	Molecules      prometheus.Gauge
	ValidMolecules prometheus.Gauge
	Saturation     prometheus.Gauge
}

var _ chem.Observer = (*Collector)(nil)

//NewCollector registers the metrics against reg, defaulting to the global
//Prometheus registry when nil. Registering twice on the same registry
//reuses the metrics already there.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}
	C := &Collector{gatherer: gatherer}
	var err error
	C.AtomsCreated, err = registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "miguitas_atoms_created_total",
		Help: "Atoms created, by element symbol.",
	}, []string{"symbol"}), "miguitas_atoms_created_total")
	if err != nil {
		return nil, err
	}
	C.BondsFormed, err = registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "miguitas_bonds_formed_total",
		Help: "Bonds formed, by bond type.",
	}, []string{"type"}), "miguitas_bonds_formed_total")
	if err != nil {
		return nil, err
	}
	C.Rejections, err = registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "miguitas_rejections_total",
		Help: "Operations rejected by the engine, by operation and error kind.",
	}, []string{"op", "kind"}), "miguitas_rejections_total")
	if err != nil {
		return nil, err
	}
	atoms := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "miguitas_atoms",
		Help: "Atoms currently in the registry, by binding state.",
	}, []string{"state"})
	if err := reg.Register(atoms); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			return nil, err
		}
		existing, ok := are.ExistingCollector.(*prometheus.GaugeVec)
		if !ok {
			return nil, fmt.Errorf("collector miguitas_atoms already registered with incompatible type")
		}
		atoms = existing
	}
	C.Atoms = atoms
	if C.Molecules, err = registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "miguitas_molecules",
		Help: "Molecules currently in the registry.",
	}), "miguitas_molecules"); err != nil {
		return nil, err
	}
	if C.ValidMolecules, err = registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "miguitas_valid_molecules",
		Help: "Molecules whose atoms have all completed their duet or octet.",
	}), "miguitas_valid_molecules"); err != nil {
		return nil, err
	}
	if C.Saturation, err = registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "miguitas_mean_saturation",
		Help: "Mean fraction of bonding slots in use over bound atoms.",
	}), "miguitas_mean_saturation"); err != nil {
		return nil, err
	}
	return C, nil
}

func (C *Collector) AtomCreated(symbol string) {
	C.AtomsCreated.WithLabelValues(symbol).Inc()
}

func (C *Collector) BondFormed(t chem.BondType) {
	C.BondsFormed.WithLabelValues(t.String()).Inc()
}

func (C *Collector) Rejected(op string, kind chem.Kind) {
	C.Rejections.WithLabelValues(op, kind.String()).Inc()
}

func (C *Collector) StateChanged(s chem.Stats) {
	C.Atoms.WithLabelValues("free").Set(float64(s.FreeAtoms))
	C.Atoms.WithLabelValues("bound").Set(float64(s.BoundAtoms))
	C.Molecules.Set(float64(s.Molecules))
	C.ValidMolecules.Set(float64(s.ValidMolecules))
	C.Saturation.Set(s.MeanSaturation)
}

//Handler exposes a ready-to-use /metrics handler.
func (C *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(C.gatherer, promhttp.HandlerOpts{})
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}
