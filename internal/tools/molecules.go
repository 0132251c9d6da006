/*
 * molecules.go, part of miguitas.
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

package tools

import (
	"context"
	"fmt"

	chem "github.com/AmaiDonatsu/miguitas"
	"github.com/AmaiDonatsu/miguitas/chemgraph"
	"github.com/mark3labs/mcp-go/mcp"
)

//lookupError is a NotFound for the lookups the registry answers with a bool.
type lookupError struct {
	what, name string
}

func (e lookupError) Error() string { return fmt.Sprintf("%s %q does not exist", e.what, e.name) }

func (e lookupError) Unwrap() error { return chem.ErrNotFound }

func notFound(what, name string) error { return lookupError{what, name} }

//moleculeSummary looks the molecule up again after a mutation; a session
//cleared or loaded in between makes it NotFound.
func (T *Toolbox) moleculeSummary(name string) (*mcp.CallToolResult, error) {
	mol, ok := T.reg.Molecule(name)
	if !ok {
		return engineError(notFound("molecule", name)), nil
	}
	return jsonResult(mol.Summary())
}

type moleculeInput struct {
	MoleculeName string `validate:"required,max=64"`
}

func moleculeNameParam() mcp.ToolOption {
	return mcp.WithString("molecule_name", mcp.Required(), mcp.Description("Name of the molecule."))
}

func createMoleculeTool() mcp.Tool {
	return mcp.NewTool("create_molecule",
		mcp.WithDescription("Create an empty molecule. Names are unique in the session."),
		moleculeNameParam(),
		mcp.WithString("formula", mcp.Description("Explicit formula to report instead of the generated one.")),
	)
}

func (T *Toolbox) CreateMolecule(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	in := moleculeInput{MoleculeName: req.GetString("molecule_name", "")}
	if res := T.check(in); res != nil {
		return res, nil
	}
	var opts []chem.MoleculeOption
	if f := req.GetString("formula", ""); f != "" {
		opts = append(opts, chem.WithFormula(f))
	}
	mol, err := T.reg.CreateMolecule(in.MoleculeName, opts...)
	if err != nil {
		return engineError(err), nil
	}
	return jsonResult(mol.Summary())
}

type addAtomInput struct {
	MoleculeName string `validate:"required,max=64"`
	AtomID       string `validate:"required,max=64"`
}

func addAtomToMoleculeTool() mcp.Tool {
	return mcp.NewTool("add_atom_to_molecule",
		mcp.WithDescription("Put a FREE atom into a molecule, making it BOUND. An atom can only be in one molecule."),
		moleculeNameParam(),
		mcp.WithString("atom_id", mcp.Required(), mcp.Description("Atom id, like C_1.")),
	)
}

func (T *Toolbox) AddAtomToMolecule(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	in := addAtomInput{
		MoleculeName: req.GetString("molecule_name", ""),
		AtomID:       req.GetString("atom_id", ""),
	}
	if res := T.check(in); res != nil {
		return res, nil
	}
	if err := T.reg.AddAtomToMolecule(in.MoleculeName, in.AtomID); err != nil {
		return engineError(err), nil
	}
	return T.moleculeSummary(in.MoleculeName)
}

type connectInput struct {
	MoleculeName string `validate:"required,max=64"`
	AtomID1      string `validate:"required,max=64"`
	AtomID2      string `validate:"required,max=64"`
	BondType     string `validate:"required"`
}

type bondResult struct {
	Bond     string               `json:"bond"`
	Type     string               `json:"type"`
	Molecule chem.MoleculeSummary `json:"molecule"`
}

func connectAtomsTool() mcp.Tool {
	return mcp.NewTool("connect_atoms",
		mcp.WithDescription("Bond two atoms of a molecule with a SINGLE, DOUBLE or TRIPLE bond. Both atoms need as many free slots as the bond order; if either lacks room the bond is refused and nothing changes."),
		moleculeNameParam(),
		mcp.WithString("atom_id_1", mcp.Required(), mcp.Description("First atom id.")),
		mcp.WithString("atom_id_2", mcp.Required(), mcp.Description("Second atom id.")),
		mcp.WithString("bond_type", mcp.Description("SINGLE, DOUBLE or TRIPLE. Defaults to SINGLE."), mcp.Enum("SINGLE", "DOUBLE", "TRIPLE")),
	)
}

func (T *Toolbox) ConnectAtoms(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	in := connectInput{
		MoleculeName: req.GetString("molecule_name", ""),
		AtomID1:      req.GetString("atom_id_1", ""),
		AtomID2:      req.GetString("atom_id_2", ""),
		BondType:     req.GetString("bond_type", "SINGLE"),
	}
	if res := T.check(in); res != nil {
		return res, nil
	}
	t, err := chem.ParseBondType(in.BondType)
	if err != nil {
		return engineError(err), nil
	}
	bond, err := T.reg.Connect(in.MoleculeName, in.AtomID1, in.AtomID2, t)
	if err != nil {
		return engineError(err), nil
	}
	mol, ok := T.reg.Molecule(in.MoleculeName)
	if !ok {
		return engineError(notFound("molecule", in.MoleculeName)), nil
	}
	return jsonResult(bondResult{Bond: bond.Label(), Type: t.String(), Molecule: mol.Summary()})
}

type moleculeStatus struct {
	chem.MoleculeSummary
	Fragments [][]string `json:"fragments"`
	Connected bool       `json:"connected"`
	Rings     int        `json:"rings"`
	Mass      float64    `json:"molecular_mass,omitempty"`
}

func getMoleculeStatusTool() mcp.Tool {
	return mcp.NewTool("get_molecule_status",
		mcp.WithDescription("Show a molecule: formula, validity, remaining slots and bonds of every atom, connected fragments and ring count."),
		moleculeNameParam(),
	)
}

func (T *Toolbox) GetMoleculeStatus(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	in := moleculeInput{MoleculeName: req.GetString("molecule_name", "")}
	if res := T.check(in); res != nil {
		return res, nil
	}
	mol, ok := T.reg.Molecule(in.MoleculeName)
	if !ok {
		return engineError(notFound("molecule", in.MoleculeName)), nil
	}
	top := chemgraph.NewTopology(mol, nil)
	out := moleculeStatus{
		MoleculeSummary: mol.Summary(),
		Fragments:       top.Fragments(),
		Connected:       top.Connected(),
		Rings:           top.Rings(),
	}
	if mass, ok := mol.MolecularMass(); ok {
		out.Mass = mass
	}
	return jsonResult(out)
}

type unsatisfiedAtom struct {
	AtomID    string `json:"atom_id"`
	Symbol    string `json:"symbol"`
	Remaining int    `json:"remaining_slots"`
}

type validation struct {
	Name        string            `json:"name"`
	Formula     string            `json:"formula"`
	Valid       bool              `json:"valid"`
	Unsatisfied []unsatisfiedAtom `json:"unsatisfied,omitempty"`
}

func validateMoleculeTool() mcp.Tool {
	return mcp.NewTool("validate_molecule",
		mcp.WithDescription("Check whether every atom of a molecule has completed its octet (or duet), listing the atoms that still have slots."),
		moleculeNameParam(),
	)
}

func (T *Toolbox) ValidateMolecule(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	in := moleculeInput{MoleculeName: req.GetString("molecule_name", "")}
	if res := T.check(in); res != nil {
		return res, nil
	}
	mol, ok := T.reg.Molecule(in.MoleculeName)
	if !ok {
		return engineError(notFound("molecule", in.MoleculeName)), nil
	}
	out := validation{Name: mol.Name(), Formula: mol.Formula(), Valid: mol.Valid()}
	for _, at := range mol.Unsatisfied() {
		n, _ := mol.Node(at.ID())
		out.Unsatisfied = append(out.Unsatisfied, unsatisfiedAtom{AtomID: at.ID(), Symbol: at.Symbol(), Remaining: n.Remaining()})
	}
	return jsonResult(out)
}

type moleculeEntry struct {
	Name    string   `json:"name"`
	Formula string   `json:"formula"`
	Valid   bool     `json:"valid"`
	Atoms   []string `json:"atoms"`
}

type moleculeList struct {
	Count     int             `json:"count"`
	Molecules []moleculeEntry `json:"molecules"`
}

func listMoleculesTool() mcp.Tool {
	return mcp.NewTool("list_molecules",
		mcp.WithDescription("List the molecules of the session with their formula, validity and atoms."),
	)
}

func (T *Toolbox) ListMolecules(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	mols := T.reg.Molecules()
	out := moleculeList{Count: len(mols), Molecules: make([]moleculeEntry, 0, len(mols))}
	for _, m := range mols {
		out.Molecules = append(out.Molecules, moleculeEntry{Name: m.Name(), Formula: m.Formula(), Valid: m.Valid(), Atoms: m.AtomIDs()})
	}
	return jsonResult(out)
}
