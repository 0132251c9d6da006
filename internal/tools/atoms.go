/*
 * atoms.go, part of miguitas.
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

	chem "github.com/AmaiDonatsu/miguitas"
	"github.com/mark3labs/mcp-go/mcp"
)

type createAtomInput struct {
	Symbol       string `validate:"required,alpha,max=3"`
	AtomicNumber int    `validate:"gte=1,lte=118"`
	Name         string `validate:"max=64"`
}

func createAtomTool() mcp.Tool {
	return mcp.NewTool("create_atom",
		mcp.WithDescription("Create a free atom. Its bonding slots come from its electron configuration. Returns the new atom, whose id (like C_1) is used by every other tool."),
		mcp.WithString("symbol", mcp.Required(), mcp.Description("Chemical symbol, like C or Cl.")),
		mcp.WithNumber("atomic_number", mcp.Required(), mcp.Description("Atomic number Z, 1 to 118.")),
		mcp.WithString("name", mcp.Description("Display name. Defaults to the element name.")),
	)
}

func (T *Toolbox) CreateAtom(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	in := createAtomInput{
		Symbol:       req.GetString("symbol", ""),
		AtomicNumber: req.GetInt("atomic_number", 0),
		Name:         req.GetString("name", ""),
	}
	if res := T.check(in); res != nil {
		return res, nil
	}
	id, err := T.reg.CreateAtom(in.Symbol, in.AtomicNumber, in.Name)
	if err != nil {
		return engineError(err), nil
	}
	return T.atomSummary(id)
}

type atomIDInput struct {
	AtomID string `validate:"required,max=64"`
}

func getAtomInfoTool() mcp.Tool {
	return mcp.NewTool("get_atom_info",
		mcp.WithDescription("Show an atom: configuration, valence electrons, bonding slots and binding state."),
		mcp.WithString("atom_id", mcp.Required(), mcp.Description("Atom id, like C_1.")),
	)
}

func (T *Toolbox) GetAtomInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	in := atomIDInput{AtomID: req.GetString("atom_id", "")}
	if res := T.check(in); res != nil {
		return res, nil
	}
	return T.atomSummary(in.AtomID)
}

type listAtomsInput struct {
	StateFilter string `validate:"omitempty,oneof=FREE BOUND free bound Free Bound"`
}

type atomList struct {
	Count int                `json:"count"`
	Atoms []chem.AtomSummary `json:"atoms"`
}

func listAtomsTool() mcp.Tool {
	return mcp.NewTool("list_atoms",
		mcp.WithDescription("List the atoms of the session in creation order, optionally only the FREE or the BOUND ones."),
		mcp.WithString("state_filter", mcp.Description("FREE or BOUND. Empty lists every atom."), mcp.Enum("FREE", "BOUND")),
	)
}

func (T *Toolbox) ListAtoms(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	in := listAtomsInput{StateFilter: req.GetString("state_filter", "")}
	if res := T.check(in); res != nil {
		return res, nil
	}
	filter, err := chem.ParseStateFilter(in.StateFilter)
	if err != nil {
		return engineError(err), nil
	}
	atoms := T.reg.Atoms(filter)
	out := atomList{Count: len(atoms), Atoms: make([]chem.AtomSummary, 0, len(atoms))}
	for _, at := range atoms {
		out.Atoms = append(out.Atoms, at.Summary())
	}
	return jsonResult(out)
}

func releaseAtomTool() mcp.Tool {
	return mcp.NewTool("release_atom",
		mcp.WithDescription("Take an atom out of its molecule and make it FREE again. Only atoms without bonds can leave a molecule."),
		mcp.WithString("atom_id", mcp.Required(), mcp.Description("Atom id, like C_1.")),
	)
}

func (T *Toolbox) ReleaseAtom(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	in := atomIDInput{AtomID: req.GetString("atom_id", "")}
	if res := T.check(in); res != nil {
		return res, nil
	}
	if err := T.reg.ReleaseAtom(in.AtomID); err != nil {
		return engineError(err), nil
	}
	return T.atomSummary(in.AtomID)
}

func (T *Toolbox) atomSummary(id string) (*mcp.CallToolResult, error) {
	at, ok := T.reg.Atom(id)
	if !ok {
		return engineError(notFound("atom", id)), nil
	}
	return jsonResult(at.Summary())
}
