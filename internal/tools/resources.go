/*
 * resources.go, part of miguitas.
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

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type resourceEntry struct {
	resource mcp.Resource
	handle   server.ResourceHandlerFunc
}

func resources() []resourceEntry {
	return []resourceEntry{
		textResource("chemistry://help/workflow", "Chemistry workflow", "How to build a molecule step by step.", workflowHelp),
		textResource("chemistry://help/conservation", "Conservation of matter", "Why an atom can only be in one molecule.", conservationHelp),
	}
}

func textResource(uri, name, desc, text string) resourceEntry {
	return resourceEntry{
		resource: mcp.NewResource(uri, name,
			mcp.WithResourceDescription(desc),
			mcp.WithMIMEType("text/markdown"),
		),
		handle: func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			return []mcp.ResourceContents{
				mcp.TextResourceContents{URI: uri, MIMEType: "text/markdown", Text: text},
			}, nil
		},
	}
}

const workflowHelp = "# Building molecules\n\n" +
	"## 1. Create the atoms\n" +
	"Each atom gets a unique id.\n\n" +
	"```\n" +
	"create_atom(\"C\", 6)  -> C_1\n" +
	"create_atom(\"H\", 1)  -> H_1\n" +
	"create_atom(\"H\", 1)  -> H_2\n" +
	"create_atom(\"H\", 1)  -> H_3\n" +
	"create_atom(\"H\", 1)  -> H_4\n" +
	"```\n\n" +
	"## 2. Check them\n" +
	"`list_atoms()` shows every atom and its state: FREE atoms can be used, BOUND atoms are already in a molecule.\n\n" +
	"## 3. Create the molecule\n" +
	"```\n" +
	"create_molecule(\"methane\")\n" +
	"```\n\n" +
	"## 4. Add the atoms\n" +
	"```\n" +
	"add_atom_to_molecule(\"methane\", \"C_1\")\n" +
	"add_atom_to_molecule(\"methane\", \"H_1\")\n" +
	"...\n" +
	"```\n" +
	"An atom can only be in ONE molecule. Adding C_1 to another molecule fails.\n\n" +
	"## 5. Connect them\n" +
	"```\n" +
	"connect_atoms(\"methane\", \"C_1\", \"H_1\", \"SINGLE\")\n" +
	"...\n" +
	"```\n" +
	"A bond uses 1, 2 or 3 slots of each atom. If either atom lacks room the bond is refused and nothing changes.\n\n" +
	"## 6. Validate\n" +
	"```\n" +
	"validate_molecule(\"methane\")\n" +
	"```\n\n" +
	"## Common elements\n" +
	"| Element | Symbol | Z | Slots |\n" +
	"|---|---|---|---|\n" +
	"| Hydrogen | H | 1 | 1 |\n" +
	"| Carbon | C | 6 | 4 |\n" +
	"| Nitrogen | N | 7 | 3 |\n" +
	"| Oxygen | O | 8 | 2 |\n" +
	"| Sulfur | S | 16 | 2 |\n" +
	"| Chlorine | Cl | 17 | 1 |\n"

const conservationHelp = "# Conservation of matter\n\n" +
	"An atom exists in one place at a time.\n\n" +
	"## States\n" +
	"- **FREE**: the atom exists but belongs to no molecule.\n" +
	"- **BOUND**: the atom belongs to one molecule.\n\n" +
	"## Rules\n" +
	"1. `create_atom()` makes a FREE atom.\n" +
	"2. `add_atom_to_molecule()` makes it BOUND.\n" +
	"3. Adding a BOUND atom to another molecule is refused.\n" +
	"4. `release_atom()` frees an atom that has no bonds yet; bonded atoms stay where they are.\n\n" +
	"## Example\n" +
	"```\n" +
	"create_atom(\"C\", 6)                    # C_1, FREE\n" +
	"create_molecule(\"methane\")\n" +
	"add_atom_to_molecule(\"methane\", \"C_1\")  # C_1 is BOUND\n" +
	"create_molecule(\"ethane\")\n" +
	"add_atom_to_molecule(\"ethane\", \"C_1\")   # error: C_1 is in methane\n" +
	"```\n\n" +
	"Create a new atom for the second molecule instead:\n" +
	"```\n" +
	"create_atom(\"C\", 6)                    # C_2, FREE\n" +
	"add_atom_to_molecule(\"ethane\", \"C_2\")   # ok\n" +
	"```\n"
