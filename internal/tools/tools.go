/*
 * tools.go, part of miguitas.
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

//Package tools exposes a chem.Registry as MCP tools and resources.
//
//Every handler parses and validates its arguments, calls the engine and
//returns the structured result as JSON text. Engine rejections are tool
//errors (IsError set), never protocol errors, so the calling agent can read
//them and correct itself.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	chem "github.com/AmaiDonatsu/miguitas"
	"github.com/go-playground/validator/v10"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

//Toolbox holds what the handlers share.
type Toolbox struct {
	reg         *chem.Registry
	log         *zap.Logger
	snapshotDir string
	validate    *validator.Validate
}

//Option configures a Toolbox.
type Option func(*Toolbox)

func WithLogger(l *zap.Logger) Option {
	return func(T *Toolbox) {
		if l != nil {
			T.log = l
		}
	}
}

//WithSnapshotDir sets the directory where save_session and load_session
//keep their files. The default is the working directory.
func WithSnapshotDir(dir string) Option {
	return func(T *Toolbox) { T.snapshotDir = dir }
}

//New returns a Toolbox working on reg.
func New(reg *chem.Registry, opts ...Option) *Toolbox {
	T := &Toolbox{reg: reg, log: zap.NewNop(), snapshotDir: ".", validate: validator.New()}
	for _, opt := range opts {
		opt(T)
	}
	return T
}

type handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)

type entry struct {
	tool   mcp.Tool
	handle handler
}

func (T *Toolbox) entries() []entry {
	return []entry{
		{createAtomTool(), T.CreateAtom},
		{getAtomInfoTool(), T.GetAtomInfo},
		{listAtomsTool(), T.ListAtoms},
		{releaseAtomTool(), T.ReleaseAtom},
		{createMoleculeTool(), T.CreateMolecule},
		{addAtomToMoleculeTool(), T.AddAtomToMolecule},
		{connectAtomsTool(), T.ConnectAtoms},
		{getMoleculeStatusTool(), T.GetMoleculeStatus},
		{validateMoleculeTool(), T.ValidateMolecule},
		{listMoleculesTool(), T.ListMolecules},
		{getSessionStatsTool(), T.GetSessionStats},
		{clearSessionTool(), T.ClearSession},
		{saveSessionTool(), T.SaveSession},
		{loadSessionTool(), T.LoadSession},
	}
}

//Tools returns the definitions of every tool, in registration order.
func (T *Toolbox) Tools() []mcp.Tool {
	es := T.entries()
	ret := make([]mcp.Tool, 0, len(es))
	for _, e := range es {
		ret = append(ret, e.tool)
	}
	return ret
}

//Register adds every tool and resource to s.
func (T *Toolbox) Register(s *server.MCPServer) {
	for _, e := range T.entries() {
		s.AddTool(e.tool, server.ToolHandlerFunc(T.logged(e.tool.Name, e.handle)))
	}
	for _, r := range resources() {
		s.AddResource(r.resource, r.handle)
	}
}

//NewServer builds an MCP server with the whole toolbox registered.
func NewServer(name, version string, T *Toolbox) *server.MCPServer {
	s := server.NewMCPServer(
		name,
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)
	T.Register(s)
	return s
}

const instructions = `Build molecules atom by atom. Create atoms (each gets an id like C_1),
create a molecule, add atoms to it, then connect them with SINGLE, DOUBLE or
TRIPLE bonds until validate_molecule reports every atom satisfied. An atom can
only be in one molecule. Read chemistry://help/workflow for a walkthrough.`

func (T *Toolbox) logged(name string, h handler) handler {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		res, err := h(ctx, req)
		if err != nil {
			T.log.Error("tool failed", zap.String("tool", name), zap.Error(err))
		} else if res != nil && res.IsError {
			T.log.Debug("tool returned an error", zap.String("tool", name))
		} else {
			T.log.Debug("tool called", zap.String("tool", name))
		}
		return res, err
	}
}

//check validates an input struct and turns the failures into one message.
func (T *Toolbox) check(in interface{}) *mcp.CallToolResult {
	err := T.validate.Struct(in)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return mcp.NewToolResultError("invalid input: " + err.Error())
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, formatFieldError(e))
	}
	return mcp.NewToolResultError("invalid input: " + strings.Join(msgs, "; "))
}

func formatFieldError(e validator.FieldError) string {
	field := e.Field()
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "alpha":
		return fmt.Sprintf("%s must contain only letters", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

//engineError renders an engine rejection as a tool error, prefixed by its kind.
func engineError(err error) *mcp.CallToolResult {
	if kind, ok := chem.KindOf(err); ok {
		return mcp.NewToolResultError(fmt.Sprintf("%s: %s", kind.String(), err.Error()))
	}
	return mcp.NewToolResultError(err.Error())
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding result: %w", err)
	}
	return mcp.NewToolResultText(string(b)), nil
}
