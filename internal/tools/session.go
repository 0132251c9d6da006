/*
 * session.go, part of miguitas.
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
	"path/filepath"
	"strings"

	chem "github.com/AmaiDonatsu/miguitas"
	"github.com/AmaiDonatsu/miguitas/snapshot"
	"github.com/mark3labs/mcp-go/mcp"
)

//Extension of the snapshot files written by save_session.
const Extension = ".mgs"

func getSessionStatsTool() mcp.Tool {
	return mcp.NewTool("get_session_stats",
		mcp.WithDescription("Count the atoms (free and bound) and molecules of the session."),
	)
}

func (T *Toolbox) GetSessionStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(T.reg.Stats())
}

func clearSessionTool() mcp.Tool {
	return mcp.NewTool("clear_session",
		mcp.WithDescription("Delete every atom and molecule of the session and restart the atom ids. This can't be undone."),
	)
}

type cleared struct {
	Cleared bool       `json:"cleared"`
	Stats   chem.Stats `json:"stats"`
}

func (T *Toolbox) ClearSession(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	T.reg.Clear()
	return jsonResult(cleared{Cleared: true, Stats: T.reg.Stats()})
}

type sessionFileInput struct {
	Name string `validate:"required,max=64"`
}

type sessionFile struct {
	File   string          `json:"file"`
	Header snapshot.Header `json:"header"`
	Stats  chem.Stats      `json:"stats"`
}

func sessionNameParam() mcp.ToolOption {
	return mcp.WithString("name", mcp.Required(), mcp.Description("Session name. The file is <name>"+Extension+" in the snapshot directory."))
}

func saveSessionTool() mcp.Tool {
	return mcp.NewTool("save_session",
		mcp.WithDescription("Save every atom, molecule and bond of the session to a compressed snapshot file."),
		sessionNameParam(),
	)
}

func (T *Toolbox) SaveSession(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, res := T.sessionPath(req)
	if res != nil {
		return res, nil
	}
	h, err := snapshot.SaveFile(path, T.reg)
	if err != nil {
		return engineError(err), nil
	}
	return jsonResult(sessionFile{File: path, Header: h, Stats: T.reg.Stats()})
}

func loadSessionTool() mcp.Tool {
	return mcp.NewTool("load_session",
		mcp.WithDescription("Replace the session with one saved by save_session. The file is checked with the same rules as live operations; if it breaks any, the session is left as it was."),
		sessionNameParam(),
	)
}

func (T *Toolbox) LoadSession(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, res := T.sessionPath(req)
	if res != nil {
		return res, nil
	}
	h, err := snapshot.LoadFile(path, T.reg)
	if err != nil {
		return engineError(err), nil
	}
	return jsonResult(sessionFile{File: path, Header: h, Stats: T.reg.Stats()})
}

//sessionPath validates the session name and returns its file. Names can't
//leave the snapshot directory.
func (T *Toolbox) sessionPath(req mcp.CallToolRequest) (string, *mcp.CallToolResult) {
	in := sessionFileInput{Name: strings.TrimSpace(req.GetString("name", ""))}
	if res := T.check(in); res != nil {
		return "", res
	}
	if in.Name != filepath.Base(in.Name) || strings.HasPrefix(in.Name, ".") {
		return "", mcp.NewToolResultError(fmt.Sprintf("invalid input: name %q must be a plain file name", in.Name))
	}
	name := in.Name
	if !strings.HasSuffix(name, Extension) {
		name += Extension
	}
	return filepath.Join(T.snapshotDir, name), nil
}
