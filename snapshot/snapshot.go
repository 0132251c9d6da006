/*
 * snapshot.go, part of miguitas.
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

package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	chem "github.com/AmaiDonatsu/miguitas"
	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
)

//Version is the format version written in every snapshot.
const Version = 1

//Header identifies a snapshot.
type Header struct {
	ID      uuid.UUID `json:"id"`
	Created time.Time `json:"created"`
	Version int       `json:"version"`
}

//File is the content of a snapshot: a header and the session itself.
type File struct {
	Header  Header       `json:"header"`
	Session chem.Session `json:"session"`
}

//Write exports reg and writes it to w as zstd-compressed JSON.
//It returns the header written.
func Write(w io.Writer, reg *chem.Registry) (Header, error) {
	h := Header{ID: uuid.New(), Created: time.Now().UTC(), Version: Version}
	f := File{Header: h, Session: reg.Export()}
	zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return h, &Error{message: WriteFailed, deco: []string{"Write"}, cause: err}
	}
	if err := json.NewEncoder(zw).Encode(f); err != nil {
		zw.Close()
		return h, &Error{message: WriteFailed, deco: []string{"Write"}, cause: err}
	}
	if err := zw.Close(); err != nil {
		return h, &Error{message: WriteFailed, deco: []string{"Write"}, cause: err}
	}
	return h, nil
}

//Read decodes a snapshot from r without loading it anywhere.
func Read(r io.Reader) (File, error) {
	var f File
	zr, err := zstd.NewReader(r)
	if err != nil {
		return f, &Error{message: WrongFormat, deco: []string{"Read"}, cause: err}
	}
	defer zr.Close()
	if err := json.NewDecoder(zr).Decode(&f); err != nil {
		return f, &Error{message: WrongFormat, deco: []string{"Read"}, cause: err}
	}
	if f.Header.Version != Version {
		return f, &Error{message: fmt.Sprintf("%s: version %d, expected %d", UnsupportedVersion, f.Header.Version, Version), deco: []string{"Read"}}
	}
	return f, nil
}

//Load reads a snapshot from r and loads its session into reg, replacing
//what reg had. Engine errors (an overfilled atom, an atom in two molecules...)
//are returned as they come from chem.Registry.Load, so errors.Is works on them.
func Load(r io.Reader, reg *chem.Registry) (Header, error) {
	f, err := Read(r)
	if err != nil {
		return f.Header, errDecorate(err, "Load")
	}
	if err := reg.Load(f.Session); err != nil {
		return f.Header, errDecorate(err, "Load")
	}
	return f.Header, nil
}

//SaveFile writes a snapshot of reg to the file name, creating or truncating it.
func SaveFile(name string, reg *chem.Registry) (Header, error) {
	fout, err := os.Create(name)
	if err != nil {
		return Header{}, &Error{message: UnableToOpen, filename: name, deco: []string{"SaveFile"}, cause: err}
	}
	h, err := Write(fout, reg)
	if err != nil {
		fout.Close()
		return h, withFile(errDecorate(err, "SaveFile"), name)
	}
	if err := fout.Close(); err != nil {
		return h, &Error{message: WriteFailed, filename: name, deco: []string{"SaveFile"}, cause: err}
	}
	return h, nil
}

//LoadFile loads the snapshot in the file name into reg.
func LoadFile(name string, reg *chem.Registry) (Header, error) {
	fin, err := os.Open(name)
	if err != nil {
		return Header{}, &Error{message: UnableToOpen, filename: name, deco: []string{"LoadFile"}, cause: err}
	}
	defer fin.Close()
	h, err := Load(fin, reg)
	return h, withFile(errDecorate(err, "LoadFile"), name)
}
