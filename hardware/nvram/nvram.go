// This file is part of EuroPC.
//
// EuroPC is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// EuroPC is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with EuroPC.  If not, see <https://www.gnu.org/licenses/>.

// Package nvram stores the contents of battery backed memory between
// emulation sessions. Each chip with non-volatile memory has a named file
// and the contents of the file are the raw bytes of the chip's memory
// blocks, one after the other, with no header.
//
// Files are found in the "nvram" directory of the resources path (see the
// resources package) unless the Disk was created with NewDiskAt().
package nvram

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jetsetilly/europc/resources"
)

// the name of the directory in the resources path that contains nvram files
const nvramPath = "nvram"

// Disk loads and saves nvram files.
type Disk struct {
	// dir is empty if the resources path is to be used
	dir string
}

// NewDisk is the preferred method of initialisation for the Disk type. Files
// are kept in the resources path.
func NewDisk() *Disk {
	return &Disk{}
}

// NewDiskAt creates a Disk that keeps files in the named directory. The
// directory is created if necessary.
func NewDiskAt(dir string) *Disk {
	return &Disk{dir: dir}
}

// Path returns the full path of the named nvram file.
func (dsk *Disk) Path(name string) (string, error) {
	if dsk.dir == "" {
		return resources.JoinPath(nvramPath, name)
	}
	if err := os.MkdirAll(dsk.dir, 0700); err != nil {
		return "", fmt.Errorf("nvram: %w", err)
	}
	return filepath.Join(dsk.dir, name), nil
}

// Load fills each block with data from the named file, in the order they are
// supplied. If the file is shorter than the total size of the blocks then
// the bytes that are present are used and the remainder of the blocks is left
// unchanged. Data in the file beyond the end of the last block is ignored.
//
// An error is only returned if the file cannot be opened or read.
func (dsk *Disk) Load(name string, blocks ...[]uint8) error {
	pth, err := dsk.Path(name)
	if err != nil {
		return err
	}

	f, err := os.Open(pth)
	if err != nil {
		return fmt.Errorf("nvram: %w", err)
	}
	defer f.Close()

	var total int
	for _, b := range blocks {
		total += len(b)
	}

	data := make([]uint8, total)
	n, err := io.ReadFull(f, data)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("nvram: %w", err)
	}
	data = data[:n]

	for _, b := range blocks {
		c := copy(b, data)
		data = data[c:]
	}

	return nil
}

// Save writes each block to the named file, in the order they are supplied.
// Any existing file is replaced.
func (dsk *Disk) Save(name string, blocks ...[]uint8) error {
	pth, err := dsk.Path(name)
	if err != nil {
		return err
	}

	f, err := os.Create(pth)
	if err != nil {
		return fmt.Errorf("nvram: %w", err)
	}

	for _, b := range blocks {
		if _, err := f.Write(b); err != nil {
			f.Close()
			return fmt.Errorf("nvram: %w", err)
		}
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("nvram: %w", err)
	}

	return nil
}
