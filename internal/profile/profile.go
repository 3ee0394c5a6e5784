// Font-Maker - draw glyphs by hand and export them as an OpenType font
// Copyright (C) 2026  The Font-Maker Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package profile writes CPU and memory profiles for the command line tool.
package profile

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
)

// Start begins CPU profiling, if cpuFile is not empty.  The returned
// function must be called before the program exits.  It stops the CPU
// profile and, if memFile is not empty, writes a heap allocation profile.
func Start(cpuFile, memFile string) (stop func(), err error) {
	var cpu *os.File
	if cpuFile != "" {
		cpu, err = os.Create(cpuFile)
		if err != nil {
			return nil, fmt.Errorf("cannot create CPU profile: %w", err)
		}
		err = pprof.StartCPUProfile(cpu)
		if err != nil {
			cpu.Close()
			return nil, fmt.Errorf("cannot start CPU profile: %w", err)
		}
	}

	stop = func() {
		if cpu != nil {
			pprof.StopCPUProfile()
			cpu.Close()
		}
		if memFile != "" {
			err := writeAllocs(memFile)
			if err != nil {
				fmt.Fprintln(os.Stderr, "memory profile:", err)
			}
		}
	}
	return stop, nil
}

func writeAllocs(fname string) error {
	p := pprof.Lookup("allocs")
	if p == nil {
		return fmt.Errorf("no allocation profile available")
	}
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	runtime.GC()
	err = p.WriteTo(fd, 0)
	if err2 := fd.Close(); err == nil {
		err = err2
	}
	return err
}
