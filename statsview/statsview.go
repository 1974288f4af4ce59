// This file is part of gochip8.
//
// gochip8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gochip8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gochip8.  If not, see <https://www.gnu.org/licenses/>.

//go:build statsview

package statsview

import (
	"fmt"
	"io"
	"sync"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/hsdiniz/gochip8/logger"
)

// Address is the default address of the stats server.
const Address = "localhost:12600"

const url = "/debug/statsview"

var (
	crit sync.Mutex
	mgr  *statsview.ViewManager
)

// Launch a new goroutine running the statsview on the address. An empty
// address means the default Address. Launching while a server is already
// running does nothing.
func Launch(output io.Writer, addr string) {
	crit.Lock()
	defer crit.Unlock()

	if mgr != nil {
		return
	}

	if addr == "" {
		addr = Address
	}

	viewer.SetConfiguration(viewer.WithAddr(addr))
	mgr = statsview.New()
	go mgr.Start()

	logger.Logf(logger.Allow, "statsview", "launched at %s%s", addr, url)
	fmt.Fprintf(output, "stats server available at %s%s\n", addr, url)
}

// Stop the server started by Launch.
func Stop() {
	crit.Lock()
	defer crit.Unlock()

	if mgr == nil {
		return
	}
	mgr.Stop()
	mgr = nil

	logger.Log(logger.Allow, "statsview", "stopped")
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}
