package app

import (
	"fmt"
	"runtime/debug"
	"strings"

	"neonrun/hal"
)

// guard turns a panic inside step into a logged error so the host runner
// shuts down instead of crashing mid-frame.
func guard(log hal.Logger, step func() error) func() error {
	return func() (err error) {
		defer func() {
			v := recover()
			if v == nil {
				return
			}
			log.WriteLineString(fmt.Sprintf("neonrun: panic: %v", v))
			for _, line := range strings.Split(string(debug.Stack()), "\n") {
				if line == "" {
					continue
				}
				log.WriteLineString(line)
			}
			err = fmt.Errorf("app: panic: %v", v)
		}()
		return step()
	}
}
