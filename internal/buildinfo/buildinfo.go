// Package buildinfo reports build and platform metadata for a solve.Result
// envelope (spec §6's build_info map), mirroring what the reference
// implementation's build_info() collects, translated to Go equivalents.
package buildinfo

import (
	"runtime"
	"runtime/debug"
	"strconv"

	"github.com/google/uuid"
)

// Collect returns build/platform metadata plus a fresh run identifier
// (grounded in this corpus's use of github.com/google/uuid for
// correlating one run's log lines and result envelope — see
// leanlp-BTC-coinjoin's dependency on the same package).
func Collect() map[string]string {
	info := map[string]string{
		"go":       runtime.Version(),
		"platform": runtime.GOOS + "/" + runtime.GOARCH,
		"cpus":     strconv.Itoa(runtime.NumCPU()),
		"run_id":   uuid.NewString(),
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info["module"] = bi.Main.Path
		if bi.Main.Version != "" {
			info["module_version"] = bi.Main.Version
		}
	}
	return info
}
