// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// buildVersion describes the binary as recorded by the go toolchain
type buildVersion struct {
	module   string
	revision string
	time     string
	modified bool
}

// readBuildVersion pulls module and vcs details from the embedded build info
func readBuildVersion() buildVersion {
	v := buildVersion{module: "dev"}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return v
	}
	if info.Main.Version != "" {
		v.module = info.Main.Version
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			v.revision = setting.Value
		case "vcs.time":
			v.time = setting.Value
		case "vcs.modified":
			v.modified = setting.Value == "true"
		}
	}
	return v
}

// formatVersion renders the output of --version
func formatVersion(v buildVersion) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🚀 iconshift %s\n", v.module)
	if v.revision != "" {
		suffix := ""
		if v.modified {
			suffix = " (modified)"
		}
		fmt.Fprintf(&b, "   revision %s%s\n", v.revision, suffix)
	}
	if v.time != "" {
		fmt.Fprintf(&b, "   built    %s\n", v.time)
	}
	fmt.Fprintf(&b, "   go       %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	return b.String()
}
