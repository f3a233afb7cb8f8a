// Copyright 2025 go-highway Authors
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

package ptxglue

import (
	"fmt"
	"regexp"
	"strings"
)

// Capability is an NVIDIA compute capability in "sm_XY" form.
type Capability string

// Compute capabilities the harness is commonly run against.
const (
	CC30 Capability = "sm_30"
	CC35 Capability = "sm_35"
	CC50 Capability = "sm_50"
	CC52 Capability = "sm_52"
	CC60 Capability = "sm_60"
	CC61 Capability = "sm_61"
	CC70 Capability = "sm_70"
	CC75 Capability = "sm_75"
	CC80 Capability = "sm_80"
)

var capabilityRe = regexp.MustCompile(`^(?:sm_|compute_)?(\d+)(?:\.(\d))?$`)

// ParseCapability accepts "sm_35", "compute_35", "35" or "3.5".
func ParseCapability(s string) (Capability, error) {
	m := capabilityRe.FindStringSubmatch(strings.TrimSpace(strings.ToLower(s)))
	if m == nil {
		return "", fmt.Errorf("invalid compute capability %q", s)
	}
	return Capability("sm_" + m[1] + m[2]), nil
}

// String returns the capability in "sm_XY" form.
func (c Capability) String() string {
	return string(c)
}

// GencodeKind selects what the compiler is asked to emit.
type GencodeKind int

const (
	// GencodePTX emits PTX text for a virtual architecture.
	GencodePTX GencodeKind = iota
)

// String returns a human-readable name for the kind.
func (k GencodeKind) String() string {
	switch k {
	case GencodePTX:
		return "ptx"
	default:
		return "unknown"
	}
}

// Gencode is a code generation target: what to emit and for which device.
type Gencode struct {
	Kind       GencodeKind
	Capability Capability
}

// PTXGencode returns a Gencode emitting PTX for cc.
func PTXGencode(cc Capability) Gencode {
	return Gencode{Kind: GencodePTX, Capability: cc}
}

// Phase is the compilation phase to stop at.
type Phase int

const (
	// PhasePTX stops after PTX generation.
	PhasePTX Phase = iota
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePTX:
		return "ptx"
	default:
		return "unknown"
	}
}

// CompilerOutput is the single artifact produced by a compilation.
type CompilerOutput struct {
	Phase Phase
	Path  string
}

// GlueSpec describes a finished compilation to a Glue.
type GlueSpec struct {
	KernelDir string
	Source    string
	Gencode   Gencode
	Kernels   []string
	Output    CompilerOutput
}
