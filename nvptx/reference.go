package nvptx

import _ "embed"

// SyncthreadsKernel calls __syncthreads() and nothing else.
const SyncthreadsKernel = "stdsimd_nvptx_syncthreads_kernel"

// referencePTX is the checked-in compiler output for kernels/lib.cu.
//
//go:embed testdata/reference.ptx
var referencePTX string

// ReferencePTX returns the expected PTX for kernels/lib.cu at sm_35.
func ReferencePTX() string {
	return referencePTX
}
