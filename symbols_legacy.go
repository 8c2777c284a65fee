//go:build cl_use_deprecated_opencl_1_0_apis

package dynacl

// SetCommandQueueProperty is bound right after GetCommandQueueInfo.
const SetCommandQueueProperty = numCoreSymbols

const (
	numSymbols = numCoreSymbols + 1
	// Legacy reports whether the deprecated OpenCL 1.0 entry points are bound.
	Legacy = true
)

var (
	legacy      = map[Symbol]Symbol{GetCommandQueueInfo: SetCommandQueueProperty}
	legacyNames = map[Symbol]string{SetCommandQueueProperty: "clSetCommandQueueProperty"}
)
