//go:build !cl_use_deprecated_opencl_1_0_apis

package dynacl

const (
	numSymbols = numCoreSymbols
	Legacy     = false
)

var (
	legacy      map[Symbol]Symbol
	legacyNames map[Symbol]string
)
