//go:build cl_use_deprecated_opencl_1_0_apis

package cl

// SetCommandQueueProperty is deprecated since OpenCL 1.1.
var SetCommandQueueProperty func(queue CommandQueue, properties Bitfield, enable Bool, oldProperties *Bitfield) Int

func init() {
	Slots["clSetCommandQueueProperty"] = &SetCommandQueueProperty
}
