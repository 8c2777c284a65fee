/*
Package dynacl loads an OpenCL library at runtime and binds its entry points, so the host
binary never links against OpenCL at build time.

# License

Source codes are under Apache License Version 2.0.

# Underwater

 1. The library is opened with dlopen (purego, no cgo) or LoadLibrary on Windows.
 2. Every OpenCL 1.1 entry point is resolved by name in a fixed order, the first missing one stops binding.
 3. Resolved addresses are kept in a flat [Table] indexed by [Symbol], the process-wide table also
    registers them into the function variables of package [github.com/ZenLiuCN/dynacl/cl].
 4. [Shutdown] always nulls every entry point before the library is released.

# Notes

 1. Any Status but [Success] must be followed by [Shutdown] before the library is used again.
    After an [ImportError] the entry points resolved before the failing one stay bound.
 2. [Init] on a bound library returns [AlreadyInitialized], use [Reload] to swap libraries.
 3. Init, Shutdown and Reload are serialized. Calls through package cl are not: never call an
    entry point while another goroutine runs Init, Shutdown or Reload. Concurrent calls through
    already bound entry points are fine.
 4. Calling an entry point that is not bound panics.
 5. Build with tag cl_use_deprecated_opencl_1_0_apis to bind clSetCommandQueueProperty.

# Samples

	if st := dynacl.Init("libOpenCL.so.1"); st != dynacl.Success {
		log.Printf("init: %s: %v", st, dynacl.Default().LastError())
		dynacl.Shutdown()
		return
	}
	defer dynacl.Shutdown()
	var n cl.Uint
	cl.GetPlatformIDs(0, nil, &n)

See cmd/dynacl and tests.
*/
package dynacl
