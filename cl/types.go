// Package cl is the OpenCL 1.1 entry point surface populated by dynacl.
//
// Every exported function variable is a slot: nil until [github.com/ZenLiuCN/dynacl.Init]
// returns Success, nil again after Shutdown. Calling a nil slot panics.
package cl

type (
	Int      = int32
	Uint     = uint32
	Ulong    = uint64
	Bool     = uint32
	Bitfield = uint64

	PlatformID   uintptr
	DeviceID     uintptr
	Context      uintptr
	CommandQueue uintptr
	Mem          uintptr
	Program      uintptr
	Kernel       uintptr
	Event        uintptr
	Sampler      uintptr

	// ContextProperties is cl_context_properties (intptr_t).
	ContextProperties = uintptr
)

// ImageFormat mirrors cl_image_format.
type ImageFormat struct {
	ChannelOrder    Uint
	ChannelDataType Uint
}

const (
	True  Bool = 1
	False Bool = 0

	Success Int = 0

	PlatformProfile    Uint = 0x0900
	PlatformVersion    Uint = 0x0901
	PlatformName       Uint = 0x0902
	PlatformVendor     Uint = 0x0903
	PlatformExtensions Uint = 0x0904

	DeviceTypeDefault     Bitfield = 1 << 0
	DeviceTypeCPU         Bitfield = 1 << 1
	DeviceTypeGPU         Bitfield = 1 << 2
	DeviceTypeAccelerator Bitfield = 1 << 3
	DeviceTypeAll         Bitfield = 0xFFFFFFFF
)
