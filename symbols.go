package dynacl

import "fmt"

// Symbol indexes one OpenCL entry point in the binding order.
type Symbol int

const (
	GetPlatformIDs Symbol = iota
	GetPlatformInfo
	GetDeviceIDs
	GetDeviceInfo
	CreateContext
	CreateContextFromType
	RetainContext
	ReleaseContext
	GetContextInfo
	CreateCommandQueue
	RetainCommandQueue
	ReleaseCommandQueue
	GetCommandQueueInfo
	CreateBuffer
	CreateSubBuffer
	CreateImage2D
	CreateImage3D
	RetainMemObject
	ReleaseMemObject
	GetSupportedImageFormats
	GetMemObjectInfo
	GetImageInfo
	SetMemObjectDestructorCallback
	CreateSampler
	RetainSampler
	ReleaseSampler
	GetSamplerInfo
	CreateProgramWithSource
	CreateProgramWithBinary
	RetainProgram
	ReleaseProgram
	BuildProgram
	UnloadCompiler
	GetProgramInfo
	GetProgramBuildInfo
	CreateKernel
	CreateKernelsInProgram
	RetainKernel
	ReleaseKernel
	SetKernelArg
	GetKernelInfo
	GetKernelWorkGroupInfo
	WaitForEvents
	GetEventInfo
	CreateUserEvent
	RetainEvent
	ReleaseEvent
	SetUserEventStatus
	SetEventCallback
	GetEventProfilingInfo
	Flush
	Finish
	EnqueueReadBuffer
	EnqueueReadBufferRect
	EnqueueWriteBuffer
	EnqueueWriteBufferRect
	EnqueueCopyBuffer
	EnqueueCopyBufferRect
	EnqueueReadImage
	EnqueueWriteImage
	EnqueueCopyImage
	EnqueueCopyImageToBuffer
	EnqueueCopyBufferToImage
	EnqueueMapBuffer
	EnqueueMapImage
	EnqueueUnmapMemObject
	EnqueueNDRangeKernel
	EnqueueTask
	EnqueueNativeKernel
	EnqueueMarker
	EnqueueWaitForEvents
	EnqueueBarrier
	GetExtensionFunctionAddress
	numCoreSymbols
)

// NoSymbol is returned where no symbol applies.
const NoSymbol Symbol = -1

var coreNames = [numCoreSymbols]string{
	GetPlatformIDs:                 "clGetPlatformIDs",
	GetPlatformInfo:                "clGetPlatformInfo",
	GetDeviceIDs:                   "clGetDeviceIDs",
	GetDeviceInfo:                  "clGetDeviceInfo",
	CreateContext:                  "clCreateContext",
	CreateContextFromType:          "clCreateContextFromType",
	RetainContext:                  "clRetainContext",
	ReleaseContext:                 "clReleaseContext",
	GetContextInfo:                 "clGetContextInfo",
	CreateCommandQueue:             "clCreateCommandQueue",
	RetainCommandQueue:             "clRetainCommandQueue",
	ReleaseCommandQueue:            "clReleaseCommandQueue",
	GetCommandQueueInfo:            "clGetCommandQueueInfo",
	CreateBuffer:                   "clCreateBuffer",
	CreateSubBuffer:                "clCreateSubBuffer",
	CreateImage2D:                  "clCreateImage2D",
	CreateImage3D:                  "clCreateImage3D",
	RetainMemObject:                "clRetainMemObject",
	ReleaseMemObject:               "clReleaseMemObject",
	GetSupportedImageFormats:       "clGetSupportedImageFormats",
	GetMemObjectInfo:               "clGetMemObjectInfo",
	GetImageInfo:                   "clGetImageInfo",
	SetMemObjectDestructorCallback: "clSetMemObjectDestructorCallback",
	CreateSampler:                  "clCreateSampler",
	RetainSampler:                  "clRetainSampler",
	ReleaseSampler:                 "clReleaseSampler",
	GetSamplerInfo:                 "clGetSamplerInfo",
	CreateProgramWithSource:        "clCreateProgramWithSource",
	CreateProgramWithBinary:        "clCreateProgramWithBinary",
	RetainProgram:                  "clRetainProgram",
	ReleaseProgram:                 "clReleaseProgram",
	BuildProgram:                   "clBuildProgram",
	UnloadCompiler:                 "clUnloadCompiler",
	GetProgramInfo:                 "clGetProgramInfo",
	GetProgramBuildInfo:            "clGetProgramBuildInfo",
	CreateKernel:                   "clCreateKernel",
	CreateKernelsInProgram:         "clCreateKernelsInProgram",
	RetainKernel:                   "clRetainKernel",
	ReleaseKernel:                  "clReleaseKernel",
	SetKernelArg:                   "clSetKernelArg",
	GetKernelInfo:                  "clGetKernelInfo",
	GetKernelWorkGroupInfo:         "clGetKernelWorkGroupInfo",
	WaitForEvents:                  "clWaitForEvents",
	GetEventInfo:                   "clGetEventInfo",
	CreateUserEvent:                "clCreateUserEvent",
	RetainEvent:                    "clRetainEvent",
	ReleaseEvent:                   "clReleaseEvent",
	SetUserEventStatus:             "clSetUserEventStatus",
	SetEventCallback:               "clSetEventCallback",
	GetEventProfilingInfo:          "clGetEventProfilingInfo",
	Flush:                          "clFlush",
	Finish:                         "clFinish",
	EnqueueReadBuffer:              "clEnqueueReadBuffer",
	EnqueueReadBufferRect:          "clEnqueueReadBufferRect",
	EnqueueWriteBuffer:             "clEnqueueWriteBuffer",
	EnqueueWriteBufferRect:         "clEnqueueWriteBufferRect",
	EnqueueCopyBuffer:              "clEnqueueCopyBuffer",
	EnqueueCopyBufferRect:          "clEnqueueCopyBufferRect",
	EnqueueReadImage:               "clEnqueueReadImage",
	EnqueueWriteImage:              "clEnqueueWriteImage",
	EnqueueCopyImage:               "clEnqueueCopyImage",
	EnqueueCopyImageToBuffer:       "clEnqueueCopyImageToBuffer",
	EnqueueCopyBufferToImage:       "clEnqueueCopyBufferToImage",
	EnqueueMapBuffer:               "clEnqueueMapBuffer",
	EnqueueMapImage:                "clEnqueueMapImage",
	EnqueueUnmapMemObject:          "clEnqueueUnmapMemObject",
	EnqueueNDRangeKernel:           "clEnqueueNDRangeKernel",
	EnqueueTask:                    "clEnqueueTask",
	EnqueueNativeKernel:            "clEnqueueNativeKernel",
	EnqueueMarker:                  "clEnqueueMarker",
	EnqueueWaitForEvents:           "clEnqueueWaitForEvents",
	EnqueueBarrier:                 "clEnqueueBarrier",
	GetExtensionFunctionAddress:    "clGetExtensionFunctionAddress",
}

var (
	names  = nameTable()
	order  = bindOrder()
	byName = nameIndex()
)

func nameTable() (v [numSymbols]string) {
	copy(v[:], coreNames[:])
	for s, n := range legacyNames {
		v[s] = n
	}
	return
}

func bindOrder() []Symbol {
	v := make([]Symbol, 0, numSymbols)
	for s := Symbol(0); s < numCoreSymbols; s++ {
		v = append(v, s)
		if x, ok := legacy[s]; ok {
			v = append(v, x)
		}
	}
	return v
}

func nameIndex() map[string]Symbol {
	v := make(map[string]Symbol, numSymbols)
	for _, s := range order {
		v[names[s]] = s
	}
	return v
}

// Name is the exported C name of the entry point.
func (s Symbol) Name() string {
	if s < 0 || s >= numSymbols {
		return fmt.Sprintf("Symbol(%d)", int(s))
	}
	return names[s]
}

func (s Symbol) String() string {
	return s.Name()
}

// Symbols returns every symbol in binding order.
func Symbols() []Symbol {
	return append([]Symbol(nil), order...)
}

// Lookup finds a symbol by its C name.
func Lookup(name string) (s Symbol, ok bool) {
	s, ok = byName[name]
	if !ok {
		s = NoSymbol
	}
	return
}
