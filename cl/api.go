package cl

import "unsafe"

// Callbacks (pfn_notify and friends) are passed as uintptr, build them with purego.NewCallback.
// Returned void* values are uintptr so that C memory never masquerades as Go memory.
var (
	GetPlatformIDs  func(numEntries Uint, platforms *PlatformID, numPlatforms *Uint) Int
	GetPlatformInfo func(platform PlatformID, paramName Uint, paramValueSize uintptr, paramValue unsafe.Pointer, paramValueSizeRet *uintptr) Int
	GetDeviceIDs    func(platform PlatformID, deviceType Bitfield, numEntries Uint, devices *DeviceID, numDevices *Uint) Int
	GetDeviceInfo   func(device DeviceID, paramName Uint, paramValueSize uintptr, paramValue unsafe.Pointer, paramValueSizeRet *uintptr) Int

	CreateContext         func(properties *ContextProperties, numDevices Uint, devices *DeviceID, pfnNotify uintptr, userData unsafe.Pointer, errcodeRet *Int) Context
	CreateContextFromType func(properties *ContextProperties, deviceType Bitfield, pfnNotify uintptr, userData unsafe.Pointer, errcodeRet *Int) Context
	RetainContext         func(context Context) Int
	ReleaseContext        func(context Context) Int
	GetContextInfo        func(context Context, paramName Uint, paramValueSize uintptr, paramValue unsafe.Pointer, paramValueSizeRet *uintptr) Int

	CreateCommandQueue  func(context Context, device DeviceID, properties Bitfield, errcodeRet *Int) CommandQueue
	RetainCommandQueue  func(queue CommandQueue) Int
	ReleaseCommandQueue func(queue CommandQueue) Int
	GetCommandQueueInfo func(queue CommandQueue, paramName Uint, paramValueSize uintptr, paramValue unsafe.Pointer, paramValueSizeRet *uintptr) Int

	CreateBuffer                   func(context Context, flags Bitfield, size uintptr, hostPtr unsafe.Pointer, errcodeRet *Int) Mem
	CreateSubBuffer                func(buffer Mem, flags Bitfield, bufferCreateType Uint, bufferCreateInfo unsafe.Pointer, errcodeRet *Int) Mem
	CreateImage2D                  func(context Context, flags Bitfield, format *ImageFormat, width, height, rowPitch uintptr, hostPtr unsafe.Pointer, errcodeRet *Int) Mem
	CreateImage3D                  func(context Context, flags Bitfield, format *ImageFormat, width, height, depth, rowPitch, slicePitch uintptr, hostPtr unsafe.Pointer, errcodeRet *Int) Mem
	RetainMemObject                func(mem Mem) Int
	ReleaseMemObject               func(mem Mem) Int
	GetSupportedImageFormats       func(context Context, flags Bitfield, imageType Uint, numEntries Uint, formats *ImageFormat, numFormats *Uint) Int
	GetMemObjectInfo               func(mem Mem, paramName Uint, paramValueSize uintptr, paramValue unsafe.Pointer, paramValueSizeRet *uintptr) Int
	GetImageInfo                   func(image Mem, paramName Uint, paramValueSize uintptr, paramValue unsafe.Pointer, paramValueSizeRet *uintptr) Int
	SetMemObjectDestructorCallback func(mem Mem, pfnNotify uintptr, userData unsafe.Pointer) Int

	CreateSampler  func(context Context, normalizedCoords Bool, addressingMode Uint, filterMode Uint, errcodeRet *Int) Sampler
	RetainSampler  func(sampler Sampler) Int
	ReleaseSampler func(sampler Sampler) Int
	GetSamplerInfo func(sampler Sampler, paramName Uint, paramValueSize uintptr, paramValue unsafe.Pointer, paramValueSizeRet *uintptr) Int

	CreateProgramWithSource func(context Context, count Uint, strings **byte, lengths *uintptr, errcodeRet *Int) Program
	CreateProgramWithBinary func(context Context, numDevices Uint, devices *DeviceID, lengths *uintptr, binaries **byte, binaryStatus *Int, errcodeRet *Int) Program
	RetainProgram           func(program Program) Int
	ReleaseProgram          func(program Program) Int
	BuildProgram            func(program Program, numDevices Uint, devices *DeviceID, options *byte, pfnNotify uintptr, userData unsafe.Pointer) Int
	UnloadCompiler          func() Int
	GetProgramInfo          func(program Program, paramName Uint, paramValueSize uintptr, paramValue unsafe.Pointer, paramValueSizeRet *uintptr) Int
	GetProgramBuildInfo     func(program Program, device DeviceID, paramName Uint, paramValueSize uintptr, paramValue unsafe.Pointer, paramValueSizeRet *uintptr) Int

	CreateKernel           func(program Program, kernelName *byte, errcodeRet *Int) Kernel
	CreateKernelsInProgram func(program Program, numKernels Uint, kernels *Kernel, numKernelsRet *Uint) Int
	RetainKernel           func(kernel Kernel) Int
	ReleaseKernel          func(kernel Kernel) Int
	SetKernelArg           func(kernel Kernel, argIndex Uint, argSize uintptr, argValue unsafe.Pointer) Int
	GetKernelInfo          func(kernel Kernel, paramName Uint, paramValueSize uintptr, paramValue unsafe.Pointer, paramValueSizeRet *uintptr) Int
	GetKernelWorkGroupInfo func(kernel Kernel, device DeviceID, paramName Uint, paramValueSize uintptr, paramValue unsafe.Pointer, paramValueSizeRet *uintptr) Int

	WaitForEvents         func(numEvents Uint, eventList *Event) Int
	GetEventInfo          func(event Event, paramName Uint, paramValueSize uintptr, paramValue unsafe.Pointer, paramValueSizeRet *uintptr) Int
	CreateUserEvent       func(context Context, errcodeRet *Int) Event
	RetainEvent           func(event Event) Int
	ReleaseEvent          func(event Event) Int
	SetUserEventStatus    func(event Event, executionStatus Int) Int
	SetEventCallback      func(event Event, commandExecCallbackType Int, pfnNotify uintptr, userData unsafe.Pointer) Int
	GetEventProfilingInfo func(event Event, paramName Uint, paramValueSize uintptr, paramValue unsafe.Pointer, paramValueSizeRet *uintptr) Int

	Flush  func(queue CommandQueue) Int
	Finish func(queue CommandQueue) Int

	EnqueueReadBuffer        func(queue CommandQueue, buffer Mem, blockingRead Bool, offset, cb uintptr, ptr unsafe.Pointer, numEventsInWaitList Uint, eventWaitList *Event, event *Event) Int
	EnqueueReadBufferRect    func(queue CommandQueue, buffer Mem, blockingRead Bool, bufferOrigin, hostOrigin, region *uintptr, bufferRowPitch, bufferSlicePitch, hostRowPitch, hostSlicePitch uintptr, ptr unsafe.Pointer, numEventsInWaitList Uint, eventWaitList *Event, event *Event) Int
	EnqueueWriteBuffer       func(queue CommandQueue, buffer Mem, blockingWrite Bool, offset, cb uintptr, ptr unsafe.Pointer, numEventsInWaitList Uint, eventWaitList *Event, event *Event) Int
	EnqueueWriteBufferRect   func(queue CommandQueue, buffer Mem, blockingWrite Bool, bufferOrigin, hostOrigin, region *uintptr, bufferRowPitch, bufferSlicePitch, hostRowPitch, hostSlicePitch uintptr, ptr unsafe.Pointer, numEventsInWaitList Uint, eventWaitList *Event, event *Event) Int
	EnqueueCopyBuffer        func(queue CommandQueue, srcBuffer, dstBuffer Mem, srcOffset, dstOffset, cb uintptr, numEventsInWaitList Uint, eventWaitList *Event, event *Event) Int
	EnqueueCopyBufferRect    func(queue CommandQueue, srcBuffer, dstBuffer Mem, srcOrigin, dstOrigin, region *uintptr, srcRowPitch, srcSlicePitch, dstRowPitch, dstSlicePitch uintptr, numEventsInWaitList Uint, eventWaitList *Event, event *Event) Int
	EnqueueReadImage         func(queue CommandQueue, image Mem, blockingRead Bool, origin, region *uintptr, rowPitch, slicePitch uintptr, ptr unsafe.Pointer, numEventsInWaitList Uint, eventWaitList *Event, event *Event) Int
	EnqueueWriteImage        func(queue CommandQueue, image Mem, blockingWrite Bool, origin, region *uintptr, inputRowPitch, inputSlicePitch uintptr, ptr unsafe.Pointer, numEventsInWaitList Uint, eventWaitList *Event, event *Event) Int
	EnqueueCopyImage         func(queue CommandQueue, srcImage, dstImage Mem, srcOrigin, dstOrigin, region *uintptr, numEventsInWaitList Uint, eventWaitList *Event, event *Event) Int
	EnqueueCopyImageToBuffer func(queue CommandQueue, srcImage, dstBuffer Mem, srcOrigin, region *uintptr, dstOffset uintptr, numEventsInWaitList Uint, eventWaitList *Event, event *Event) Int
	EnqueueCopyBufferToImage func(queue CommandQueue, srcBuffer, dstImage Mem, srcOffset uintptr, dstOrigin, region *uintptr, numEventsInWaitList Uint, eventWaitList *Event, event *Event) Int
	EnqueueMapBuffer         func(queue CommandQueue, buffer Mem, blockingMap Bool, mapFlags Bitfield, offset, cb uintptr, numEventsInWaitList Uint, eventWaitList *Event, event *Event, errcodeRet *Int) uintptr
	EnqueueMapImage          func(queue CommandQueue, image Mem, blockingMap Bool, mapFlags Bitfield, origin, region *uintptr, imageRowPitch, imageSlicePitch *uintptr, numEventsInWaitList Uint, eventWaitList *Event, event *Event, errcodeRet *Int) uintptr
	EnqueueUnmapMemObject    func(queue CommandQueue, memobj Mem, mappedPtr uintptr, numEventsInWaitList Uint, eventWaitList *Event, event *Event) Int
	EnqueueNDRangeKernel     func(queue CommandQueue, kernel Kernel, workDim Uint, globalWorkOffset, globalWorkSize, localWorkSize *uintptr, numEventsInWaitList Uint, eventWaitList *Event, event *Event) Int
	EnqueueTask              func(queue CommandQueue, kernel Kernel, numEventsInWaitList Uint, eventWaitList *Event, event *Event) Int
	EnqueueNativeKernel      func(queue CommandQueue, userFunc uintptr, args unsafe.Pointer, cbArgs uintptr, numMemObjects Uint, memList *Mem, argsMemLoc *unsafe.Pointer, numEventsInWaitList Uint, eventWaitList *Event, event *Event) Int
	EnqueueMarker            func(queue CommandQueue, event *Event) Int
	EnqueueWaitForEvents     func(queue CommandQueue, numEvents Uint, eventList *Event) Int
	EnqueueBarrier           func(queue CommandQueue) Int

	GetExtensionFunctionAddress func(funcName string) uintptr
)

// Slots maps each exported C name to the address of its function variable.
var Slots = map[string]any{
	"clGetPlatformIDs":                 &GetPlatformIDs,
	"clGetPlatformInfo":                &GetPlatformInfo,
	"clGetDeviceIDs":                   &GetDeviceIDs,
	"clGetDeviceInfo":                  &GetDeviceInfo,
	"clCreateContext":                  &CreateContext,
	"clCreateContextFromType":          &CreateContextFromType,
	"clRetainContext":                  &RetainContext,
	"clReleaseContext":                 &ReleaseContext,
	"clGetContextInfo":                 &GetContextInfo,
	"clCreateCommandQueue":             &CreateCommandQueue,
	"clRetainCommandQueue":             &RetainCommandQueue,
	"clReleaseCommandQueue":            &ReleaseCommandQueue,
	"clGetCommandQueueInfo":            &GetCommandQueueInfo,
	"clCreateBuffer":                   &CreateBuffer,
	"clCreateSubBuffer":                &CreateSubBuffer,
	"clCreateImage2D":                  &CreateImage2D,
	"clCreateImage3D":                  &CreateImage3D,
	"clRetainMemObject":                &RetainMemObject,
	"clReleaseMemObject":               &ReleaseMemObject,
	"clGetSupportedImageFormats":       &GetSupportedImageFormats,
	"clGetMemObjectInfo":               &GetMemObjectInfo,
	"clGetImageInfo":                   &GetImageInfo,
	"clSetMemObjectDestructorCallback": &SetMemObjectDestructorCallback,
	"clCreateSampler":                  &CreateSampler,
	"clRetainSampler":                  &RetainSampler,
	"clReleaseSampler":                 &ReleaseSampler,
	"clGetSamplerInfo":                 &GetSamplerInfo,
	"clCreateProgramWithSource":        &CreateProgramWithSource,
	"clCreateProgramWithBinary":        &CreateProgramWithBinary,
	"clRetainProgram":                  &RetainProgram,
	"clReleaseProgram":                 &ReleaseProgram,
	"clBuildProgram":                   &BuildProgram,
	"clUnloadCompiler":                 &UnloadCompiler,
	"clGetProgramInfo":                 &GetProgramInfo,
	"clGetProgramBuildInfo":            &GetProgramBuildInfo,
	"clCreateKernel":                   &CreateKernel,
	"clCreateKernelsInProgram":         &CreateKernelsInProgram,
	"clRetainKernel":                   &RetainKernel,
	"clReleaseKernel":                  &ReleaseKernel,
	"clSetKernelArg":                   &SetKernelArg,
	"clGetKernelInfo":                  &GetKernelInfo,
	"clGetKernelWorkGroupInfo":         &GetKernelWorkGroupInfo,
	"clWaitForEvents":                  &WaitForEvents,
	"clGetEventInfo":                   &GetEventInfo,
	"clCreateUserEvent":                &CreateUserEvent,
	"clRetainEvent":                    &RetainEvent,
	"clReleaseEvent":                   &ReleaseEvent,
	"clSetUserEventStatus":             &SetUserEventStatus,
	"clSetEventCallback":               &SetEventCallback,
	"clGetEventProfilingInfo":          &GetEventProfilingInfo,
	"clFlush":                          &Flush,
	"clFinish":                         &Finish,
	"clEnqueueReadBuffer":              &EnqueueReadBuffer,
	"clEnqueueReadBufferRect":          &EnqueueReadBufferRect,
	"clEnqueueWriteBuffer":             &EnqueueWriteBuffer,
	"clEnqueueWriteBufferRect":         &EnqueueWriteBufferRect,
	"clEnqueueCopyBuffer":              &EnqueueCopyBuffer,
	"clEnqueueCopyBufferRect":          &EnqueueCopyBufferRect,
	"clEnqueueReadImage":               &EnqueueReadImage,
	"clEnqueueWriteImage":              &EnqueueWriteImage,
	"clEnqueueCopyImage":               &EnqueueCopyImage,
	"clEnqueueCopyImageToBuffer":       &EnqueueCopyImageToBuffer,
	"clEnqueueCopyBufferToImage":       &EnqueueCopyBufferToImage,
	"clEnqueueMapBuffer":               &EnqueueMapBuffer,
	"clEnqueueMapImage":                &EnqueueMapImage,
	"clEnqueueUnmapMemObject":          &EnqueueUnmapMemObject,
	"clEnqueueNDRangeKernel":           &EnqueueNDRangeKernel,
	"clEnqueueTask":                    &EnqueueTask,
	"clEnqueueNativeKernel":            &EnqueueNativeKernel,
	"clEnqueueMarker":                  &EnqueueMarker,
	"clEnqueueWaitForEvents":           &EnqueueWaitForEvents,
	"clEnqueueBarrier":                 &EnqueueBarrier,
	"clGetExtensionFunctionAddress":    &GetExtensionFunctionAddress,
}
