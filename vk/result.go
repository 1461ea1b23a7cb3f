package vk

import "github.com/vkngwrapper/core/v2/common"

// Result is a native VkResult status code. Negative values are errors, zero is success and
// positive values are informational.
type Result int32

const (
	VKSuccess    Result = 0
	VKNotReady   Result = 1
	VKTimeout    Result = 2
	VKEventSet   Result = 3
	VKEventReset Result = 4
	VKIncomplete Result = 5

	VKErrorOutOfHostMemory      Result = -1
	VKErrorOutOfDeviceMemory    Result = -2
	VKErrorInitializationFailed Result = -3
	VKErrorDeviceLost           Result = -4
	VKErrorMemoryMapFailed      Result = -5
	VKErrorLayerNotPresent      Result = -6
	VKErrorExtensionNotPresent  Result = -7
	VKErrorFeatureNotPresent    Result = -8
	VKErrorIncompatibleDriver   Result = -9
	VKErrorTooManyObjects       Result = -10
	VKErrorFormatNotSupported   Result = -11
	VKErrorFragmentedPool       Result = -12
	VKErrorUnknown              Result = -13

	VKErrorOutOfPoolMemory                        Result = -1000069000
	VKErrorInvalidExternalHandle                  Result = -1000072003
	VKErrorFragmentation                          Result = -1000161000
	VKErrorInvalidOpaqueCaptureAddress            Result = -1000257000
	VKErrorSurfaceLostKHR                         Result = -1000000000
	VKErrorNativeWindowInUseKHR                   Result = -1000000001
	VKSuboptimalKHR                               Result = 1000001003
	VKErrorOutOfDateKHR                           Result = -1000001004
	VKErrorIncompatibleDisplayKHR                 Result = -1000003001
	VKErrorValidationFailedEXT                    Result = -1000011001
	VKErrorInvalidShaderNV                        Result = -1000012000
	VKErrorInvalidDRMFormatModifierPlaneLayoutEXT Result = -1000158000
	VKErrorNotPermittedEXT                        Result = -1000174001
	VKErrorFullScreenExclusiveModeLostEXT         Result = -1000255000
	VKThreadIdleKHR                               Result = 1000268000
	VKThreadDoneKHR                               Result = 1000268001
	VKOperationDeferredKHR                        Result = 1000268002
	VKOperationNotDeferredKHR                     Result = 1000268003
	VKPipelineCompileRequiredEXT                  Result = 1000297000
)

// ToString converts a Result into its VK_* name. Values it does not recognize map to "Unknown".
func ToString(result Result) string {
	switch result {
	case VKSuccess:
		return "VK_SUCCESS"
	case VKNotReady:
		return "VK_NOT_READY"
	case VKTimeout:
		return "VK_TIMEOUT"
	case VKEventSet:
		return "VK_EVENT_SET"
	case VKEventReset:
		return "VK_EVENT_RESET"
	case VKIncomplete:
		return "VK_INCOMPLETE"
	case VKErrorOutOfHostMemory:
		return "VK_ERROR_OUT_OF_HOST_MEMORY"
	case VKErrorOutOfDeviceMemory:
		return "VK_ERROR_OUT_OF_DEVICE_MEMORY"
	case VKErrorInitializationFailed:
		return "VK_ERROR_INITIALIZATION_FAILED"
	case VKErrorDeviceLost:
		return "VK_ERROR_DEVICE_LOST"
	case VKErrorMemoryMapFailed:
		return "VK_ERROR_MEMORY_MAP_FAILED"
	case VKErrorLayerNotPresent:
		return "VK_ERROR_LAYER_NOT_PRESENT"
	case VKErrorExtensionNotPresent:
		return "VK_ERROR_EXTENSION_NOT_PRESENT"
	case VKErrorFeatureNotPresent:
		return "VK_ERROR_FEATURE_NOT_PRESENT"
	case VKErrorIncompatibleDriver:
		return "VK_ERROR_INCOMPATIBLE_DRIVER"
	case VKErrorTooManyObjects:
		return "VK_ERROR_TOO_MANY_OBJECTS"
	case VKErrorFormatNotSupported:
		return "VK_ERROR_FORMAT_NOT_SUPPORTED"
	case VKErrorFragmentedPool:
		return "VK_ERROR_FRAGMENTED_POOL"
	case VKErrorUnknown:
		return "VK_ERROR_UNKNOWN"
	case VKErrorOutOfPoolMemory:
		return "VK_ERROR_OUT_OF_POOL_MEMORY"
	case VKErrorInvalidExternalHandle:
		return "VK_ERROR_INVALID_EXTERNAL_HANDLE"
	case VKErrorFragmentation:
		return "VK_ERROR_FRAGMENTATION"
	case VKErrorInvalidOpaqueCaptureAddress:
		return "VK_ERROR_INVALID_OPAQUE_CAPTURE_ADDRESS"
	case VKErrorSurfaceLostKHR:
		return "VK_ERROR_SURFACE_LOST_KHR"
	case VKErrorNativeWindowInUseKHR:
		return "VK_ERROR_NATIVE_WINDOW_IN_USE_KHR"
	case VKSuboptimalKHR:
		return "VK_SUBOPTIMAL_KHR"
	case VKErrorOutOfDateKHR:
		return "VK_ERROR_OUT_OF_DATE_KHR"
	case VKErrorIncompatibleDisplayKHR:
		return "VK_ERROR_INCOMPATIBLE_DISPLAY_KHR"
	case VKErrorValidationFailedEXT:
		return "VK_ERROR_VALIDATION_FAILED_EXT"
	case VKErrorInvalidShaderNV:
		return "VK_ERROR_INVALID_SHADER_NV"
	case VKErrorInvalidDRMFormatModifierPlaneLayoutEXT:
		return "VK_ERROR_INVALID_DRM_FORMAT_MODIFIER_PLANE_LAYOUT_EXT"
	case VKErrorNotPermittedEXT:
		return "VK_ERROR_NOT_PERMITTED_EXT"
	case VKErrorFullScreenExclusiveModeLostEXT:
		return "VK_ERROR_FULL_SCREEN_EXCLUSIVE_MODE_LOST_EXT"
	case VKThreadIdleKHR:
		return "VK_THREAD_IDLE_KHR"
	case VKThreadDoneKHR:
		return "VK_THREAD_DONE_KHR"
	case VKOperationDeferredKHR:
		return "VK_OPERATION_DEFERRED_KHR"
	case VKOperationNotDeferredKHR:
		return "VK_OPERATION_NOT_DEFERRED_KHR"
	case VKPipelineCompileRequiredEXT:
		return "VK_PIPELINE_COMPILE_REQUIRED_EXT"
	}
	return "Unknown"
}

func (r Result) String() string {
	return ToString(r)
}

// IsError reports whether the result is a hard error under the signed-error convention
func (r Result) IsError() bool {
	return r < 0
}

// VkResult converts the status into vkngwrapper's result type so it can be compared against
// the core1_0 constants
func (r Result) VkResult() common.VkResult {
	return common.VkResult(r)
}

// ToError wraps a non-success result in an Error. It returns nil for VKSuccess.
func (r Result) ToError() error {
	return Check(r)
}
