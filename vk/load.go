package vk

import (
	"reflect"

	"golang.org/x/exp/slog"
)

// Instance extensions whose entry points the loader resolves
const (
	ExtDebugUtilsExtensionName                   = "VK_EXT_debug_utils"
	KhrGetPhysicalDeviceProperties2ExtensionName = "VK_KHR_get_physical_device_properties2"
)

const (
	khrSurfaceExtensionName                    = "VK_KHR_surface"
	khrSwapchainExtensionName                  = "VK_KHR_swapchain"
	khrDescriptorUpdateTemplateExtensionName   = "VK_KHR_descriptor_update_template"
	extTransformFeedbackExtensionName          = "VK_EXT_transform_feedback"
	extHostQueryResetExtensionName             = "VK_EXT_host_query_reset"
	nvDeviceDiagnosticCheckpointsExtensionName = "VK_NV_device_diagnostic_checkpoints"
)

// entry names one slot of a dispatch table. Entries without an extension are core entry
// points and their absence fails the load.
type entry struct {
	name      string
	fptr      any
	extension string
}

func (e entry) required() bool {
	return e.extension == ""
}

func (e entry) resolved() bool {
	return !reflect.ValueOf(e.fptr).Elem().IsNil()
}

func (e entry) clear() {
	reflect.ValueOf(e.fptr).Elem().SetZero()
}

func globalEntries(d *InstanceDispatch) []entry {
	return []entry{
		{"vkCreateInstance", &d.CreateInstance, ""},
		{"vkEnumerateInstanceExtensionProperties", &d.EnumerateInstanceExtensionProperties, ""},
		{"vkEnumerateInstanceLayerProperties", &d.EnumerateInstanceLayerProperties, ""},
	}
}

func instanceEntries(d *InstanceDispatch) []entry {
	return []entry{
		{"vkCreateDebugUtilsMessengerEXT", &d.CreateDebugUtilsMessengerEXT, ExtDebugUtilsExtensionName},
		{"vkCreateDevice", &d.CreateDevice, ""},
		{"vkDestroyDebugUtilsMessengerEXT", &d.DestroyDebugUtilsMessengerEXT, ExtDebugUtilsExtensionName},
		{"vkDestroyDevice", &d.DestroyDevice, ""},
		{"vkDestroyInstance", &d.DestroyInstance, ""},
		{"vkDestroySurfaceKHR", &d.DestroySurfaceKHR, khrSurfaceExtensionName},
		{"vkEnumerateDeviceExtensionProperties", &d.EnumerateDeviceExtensionProperties, ""},
		{"vkEnumeratePhysicalDevices", &d.EnumeratePhysicalDevices, ""},
		{"vkGetDeviceProcAddr", &d.GetDeviceProcAddr, ""},
		{"vkGetPhysicalDeviceFeatures2KHR", &d.GetPhysicalDeviceFeatures2KHR, KhrGetPhysicalDeviceProperties2ExtensionName},
		{"vkGetPhysicalDeviceFormatProperties", &d.GetPhysicalDeviceFormatProperties, ""},
		{"vkGetPhysicalDeviceMemoryProperties", &d.GetPhysicalDeviceMemoryProperties, ""},
		{"vkGetPhysicalDeviceProperties", &d.GetPhysicalDeviceProperties, ""},
		{"vkGetPhysicalDeviceProperties2KHR", &d.GetPhysicalDeviceProperties2KHR, KhrGetPhysicalDeviceProperties2ExtensionName},
		{"vkGetPhysicalDeviceQueueFamilyProperties", &d.GetPhysicalDeviceQueueFamilyProperties, ""},
		{"vkGetPhysicalDeviceSurfaceCapabilitiesKHR", &d.GetPhysicalDeviceSurfaceCapabilitiesKHR, khrSurfaceExtensionName},
		{"vkGetPhysicalDeviceSurfaceFormatsKHR", &d.GetPhysicalDeviceSurfaceFormatsKHR, khrSurfaceExtensionName},
		{"vkGetPhysicalDeviceSurfacePresentModesKHR", &d.GetPhysicalDeviceSurfacePresentModesKHR, khrSurfaceExtensionName},
		{"vkGetPhysicalDeviceSurfaceSupportKHR", &d.GetPhysicalDeviceSurfaceSupportKHR, khrSurfaceExtensionName},
		{"vkGetSwapchainImagesKHR", &d.GetSwapchainImagesKHR, khrSwapchainExtensionName},
		{"vkQueuePresentKHR", &d.QueuePresentKHR, khrSwapchainExtensionName},
	}
}

func deviceEntries(d *DeviceDispatch) []entry {
	return []entry{
		{"vkAcquireNextImageKHR", &d.AcquireNextImageKHR, khrSwapchainExtensionName},
		{"vkAllocateCommandBuffers", &d.AllocateCommandBuffers, ""},
		{"vkAllocateDescriptorSets", &d.AllocateDescriptorSets, ""},
		{"vkAllocateMemory", &d.AllocateMemory, ""},
		{"vkBeginCommandBuffer", &d.BeginCommandBuffer, ""},
		{"vkBindBufferMemory", &d.BindBufferMemory, ""},
		{"vkBindImageMemory", &d.BindImageMemory, ""},
		{"vkCmdBeginQuery", &d.CmdBeginQuery, ""},
		{"vkCmdBeginRenderPass", &d.CmdBeginRenderPass, ""},
		{"vkCmdBeginTransformFeedbackEXT", &d.CmdBeginTransformFeedbackEXT, extTransformFeedbackExtensionName},
		{"vkCmdBindDescriptorSets", &d.CmdBindDescriptorSets, ""},
		{"vkCmdBindIndexBuffer", &d.CmdBindIndexBuffer, ""},
		{"vkCmdBindPipeline", &d.CmdBindPipeline, ""},
		{"vkCmdBindTransformFeedbackBuffersEXT", &d.CmdBindTransformFeedbackBuffersEXT, extTransformFeedbackExtensionName},
		{"vkCmdBindVertexBuffers", &d.CmdBindVertexBuffers, ""},
		{"vkCmdBlitImage", &d.CmdBlitImage, ""},
		{"vkCmdClearAttachments", &d.CmdClearAttachments, ""},
		{"vkCmdCopyBuffer", &d.CmdCopyBuffer, ""},
		{"vkCmdCopyBufferToImage", &d.CmdCopyBufferToImage, ""},
		{"vkCmdCopyImage", &d.CmdCopyImage, ""},
		{"vkCmdCopyImageToBuffer", &d.CmdCopyImageToBuffer, ""},
		{"vkCmdDispatch", &d.CmdDispatch, ""},
		{"vkCmdDraw", &d.CmdDraw, ""},
		{"vkCmdDrawIndexed", &d.CmdDrawIndexed, ""},
		{"vkCmdEndQuery", &d.CmdEndQuery, ""},
		{"vkCmdEndRenderPass", &d.CmdEndRenderPass, ""},
		{"vkCmdEndTransformFeedbackEXT", &d.CmdEndTransformFeedbackEXT, extTransformFeedbackExtensionName},
		{"vkCmdFillBuffer", &d.CmdFillBuffer, ""},
		{"vkCmdPipelineBarrier", &d.CmdPipelineBarrier, ""},
		{"vkCmdPushConstants", &d.CmdPushConstants, ""},
		{"vkCmdSetBlendConstants", &d.CmdSetBlendConstants, ""},
		{"vkCmdSetCheckpointNV", &d.CmdSetCheckpointNV, nvDeviceDiagnosticCheckpointsExtensionName},
		{"vkCmdSetDepthBias", &d.CmdSetDepthBias, ""},
		{"vkCmdSetDepthBounds", &d.CmdSetDepthBounds, ""},
		{"vkCmdSetScissor", &d.CmdSetScissor, ""},
		{"vkCmdSetStencilCompareMask", &d.CmdSetStencilCompareMask, ""},
		{"vkCmdSetStencilReference", &d.CmdSetStencilReference, ""},
		{"vkCmdSetStencilWriteMask", &d.CmdSetStencilWriteMask, ""},
		{"vkCmdSetViewport", &d.CmdSetViewport, ""},
		{"vkCreateBuffer", &d.CreateBuffer, ""},
		{"vkCreateBufferView", &d.CreateBufferView, ""},
		{"vkCreateCommandPool", &d.CreateCommandPool, ""},
		{"vkCreateComputePipelines", &d.CreateComputePipelines, ""},
		{"vkCreateDescriptorPool", &d.CreateDescriptorPool, ""},
		{"vkCreateDescriptorSetLayout", &d.CreateDescriptorSetLayout, ""},
		{"vkCreateDescriptorUpdateTemplateKHR", &d.CreateDescriptorUpdateTemplateKHR, khrDescriptorUpdateTemplateExtensionName},
		{"vkCreateFence", &d.CreateFence, ""},
		{"vkCreateFramebuffer", &d.CreateFramebuffer, ""},
		{"vkCreateGraphicsPipelines", &d.CreateGraphicsPipelines, ""},
		{"vkCreateImage", &d.CreateImage, ""},
		{"vkCreateImageView", &d.CreateImageView, ""},
		{"vkCreatePipelineLayout", &d.CreatePipelineLayout, ""},
		{"vkCreateQueryPool", &d.CreateQueryPool, ""},
		{"vkCreateRenderPass", &d.CreateRenderPass, ""},
		{"vkCreateSampler", &d.CreateSampler, ""},
		{"vkCreateSemaphore", &d.CreateSemaphore, ""},
		{"vkCreateShaderModule", &d.CreateShaderModule, ""},
		{"vkCreateSwapchainKHR", &d.CreateSwapchainKHR, khrSwapchainExtensionName},
		{"vkDestroyBuffer", &d.DestroyBuffer, ""},
		{"vkDestroyBufferView", &d.DestroyBufferView, ""},
		{"vkDestroyCommandPool", &d.DestroyCommandPool, ""},
		{"vkDestroyDescriptorPool", &d.DestroyDescriptorPool, ""},
		{"vkDestroyDescriptorSetLayout", &d.DestroyDescriptorSetLayout, ""},
		{"vkDestroyDescriptorUpdateTemplateKHR", &d.DestroyDescriptorUpdateTemplateKHR, khrDescriptorUpdateTemplateExtensionName},
		{"vkDestroyFence", &d.DestroyFence, ""},
		{"vkDestroyFramebuffer", &d.DestroyFramebuffer, ""},
		{"vkDestroyImage", &d.DestroyImage, ""},
		{"vkDestroyImageView", &d.DestroyImageView, ""},
		{"vkDestroyPipeline", &d.DestroyPipeline, ""},
		{"vkDestroyPipelineLayout", &d.DestroyPipelineLayout, ""},
		{"vkDestroyQueryPool", &d.DestroyQueryPool, ""},
		{"vkDestroyRenderPass", &d.DestroyRenderPass, ""},
		{"vkDestroySampler", &d.DestroySampler, ""},
		{"vkDestroySemaphore", &d.DestroySemaphore, ""},
		{"vkDestroyShaderModule", &d.DestroyShaderModule, ""},
		{"vkDestroySwapchainKHR", &d.DestroySwapchainKHR, khrSwapchainExtensionName},
		{"vkDeviceWaitIdle", &d.DeviceWaitIdle, ""},
		{"vkEndCommandBuffer", &d.EndCommandBuffer, ""},
		{"vkFlushMappedMemoryRanges", &d.FlushMappedMemoryRanges, ""},
		{"vkFreeCommandBuffers", &d.FreeCommandBuffers, ""},
		{"vkFreeDescriptorSets", &d.FreeDescriptorSets, ""},
		{"vkFreeMemory", &d.FreeMemory, ""},
		{"vkGetBufferMemoryRequirements", &d.GetBufferMemoryRequirements, ""},
		{"vkGetDeviceQueue", &d.GetDeviceQueue, ""},
		{"vkGetFenceStatus", &d.GetFenceStatus, ""},
		{"vkGetImageMemoryRequirements", &d.GetImageMemoryRequirements, ""},
		{"vkGetQueryPoolResults", &d.GetQueryPoolResults, ""},
		{"vkGetQueueCheckpointDataNV", &d.GetQueueCheckpointDataNV, nvDeviceDiagnosticCheckpointsExtensionName},
		{"vkGetSwapchainImagesKHR", &d.GetSwapchainImagesKHR, khrSwapchainExtensionName},
		{"vkInvalidateMappedMemoryRanges", &d.InvalidateMappedMemoryRanges, ""},
		{"vkMapMemory", &d.MapMemory, ""},
		{"vkQueuePresentKHR", &d.QueuePresentKHR, khrSwapchainExtensionName},
		{"vkQueueSubmit", &d.QueueSubmit, ""},
		{"vkResetFences", &d.ResetFences, ""},
		{"vkResetQueryPoolEXT", &d.ResetQueryPoolEXT, extHostQueryResetExtensionName},
		{"vkUnmapMemory", &d.UnmapMemory, ""},
		{"vkUpdateDescriptorSetWithTemplateKHR", &d.UpdateDescriptorSetWithTemplateKHR, khrDescriptorUpdateTemplateExtensionName},
		{"vkUpdateDescriptorSets", &d.UpdateDescriptorSets, ""},
		{"vkWaitForFences", &d.WaitForFences, ""},
	}
}

// bindEntries resolves every entry through resolve and reports whether all core entries
// were found. Unresolved entries are left nil.
func bindEntries(logger *slog.Logger, bind BindFunc, entries []entry, resolve func(name string) uintptr) bool {
	ok := true
	for _, e := range entries {
		addr := resolve(e.name)
		if addr == 0 {
			e.clear()
			if e.required() {
				logger.Error("entry point not resolved", slog.String("Name", e.name))
				ok = false
			} else {
				logger.Debug("optional entry point not resolved", slog.String("Name", e.name), slog.String("Extension", e.extension))
			}
			continue
		}
		bind(e.fptr, addr)
	}
	return ok
}

// Load resolves the global tier (entry points callable before an instance exists) through
// GetInstanceProcAddr with a null instance. It returns false if any is missing.
func Load(dld *InstanceDispatch) bool {
	if dld.GetInstanceProcAddr == nil || dld.Bind == nil {
		return false
	}
	logger := dld.logger()
	logger.Debug("Dispatch::Load")
	return bindEntries(logger, dld.Bind, globalEntries(dld), func(name string) uintptr {
		return dld.GetInstanceProcAddr(0, name)
	})
}

// LoadInstance resolves the instance tier for instance. Extension entry points that the
// driver does not expose stay nil. It returns false only if a core entry point is missing.
func LoadInstance(instance VkInstance, dld *InstanceDispatch) bool {
	if dld.GetInstanceProcAddr == nil || dld.Bind == nil {
		return false
	}
	logger := dld.logger()
	logger.Debug("Dispatch::LoadInstance")
	dld.instance = instance
	return bindEntries(logger, dld.Bind, instanceEntries(dld), func(name string) uintptr {
		return dld.GetInstanceProcAddr(instance, name)
	})
}

// LoadDevice resolves device-level entry points for device. GetDeviceProcAddr is preferred
// since it skips loader trampolines. When it is absent, GetInstanceProcAddr is used with the
// instance the table was loaded for.
func LoadDevice(device VkDevice, dld *DeviceDispatch) bool {
	if dld.Bind == nil {
		return false
	}
	var resolve func(name string) uintptr
	switch {
	case dld.GetDeviceProcAddr != nil:
		resolve = func(name string) uintptr {
			return dld.GetDeviceProcAddr(device, name)
		}
	case dld.GetInstanceProcAddr != nil:
		instance := dld.instance
		resolve = func(name string) uintptr {
			return dld.GetInstanceProcAddr(instance, name)
		}
	default:
		return false
	}
	logger := dld.logger()
	logger.Debug("Dispatch::LoadDevice")
	return bindEntries(logger, dld.Bind, deviceEntries(dld), resolve)
}

func missingEntries(entries ...[]entry) []string {
	var missing []string
	seen := make(map[string]struct{})
	for _, list := range entries {
		for _, e := range list {
			if _, ok := seen[e.name]; ok {
				continue
			}
			seen[e.name] = struct{}{}
			if !e.resolved() {
				missing = append(missing, e.name)
			}
		}
	}
	return missing
}

// Missing lists the global and instance entry points that are currently unresolved
func (d *InstanceDispatch) Missing() []string {
	return missingEntries(globalEntries(d), instanceEntries(d))
}

// Missing lists every unresolved entry point across all three tiers
func (d *DeviceDispatch) Missing() []string {
	return missingEntries(globalEntries(&d.InstanceDispatch), instanceEntries(&d.InstanceDispatch), deviceEntries(d))
}
