package vk

import (
	"io"
	"unsafe"

	"golang.org/x/exp/slog"
)

// BindFunc turns a native entry point address into a callable Go func. fptr is a pointer to a
// func-typed field of a dispatch table. purego.RegisterFunc has exactly this shape.
type BindFunc func(fptr any, addr uintptr)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard))

// InstanceDispatch holds the global and instance tiers of entry points. A nil field means
// the entry point was not resolved and the feature behind it is absent.
//
// The table is shared by reference with every handle created from it and must outlive them.
type InstanceDispatch struct {
	// Logger receives diagnostics for everything created from this table. Nil discards.
	Logger *slog.Logger
	// Bind converts resolved addresses into the typed fields below
	Bind BindFunc

	instance VkInstance

	GetInstanceProcAddr func(instance VkInstance, name string) uintptr

	CreateInstance                          func(info *InstanceCreateInfo, allocator unsafe.Pointer, instance *VkInstance) Result
	DestroyInstance                         func(instance VkInstance, allocator unsafe.Pointer)
	EnumerateInstanceExtensionProperties    func(layerName *byte, count *uint32, properties *ExtensionProperties) Result
	EnumerateInstanceLayerProperties        func(count *uint32, properties *LayerProperties) Result
	CreateDebugUtilsMessengerEXT            func(instance VkInstance, info *DebugUtilsMessengerCreateInfoEXT, allocator unsafe.Pointer, messenger *VkDebugUtilsMessengerEXT) Result
	CreateDevice                            func(physicalDevice VkPhysicalDevice, info *DeviceCreateInfo, allocator unsafe.Pointer, device *VkDevice) Result
	DestroyDebugUtilsMessengerEXT           func(instance VkInstance, messenger VkDebugUtilsMessengerEXT, allocator unsafe.Pointer)
	DestroyDevice                           func(device VkDevice, allocator unsafe.Pointer)
	DestroySurfaceKHR                       func(instance VkInstance, surface VkSurfaceKHR, allocator unsafe.Pointer)
	EnumerateDeviceExtensionProperties      func(physicalDevice VkPhysicalDevice, layerName *byte, count *uint32, properties *ExtensionProperties) Result
	EnumeratePhysicalDevices                func(instance VkInstance, count *uint32, devices *VkPhysicalDevice) Result
	GetDeviceProcAddr                       func(device VkDevice, name string) uintptr
	GetPhysicalDeviceFeatures2KHR           func(physicalDevice VkPhysicalDevice, features *PhysicalDeviceFeatures2)
	GetPhysicalDeviceFormatProperties       func(physicalDevice VkPhysicalDevice, format Format, properties *FormatProperties)
	GetPhysicalDeviceMemoryProperties       func(physicalDevice VkPhysicalDevice, properties *PhysicalDeviceMemoryProperties)
	GetPhysicalDeviceProperties             func(physicalDevice VkPhysicalDevice, properties *PhysicalDeviceProperties)
	GetPhysicalDeviceProperties2KHR         func(physicalDevice VkPhysicalDevice, properties *PhysicalDeviceProperties2)
	GetPhysicalDeviceQueueFamilyProperties  func(physicalDevice VkPhysicalDevice, count *uint32, properties *QueueFamilyProperties)
	GetPhysicalDeviceSurfaceCapabilitiesKHR func(physicalDevice VkPhysicalDevice, surface VkSurfaceKHR, capabilities *SurfaceCapabilitiesKHR) Result
	GetPhysicalDeviceSurfaceFormatsKHR      func(physicalDevice VkPhysicalDevice, surface VkSurfaceKHR, count *uint32, formats *SurfaceFormatKHR) Result
	GetPhysicalDeviceSurfacePresentModesKHR func(physicalDevice VkPhysicalDevice, surface VkSurfaceKHR, count *uint32, modes *PresentModeKHR) Result
	GetPhysicalDeviceSurfaceSupportKHR      func(physicalDevice VkPhysicalDevice, queueFamilyIndex uint32, surface VkSurfaceKHR, supported *Bool32) Result
	GetSwapchainImagesKHR                   func(device VkDevice, swapchain VkSwapchainKHR, count *uint32, images *VkImage) Result
	QueuePresentKHR                         func(queue VkQueue, info *PresentInfoKHR) Result
}

func (d *InstanceDispatch) logger() *slog.Logger {
	if d == nil || d.Logger == nil {
		return discardLogger
	}
	return d.Logger
}

// DeviceDispatch extends the instance tiers with device-level entry points. Every field of
// the embedded InstanceDispatch remains valid.
type DeviceDispatch struct {
	InstanceDispatch

	AcquireNextImageKHR                func(device VkDevice, swapchain VkSwapchainKHR, timeout uint64, semaphore VkSemaphore, fence VkFence, imageIndex *uint32) Result
	AllocateCommandBuffers             func(device VkDevice, info *CommandBufferAllocateInfo, buffers *VkCommandBuffer) Result
	AllocateDescriptorSets             func(device VkDevice, info *DescriptorSetAllocateInfo, sets *VkDescriptorSet) Result
	AllocateMemory                     func(device VkDevice, info *MemoryAllocateInfo, allocator unsafe.Pointer, memory *VkDeviceMemory) Result
	BeginCommandBuffer                 func(commandBuffer VkCommandBuffer, info *CommandBufferBeginInfo) Result
	BindBufferMemory                   func(device VkDevice, buffer VkBuffer, memory VkDeviceMemory, offset uint64) Result
	BindImageMemory                    func(device VkDevice, image VkImage, memory VkDeviceMemory, offset uint64) Result
	CmdBeginQuery                      func(commandBuffer VkCommandBuffer, pool VkQueryPool, query uint32, flags uint32)
	CmdBeginRenderPass                 func(commandBuffer VkCommandBuffer, info *RenderPassBeginInfo, contents SubpassContents)
	CmdBeginTransformFeedbackEXT       func(commandBuffer VkCommandBuffer, firstCounterBuffer uint32, counterBufferCount uint32, counterBuffers *VkBuffer, counterBufferOffsets *uint64)
	CmdBindDescriptorSets              func(commandBuffer VkCommandBuffer, bindPoint PipelineBindPoint, layout VkPipelineLayout, firstSet uint32, setCount uint32, sets *VkDescriptorSet, dynamicOffsetCount uint32, dynamicOffsets *uint32)
	CmdBindIndexBuffer                 func(commandBuffer VkCommandBuffer, buffer VkBuffer, offset uint64, indexType IndexType)
	CmdBindPipeline                    func(commandBuffer VkCommandBuffer, bindPoint PipelineBindPoint, pipeline VkPipeline)
	CmdBindTransformFeedbackBuffersEXT func(commandBuffer VkCommandBuffer, firstBinding uint32, bindingCount uint32, buffers *VkBuffer, offsets *uint64, sizes *uint64)
	CmdBindVertexBuffers               func(commandBuffer VkCommandBuffer, firstBinding uint32, bindingCount uint32, buffers *VkBuffer, offsets *uint64)
	CmdBlitImage                       func(commandBuffer VkCommandBuffer, src VkImage, srcLayout ImageLayout, dst VkImage, dstLayout ImageLayout, regionCount uint32, regions *ImageBlit, filter SamplerFilter)
	CmdClearAttachments                func(commandBuffer VkCommandBuffer, attachmentCount uint32, attachments *ClearAttachment, rectCount uint32, rects *ClearRect)
	CmdCopyBuffer                      func(commandBuffer VkCommandBuffer, src VkBuffer, dst VkBuffer, regionCount uint32, regions *BufferCopy)
	CmdCopyBufferToImage               func(commandBuffer VkCommandBuffer, src VkBuffer, dst VkImage, dstLayout ImageLayout, regionCount uint32, regions *BufferImageCopy)
	CmdCopyImage                       func(commandBuffer VkCommandBuffer, src VkImage, srcLayout ImageLayout, dst VkImage, dstLayout ImageLayout, regionCount uint32, regions *ImageCopy)
	CmdCopyImageToBuffer               func(commandBuffer VkCommandBuffer, src VkImage, srcLayout ImageLayout, dst VkBuffer, regionCount uint32, regions *BufferImageCopy)
	CmdDispatch                        func(commandBuffer VkCommandBuffer, x uint32, y uint32, z uint32)
	CmdDraw                            func(commandBuffer VkCommandBuffer, vertexCount uint32, instanceCount uint32, firstVertex uint32, firstInstance uint32)
	CmdDrawIndexed                     func(commandBuffer VkCommandBuffer, indexCount uint32, instanceCount uint32, firstIndex uint32, vertexOffset int32, firstInstance uint32)
	CmdEndQuery                        func(commandBuffer VkCommandBuffer, pool VkQueryPool, query uint32)
	CmdEndRenderPass                   func(commandBuffer VkCommandBuffer)
	CmdEndTransformFeedbackEXT         func(commandBuffer VkCommandBuffer, firstCounterBuffer uint32, counterBufferCount uint32, counterBuffers *VkBuffer, counterBufferOffsets *uint64)
	CmdFillBuffer                      func(commandBuffer VkCommandBuffer, dst VkBuffer, offset uint64, size uint64, data uint32)
	CmdPipelineBarrier                 func(commandBuffer VkCommandBuffer, srcStageMask uint32, dstStageMask uint32, dependencyFlags uint32, memoryBarrierCount uint32, memoryBarriers *MemoryBarrier, bufferBarrierCount uint32, bufferBarriers *BufferMemoryBarrier, imageBarrierCount uint32, imageBarriers *ImageMemoryBarrier)
	CmdPushConstants                   func(commandBuffer VkCommandBuffer, layout VkPipelineLayout, stageFlags uint32, offset uint32, size uint32, values unsafe.Pointer)
	CmdSetBlendConstants               func(commandBuffer VkCommandBuffer, constants *[4]float32)
	CmdSetCheckpointNV                 func(commandBuffer VkCommandBuffer, marker unsafe.Pointer)
	CmdSetDepthBias                    func(commandBuffer VkCommandBuffer, constantFactor float32, clamp float32, slopeFactor float32)
	CmdSetDepthBounds                  func(commandBuffer VkCommandBuffer, minDepthBounds float32, maxDepthBounds float32)
	CmdSetScissor                      func(commandBuffer VkCommandBuffer, firstScissor uint32, scissorCount uint32, scissors *Rect2D)
	CmdSetStencilCompareMask           func(commandBuffer VkCommandBuffer, faceMask uint32, compareMask uint32)
	CmdSetStencilReference             func(commandBuffer VkCommandBuffer, faceMask uint32, reference uint32)
	CmdSetStencilWriteMask             func(commandBuffer VkCommandBuffer, faceMask uint32, writeMask uint32)
	CmdSetViewport                     func(commandBuffer VkCommandBuffer, firstViewport uint32, viewportCount uint32, viewports *Viewport)
	CreateBuffer                       func(device VkDevice, info *BufferCreateInfo, allocator unsafe.Pointer, buffer *VkBuffer) Result
	CreateBufferView                   func(device VkDevice, info *BufferViewCreateInfo, allocator unsafe.Pointer, view *VkBufferView) Result
	CreateCommandPool                  func(device VkDevice, info *CommandPoolCreateInfo, allocator unsafe.Pointer, pool *VkCommandPool) Result
	CreateComputePipelines             func(device VkDevice, cache VkPipelineCache, count uint32, infos *ComputePipelineCreateInfo, allocator unsafe.Pointer, pipelines *VkPipeline) Result
	CreateDescriptorPool               func(device VkDevice, info *DescriptorPoolCreateInfo, allocator unsafe.Pointer, pool *VkDescriptorPool) Result
	CreateDescriptorSetLayout          func(device VkDevice, info *DescriptorSetLayoutCreateInfo, allocator unsafe.Pointer, layout *VkDescriptorSetLayout) Result
	CreateDescriptorUpdateTemplateKHR  func(device VkDevice, info *DescriptorUpdateTemplateCreateInfo, allocator unsafe.Pointer, template *VkDescriptorUpdateTemplateKHR) Result
	CreateFence                        func(device VkDevice, info *FenceCreateInfo, allocator unsafe.Pointer, fence *VkFence) Result
	CreateFramebuffer                  func(device VkDevice, info *FramebufferCreateInfo, allocator unsafe.Pointer, framebuffer *VkFramebuffer) Result
	CreateGraphicsPipelines            func(device VkDevice, cache VkPipelineCache, count uint32, infos *GraphicsPipelineCreateInfo, allocator unsafe.Pointer, pipelines *VkPipeline) Result
	CreateImage                        func(device VkDevice, info *ImageCreateInfo, allocator unsafe.Pointer, image *VkImage) Result
	CreateImageView                    func(device VkDevice, info *ImageViewCreateInfo, allocator unsafe.Pointer, view *VkImageView) Result
	CreatePipelineLayout               func(device VkDevice, info *PipelineLayoutCreateInfo, allocator unsafe.Pointer, layout *VkPipelineLayout) Result
	CreateQueryPool                    func(device VkDevice, info *QueryPoolCreateInfo, allocator unsafe.Pointer, pool *VkQueryPool) Result
	CreateRenderPass                   func(device VkDevice, info *RenderPassCreateInfo, allocator unsafe.Pointer, renderPass *VkRenderPass) Result
	CreateSampler                      func(device VkDevice, info *SamplerCreateInfo, allocator unsafe.Pointer, sampler *VkSampler) Result
	CreateSemaphore                    func(device VkDevice, info *SemaphoreCreateInfo, allocator unsafe.Pointer, semaphore *VkSemaphore) Result
	CreateShaderModule                 func(device VkDevice, info *ShaderModuleCreateInfo, allocator unsafe.Pointer, module *VkShaderModule) Result
	CreateSwapchainKHR                 func(device VkDevice, info *SwapchainCreateInfoKHR, allocator unsafe.Pointer, swapchain *VkSwapchainKHR) Result
	DestroyBuffer                      func(device VkDevice, buffer VkBuffer, allocator unsafe.Pointer)
	DestroyBufferView                  func(device VkDevice, view VkBufferView, allocator unsafe.Pointer)
	DestroyCommandPool                 func(device VkDevice, pool VkCommandPool, allocator unsafe.Pointer)
	DestroyDescriptorPool              func(device VkDevice, pool VkDescriptorPool, allocator unsafe.Pointer)
	DestroyDescriptorSetLayout         func(device VkDevice, layout VkDescriptorSetLayout, allocator unsafe.Pointer)
	DestroyDescriptorUpdateTemplateKHR func(device VkDevice, template VkDescriptorUpdateTemplateKHR, allocator unsafe.Pointer)
	DestroyFence                       func(device VkDevice, fence VkFence, allocator unsafe.Pointer)
	DestroyFramebuffer                 func(device VkDevice, framebuffer VkFramebuffer, allocator unsafe.Pointer)
	DestroyImage                       func(device VkDevice, image VkImage, allocator unsafe.Pointer)
	DestroyImageView                   func(device VkDevice, view VkImageView, allocator unsafe.Pointer)
	DestroyPipeline                    func(device VkDevice, pipeline VkPipeline, allocator unsafe.Pointer)
	DestroyPipelineLayout              func(device VkDevice, layout VkPipelineLayout, allocator unsafe.Pointer)
	DestroyQueryPool                   func(device VkDevice, pool VkQueryPool, allocator unsafe.Pointer)
	DestroyRenderPass                  func(device VkDevice, renderPass VkRenderPass, allocator unsafe.Pointer)
	DestroySampler                     func(device VkDevice, sampler VkSampler, allocator unsafe.Pointer)
	DestroySemaphore                   func(device VkDevice, semaphore VkSemaphore, allocator unsafe.Pointer)
	DestroyShaderModule                func(device VkDevice, module VkShaderModule, allocator unsafe.Pointer)
	DestroySwapchainKHR                func(device VkDevice, swapchain VkSwapchainKHR, allocator unsafe.Pointer)
	DeviceWaitIdle                     func(device VkDevice) Result
	EndCommandBuffer                   func(commandBuffer VkCommandBuffer) Result
	FlushMappedMemoryRanges            func(device VkDevice, count uint32, ranges *MappedMemoryRange) Result
	FreeCommandBuffers                 func(device VkDevice, pool VkCommandPool, count uint32, buffers *VkCommandBuffer)
	FreeDescriptorSets                 func(device VkDevice, pool VkDescriptorPool, count uint32, sets *VkDescriptorSet) Result
	FreeMemory                         func(device VkDevice, memory VkDeviceMemory, allocator unsafe.Pointer)
	GetBufferMemoryRequirements        func(device VkDevice, buffer VkBuffer, requirements *MemoryRequirements)
	GetDeviceQueue                     func(device VkDevice, familyIndex uint32, queueIndex uint32, queue *VkQueue)
	GetFenceStatus                     func(device VkDevice, fence VkFence) Result
	GetImageMemoryRequirements         func(device VkDevice, image VkImage, requirements *MemoryRequirements)
	GetQueryPoolResults                func(device VkDevice, pool VkQueryPool, firstQuery uint32, queryCount uint32, dataSize uintptr, data unsafe.Pointer, stride uint64, flags QueryResultFlags) Result
	GetQueueCheckpointDataNV           func(queue VkQueue, count *uint32, data *CheckpointDataNV)
	InvalidateMappedMemoryRanges       func(device VkDevice, count uint32, ranges *MappedMemoryRange) Result
	MapMemory                          func(device VkDevice, memory VkDeviceMemory, offset uint64, size uint64, flags uint32, data *unsafe.Pointer) Result
	QueueSubmit                        func(queue VkQueue, count uint32, submits *SubmitInfo, fence VkFence) Result
	ResetFences                        func(device VkDevice, count uint32, fences *VkFence) Result
	ResetQueryPoolEXT                  func(device VkDevice, pool VkQueryPool, firstQuery uint32, queryCount uint32)
	UnmapMemory                        func(device VkDevice, memory VkDeviceMemory)
	UpdateDescriptorSetWithTemplateKHR func(device VkDevice, set VkDescriptorSet, template VkDescriptorUpdateTemplateKHR, data unsafe.Pointer)
	UpdateDescriptorSets               func(device VkDevice, writeCount uint32, writes *WriteDescriptorSet, copyCount uint32, copies *CopyDescriptorSet)
	WaitForFences                      func(device VkDevice, count uint32, fences *VkFence, waitAll Bool32, timeout uint64) Result
}

// NewDeviceDispatch builds a device table whose instance tiers are copied from instance.
// Device-level fields start nil until LoadDevice runs.
func NewDeviceDispatch(instance *InstanceDispatch) *DeviceDispatch {
	return &DeviceDispatch{InstanceDispatch: *instance}
}
