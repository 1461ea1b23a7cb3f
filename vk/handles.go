package vk

// Dispatchable handles are pointer-sized.
type (
	VkInstance       uintptr
	VkPhysicalDevice uintptr
	VkDevice         uintptr
	VkQueue          uintptr
	VkCommandBuffer  uintptr
)

// Non-dispatchable handles are 64 bits wide on every platform.
type (
	VkBuffer                      uint64
	VkBufferView                  uint64
	VkCommandPool                 uint64
	VkDebugUtilsMessengerEXT      uint64
	VkDescriptorPool              uint64
	VkDescriptorSet               uint64
	VkDescriptorSetLayout         uint64
	VkDescriptorUpdateTemplateKHR uint64
	VkDeviceMemory                uint64
	VkFence                       uint64
	VkFramebuffer                 uint64
	VkImage                       uint64
	VkImageView                   uint64
	VkPipeline                    uint64
	VkPipelineCache               uint64
	VkPipelineLayout              uint64
	VkQueryPool                   uint64
	VkRenderPass                  uint64
	VkSampler                     uint64
	VkSemaphore                   uint64
	VkShaderModule                uint64
	VkSurfaceKHR                  uint64
	VkSwapchainKHR                uint64
)

// Each owned handle kind knows which destroy entry point releases it. The method set
// is what the generic Handle constraints select on.

func (h VkInstance) destroy(dld *InstanceDispatch) {
	dld.DestroyInstance(h, nil)
}

func (h VkDevice) destroy(dld *DeviceDispatch) {
	dld.DestroyDevice(h, nil)
}

func (h VkDebugUtilsMessengerEXT) destroy(instance VkInstance, dld *InstanceDispatch) {
	dld.DestroyDebugUtilsMessengerEXT(instance, h, nil)
}

func (h VkSurfaceKHR) destroy(instance VkInstance, dld *InstanceDispatch) {
	dld.DestroySurfaceKHR(instance, h, nil)
}

func (h VkBuffer) destroy(device VkDevice, dld *DeviceDispatch) {
	dld.DestroyBuffer(device, h, nil)
}

func (h VkBufferView) destroy(device VkDevice, dld *DeviceDispatch) {
	dld.DestroyBufferView(device, h, nil)
}

func (h VkCommandPool) destroy(device VkDevice, dld *DeviceDispatch) {
	dld.DestroyCommandPool(device, h, nil)
}

func (h VkDescriptorPool) destroy(device VkDevice, dld *DeviceDispatch) {
	dld.DestroyDescriptorPool(device, h, nil)
}

func (h VkDescriptorSetLayout) destroy(device VkDevice, dld *DeviceDispatch) {
	dld.DestroyDescriptorSetLayout(device, h, nil)
}

func (h VkDescriptorUpdateTemplateKHR) destroy(device VkDevice, dld *DeviceDispatch) {
	dld.DestroyDescriptorUpdateTemplateKHR(device, h, nil)
}

// Device memory is freed rather than destroyed
func (h VkDeviceMemory) destroy(device VkDevice, dld *DeviceDispatch) {
	dld.FreeMemory(device, h, nil)
}

func (h VkFence) destroy(device VkDevice, dld *DeviceDispatch) {
	dld.DestroyFence(device, h, nil)
}

func (h VkFramebuffer) destroy(device VkDevice, dld *DeviceDispatch) {
	dld.DestroyFramebuffer(device, h, nil)
}

func (h VkImage) destroy(device VkDevice, dld *DeviceDispatch) {
	dld.DestroyImage(device, h, nil)
}

func (h VkImageView) destroy(device VkDevice, dld *DeviceDispatch) {
	dld.DestroyImageView(device, h, nil)
}

func (h VkPipeline) destroy(device VkDevice, dld *DeviceDispatch) {
	dld.DestroyPipeline(device, h, nil)
}

func (h VkPipelineLayout) destroy(device VkDevice, dld *DeviceDispatch) {
	dld.DestroyPipelineLayout(device, h, nil)
}

func (h VkQueryPool) destroy(device VkDevice, dld *DeviceDispatch) {
	dld.DestroyQueryPool(device, h, nil)
}

func (h VkRenderPass) destroy(device VkDevice, dld *DeviceDispatch) {
	dld.DestroyRenderPass(device, h, nil)
}

func (h VkSampler) destroy(device VkDevice, dld *DeviceDispatch) {
	dld.DestroySampler(device, h, nil)
}

func (h VkSemaphore) destroy(device VkDevice, dld *DeviceDispatch) {
	dld.DestroySemaphore(device, h, nil)
}

func (h VkShaderModule) destroy(device VkDevice, dld *DeviceDispatch) {
	dld.DestroyShaderModule(device, h, nil)
}

func (h VkSwapchainKHR) destroy(device VkDevice, dld *DeviceDispatch) {
	dld.DestroySwapchainKHR(device, h, nil)
}
