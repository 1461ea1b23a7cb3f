package vk

import (
	"unsafe"

	"github.com/vkngwrapper/vkw/vk/internal/utils"
)

// The types in this file mirror native parameter blocks field for field. They are forwarded to
// the driver by pointer and never reinterpreted by the wrapper.

type Extent2D struct {
	Width  uint32
	Height uint32
}

type Extent3D struct {
	Width  uint32
	Height uint32
	Depth  uint32
}

type Offset2D struct {
	X int32
	Y int32
}

type Offset3D struct {
	X int32
	Y int32
	Z int32
}

type Rect2D struct {
	Offset Offset2D
	Extent Extent2D
}

type Viewport struct {
	X        float32
	Y        float32
	Width    float32
	Height   float32
	MinDepth float32
	MaxDepth float32
}

// ClearValue is the 16-byte color/depth-stencil union
type ClearValue [4]uint32

// ClearColorFloat builds a ClearValue holding a float color
func ClearColorFloat(r, g, b, a float32) ClearValue {
	var v ClearValue
	*(*[4]float32)(unsafe.Pointer(&v)) = [4]float32{r, g, b, a}
	return v
}

// ClearDepthStencil builds a ClearValue holding a depth and stencil pair
func ClearDepthStencil(depth float32, stencil uint32) ClearValue {
	var v ClearValue
	*(*float32)(unsafe.Pointer(&v[0])) = depth
	v[1] = stencil
	return v
}

type ApplicationInfo struct {
	SType              StructureType
	Next               unsafe.Pointer
	ApplicationName    *byte
	ApplicationVersion uint32
	EngineName         *byte
	EngineVersion      uint32
	APIVersion         uint32
}

type InstanceCreateInfo struct {
	SType                 StructureType
	Next                  unsafe.Pointer
	Flags                 uint32
	ApplicationInfo       *ApplicationInfo
	EnabledLayerCount     uint32
	EnabledLayerNames     **byte
	EnabledExtensionCount uint32
	EnabledExtensionNames **byte
}

type DeviceQueueCreateInfo struct {
	SType            StructureType
	Next             unsafe.Pointer
	Flags            uint32
	QueueFamilyIndex uint32
	QueueCount       uint32
	QueuePriorities  *float32
}

type DeviceCreateInfo struct {
	SType                 StructureType
	Next                  unsafe.Pointer
	Flags                 uint32
	QueueCreateInfoCount  uint32
	QueueCreateInfos      *DeviceQueueCreateInfo
	EnabledLayerCount     uint32
	EnabledLayerNames     **byte
	EnabledExtensionCount uint32
	EnabledExtensionNames **byte
	EnabledFeatures       *PhysicalDeviceFeatures
}

type DebugUtilsMessengerCreateInfoEXT struct {
	SType           StructureType
	Next            unsafe.Pointer
	Flags           uint32
	MessageSeverity DebugUtilsMessageSeverityFlags
	MessageType     DebugUtilsMessageTypeFlags
	UserCallback    uintptr
	UserData        unsafe.Pointer
}

// DebugUtilsMessengerCallbackDataEXT is the payload the driver hands to a messenger callback.
// Labels and objects are left opaque.
type DebugUtilsMessengerCallbackDataEXT struct {
	SType            StructureType
	Next             unsafe.Pointer
	Flags            uint32
	MessageIDName    *byte
	MessageIDNumber  int32
	Message          *byte
	QueueLabelCount  uint32
	QueueLabels      unsafe.Pointer
	CmdBufLabelCount uint32
	CmdBufLabels     unsafe.Pointer
	ObjectCount      uint32
	Objects          unsafe.Pointer
}

// MessageIDString returns the message identifier name, which may be empty
func (d *DebugUtilsMessengerCallbackDataEXT) MessageIDString() string {
	return utils.GoString(d.MessageIDName)
}

func (d *DebugUtilsMessengerCallbackDataEXT) MessageString() string {
	return utils.GoString(d.Message)
}

type ExtensionProperties struct {
	ExtensionName [maxExtensionNameSize]byte
	SpecVersion   uint32
}

// Name returns the extension name without its NUL padding
func (p *ExtensionProperties) Name() string {
	return fixedString(p.ExtensionName[:])
}

type LayerProperties struct {
	LayerName             [maxExtensionNameSize]byte
	SpecVersion           uint32
	ImplementationVersion uint32
	Description           [maxDescriptionSize]byte
}

// Name returns the layer name without its NUL padding
func (p *LayerProperties) Name() string {
	return fixedString(p.LayerName[:])
}

func fixedString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

type QueueFamilyProperties struct {
	QueueFlags                  QueueFlags
	QueueCount                  uint32
	TimestampValidBits          uint32
	MinImageTransferGranularity Extent3D
}

type FormatProperties struct {
	LinearTilingFeatures  uint32
	OptimalTilingFeatures uint32
	BufferFeatures        uint32
}

type MemoryType struct {
	PropertyFlags MemoryPropertyFlags
	HeapIndex     uint32
}

type MemoryHeap struct {
	Size  uint64
	Flags uint32
}

type PhysicalDeviceMemoryProperties struct {
	MemoryTypeCount uint32
	MemoryTypes     [maxMemoryTypes]MemoryType
	MemoryHeapCount uint32
	MemoryHeaps     [maxMemoryHeaps]MemoryHeap
}

type PhysicalDeviceLimits struct {
	MaxImageDimension1D                             uint32
	MaxImageDimension2D                             uint32
	MaxImageDimension3D                             uint32
	MaxImageDimensionCube                           uint32
	MaxImageArrayLayers                             uint32
	MaxTexelBufferElements                          uint32
	MaxUniformBufferRange                           uint32
	MaxStorageBufferRange                           uint32
	MaxPushConstantsSize                            uint32
	MaxMemoryAllocationCount                        uint32
	MaxSamplerAllocationCount                       uint32
	BufferImageGranularity                          uint64
	SparseAddressSpaceSize                          uint64
	MaxBoundDescriptorSets                          uint32
	MaxPerStageDescriptorSamplers                   uint32
	MaxPerStageDescriptorUniformBuffers             uint32
	MaxPerStageDescriptorStorageBuffers             uint32
	MaxPerStageDescriptorSampledImages              uint32
	MaxPerStageDescriptorStorageImages              uint32
	MaxPerStageDescriptorInputAttachments           uint32
	MaxPerStageResources                            uint32
	MaxDescriptorSetSamplers                        uint32
	MaxDescriptorSetUniformBuffers                  uint32
	MaxDescriptorSetUniformBuffersDynamic           uint32
	MaxDescriptorSetStorageBuffers                  uint32
	MaxDescriptorSetStorageBuffersDynamic           uint32
	MaxDescriptorSetSampledImages                   uint32
	MaxDescriptorSetStorageImages                   uint32
	MaxDescriptorSetInputAttachments                uint32
	MaxVertexInputAttributes                        uint32
	MaxVertexInputBindings                          uint32
	MaxVertexInputAttributeOffset                   uint32
	MaxVertexInputBindingStride                     uint32
	MaxVertexOutputComponents                       uint32
	MaxTessellationGenerationLevel                  uint32
	MaxTessellationPatchSize                        uint32
	MaxTessellationControlPerVertexInputComponents  uint32
	MaxTessellationControlPerVertexOutputComponents uint32
	MaxTessellationControlPerPatchOutputComponents  uint32
	MaxTessellationControlTotalOutputComponents     uint32
	MaxTessellationEvaluationInputComponents        uint32
	MaxTessellationEvaluationOutputComponents       uint32
	MaxGeometryShaderInvocations                    uint32
	MaxGeometryInputComponents                      uint32
	MaxGeometryOutputComponents                     uint32
	MaxGeometryOutputVertices                       uint32
	MaxGeometryTotalOutputComponents                uint32
	MaxFragmentInputComponents                      uint32
	MaxFragmentOutputAttachments                    uint32
	MaxFragmentDualSrcAttachments                   uint32
	MaxFragmentCombinedOutputResources              uint32
	MaxComputeSharedMemorySize                      uint32
	MaxComputeWorkGroupCount                        [3]uint32
	MaxComputeWorkGroupInvocations                  uint32
	MaxComputeWorkGroupSize                         [3]uint32
	SubPixelPrecisionBits                           uint32
	SubTexelPrecisionBits                           uint32
	MipmapPrecisionBits                             uint32
	MaxDrawIndexedIndexValue                        uint32
	MaxDrawIndirectCount                            uint32
	MaxSamplerLodBias                               float32
	MaxSamplerAnisotropy                            float32
	MaxViewports                                    uint32
	MaxViewportDimensions                           [2]uint32
	ViewportBoundsRange                             [2]float32
	ViewportSubPixelBits                            uint32
	MinMemoryMapAlignment                           uintptr
	MinTexelBufferOffsetAlignment                   uint64
	MinUniformBufferOffsetAlignment                 uint64
	MinStorageBufferOffsetAlignment                 uint64
	MinTexelOffset                                  int32
	MaxTexelOffset                                  uint32
	MinTexelGatherOffset                            int32
	MaxTexelGatherOffset                            uint32
	MinInterpolationOffset                          float32
	MaxInterpolationOffset                          float32
	SubPixelInterpolationOffsetBits                 uint32
	MaxFramebufferWidth                             uint32
	MaxFramebufferHeight                            uint32
	MaxFramebufferLayers                            uint32
	FramebufferColorSampleCounts                    uint32
	FramebufferDepthSampleCounts                    uint32
	FramebufferStencilSampleCounts                  uint32
	FramebufferNoAttachmentsSampleCounts            uint32
	MaxColorAttachments                             uint32
	SampledImageColorSampleCounts                   uint32
	SampledImageIntegerSampleCounts                 uint32
	SampledImageDepthSampleCounts                   uint32
	SampledImageStencilSampleCounts                 uint32
	StorageImageSampleCounts                        uint32
	MaxSampleMaskWords                              uint32
	TimestampComputeAndGraphics                     Bool32
	TimestampPeriod                                 float32
	MaxClipDistances                                uint32
	MaxCullDistances                                uint32
	MaxCombinedClipAndCullDistances                 uint32
	DiscreteQueuePriorities                         uint32
	PointSizeRange                                  [2]float32
	LineWidthRange                                  [2]float32
	PointSizeGranularity                            float32
	LineWidthGranularity                            float32
	StrictLines                                     Bool32
	StandardSampleLocations                         Bool32
	OptimalBufferCopyOffsetAlignment                uint64
	OptimalBufferCopyRowPitchAlignment              uint64
	NonCoherentAtomSize                             uint64
}

type PhysicalDeviceSparseProperties struct {
	ResidencyStandard2DBlockShape            Bool32
	ResidencyStandard2DMultisampleBlockShape Bool32
	ResidencyStandard3DBlockShape            Bool32
	ResidencyAlignedMipSize                  Bool32
	ResidencyNonResidentStrict               Bool32
}

type PhysicalDeviceProperties struct {
	APIVersion        uint32
	DriverVersion     uint32
	VendorID          uint32
	DeviceID          uint32
	DeviceType        PhysicalDeviceType
	DeviceName        [maxExtensionNameSize]byte
	PipelineCacheUUID [uuidSize]byte
	Limits            PhysicalDeviceLimits
	SparseProperties  PhysicalDeviceSparseProperties
}

// Name returns the device name without its NUL padding
func (p *PhysicalDeviceProperties) Name() string {
	return fixedString(p.DeviceName[:])
}

type PhysicalDeviceProperties2 struct {
	SType      StructureType
	Next       unsafe.Pointer
	Properties PhysicalDeviceProperties
}

type PhysicalDeviceFeatures struct {
	RobustBufferAccess                      Bool32
	FullDrawIndexUint32                     Bool32
	ImageCubeArray                          Bool32
	IndependentBlend                        Bool32
	GeometryShader                          Bool32
	TessellationShader                      Bool32
	SampleRateShading                       Bool32
	DualSrcBlend                            Bool32
	LogicOp                                 Bool32
	MultiDrawIndirect                       Bool32
	DrawIndirectFirstInstance               Bool32
	DepthClamp                              Bool32
	DepthBiasClamp                          Bool32
	FillModeNonSolid                        Bool32
	DepthBounds                             Bool32
	WideLines                               Bool32
	LargePoints                             Bool32
	AlphaToOne                              Bool32
	MultiViewport                           Bool32
	SamplerAnisotropy                       Bool32
	TextureCompressionETC2                  Bool32
	TextureCompressionASTCLDR               Bool32
	TextureCompressionBC                    Bool32
	OcclusionQueryPrecise                   Bool32
	PipelineStatisticsQuery                 Bool32
	VertexPipelineStoresAndAtomics          Bool32
	FragmentStoresAndAtomics                Bool32
	ShaderTessellationAndGeometryPointSize  Bool32
	ShaderImageGatherExtended               Bool32
	ShaderStorageImageExtendedFormats       Bool32
	ShaderStorageImageMultisample           Bool32
	ShaderStorageImageReadWithoutFormat     Bool32
	ShaderStorageImageWriteWithoutFormat    Bool32
	ShaderUniformBufferArrayDynamicIndexing Bool32
	ShaderSampledImageArrayDynamicIndexing  Bool32
	ShaderStorageBufferArrayDynamicIndexing Bool32
	ShaderStorageImageArrayDynamicIndexing  Bool32
	ShaderClipDistance                      Bool32
	ShaderCullDistance                      Bool32
	ShaderFloat64                           Bool32
	ShaderInt64                             Bool32
	ShaderInt16                             Bool32
	ShaderResourceResidency                 Bool32
	ShaderResourceMinLod                    Bool32
	SparseBinding                           Bool32
	SparseResidencyBuffer                   Bool32
	SparseResidencyImage2D                  Bool32
	SparseResidencyImage3D                  Bool32
	SparseResidency2Samples                 Bool32
	SparseResidency4Samples                 Bool32
	SparseResidency8Samples                 Bool32
	SparseResidency16Samples                Bool32
	SparseResidencyAliased                  Bool32
	VariableMultisampleRate                 Bool32
	InheritedQueries                        Bool32
}

type PhysicalDeviceFeatures2 struct {
	SType    StructureType
	Next     unsafe.Pointer
	Features PhysicalDeviceFeatures
}

type SurfaceCapabilitiesKHR struct {
	MinImageCount           uint32
	MaxImageCount           uint32
	CurrentExtent           Extent2D
	MinImageExtent          Extent2D
	MaxImageExtent          Extent2D
	MaxImageArrayLayers     uint32
	SupportedTransforms     uint32
	CurrentTransform        uint32
	SupportedCompositeAlpha uint32
	SupportedUsageFlags     uint32
}

type SurfaceFormatKHR struct {
	Format     Format
	ColorSpace int32
}

type MemoryRequirements struct {
	Size           uint64
	Alignment      uint64
	MemoryTypeBits uint32
}

type MemoryAllocateInfo struct {
	SType           StructureType
	Next            unsafe.Pointer
	AllocationSize  uint64
	MemoryTypeIndex uint32
}

type MappedMemoryRange struct {
	SType  StructureType
	Next   unsafe.Pointer
	Memory VkDeviceMemory
	Offset uint64
	Size   uint64
}

type BufferCreateInfo struct {
	SType                 StructureType
	Next                  unsafe.Pointer
	Flags                 uint32
	Size                  uint64
	Usage                 uint32
	SharingMode           int32
	QueueFamilyIndexCount uint32
	QueueFamilyIndices    *uint32
}

type BufferViewCreateInfo struct {
	SType  StructureType
	Next   unsafe.Pointer
	Flags  uint32
	Buffer VkBuffer
	Format Format
	Offset uint64
	Range  uint64
}

type ImageCreateInfo struct {
	SType                 StructureType
	Next                  unsafe.Pointer
	Flags                 uint32
	ImageType             int32
	Format                Format
	Extent                Extent3D
	MipLevels             uint32
	ArrayLayers           uint32
	Samples               uint32
	Tiling                int32
	Usage                 uint32
	SharingMode           int32
	QueueFamilyIndexCount uint32
	QueueFamilyIndices    *uint32
	InitialLayout         ImageLayout
}

type ComponentMapping struct {
	R int32
	G int32
	B int32
	A int32
}

type ImageSubresourceRange struct {
	AspectMask     uint32
	BaseMipLevel   uint32
	LevelCount     uint32
	BaseArrayLayer uint32
	LayerCount     uint32
}

type ImageSubresourceLayers struct {
	AspectMask     uint32
	MipLevel       uint32
	BaseArrayLayer uint32
	LayerCount     uint32
}

type ImageViewCreateInfo struct {
	SType            StructureType
	Next             unsafe.Pointer
	Flags            uint32
	Image            VkImage
	ViewType         int32
	Format           Format
	Components       ComponentMapping
	SubresourceRange ImageSubresourceRange
}

type SemaphoreCreateInfo struct {
	SType StructureType
	Next  unsafe.Pointer
	Flags uint32
}

type FenceCreateInfo struct {
	SType StructureType
	Next  unsafe.Pointer
	Flags FenceCreateFlags
}

type DescriptorPoolSize struct {
	Type            DescriptorType
	DescriptorCount uint32
}

type DescriptorPoolCreateInfo struct {
	SType         StructureType
	Next          unsafe.Pointer
	Flags         DescriptorPoolCreateFlags
	MaxSets       uint32
	PoolSizeCount uint32
	PoolSizes     *DescriptorPoolSize
}

type DescriptorSetAllocateInfo struct {
	SType              StructureType
	Next               unsafe.Pointer
	DescriptorPool     VkDescriptorPool
	DescriptorSetCount uint32
	SetLayouts         *VkDescriptorSetLayout
}

type DescriptorSetLayoutBinding struct {
	Binding           uint32
	DescriptorType    DescriptorType
	DescriptorCount   uint32
	StageFlags        uint32
	ImmutableSamplers *VkSampler
}

type DescriptorSetLayoutCreateInfo struct {
	SType        StructureType
	Next         unsafe.Pointer
	Flags        uint32
	BindingCount uint32
	Bindings     *DescriptorSetLayoutBinding
}

type DescriptorUpdateTemplateEntry struct {
	DstBinding      uint32
	DstArrayElement uint32
	DescriptorCount uint32
	DescriptorType  DescriptorType
	Offset          uintptr
	Stride          uintptr
}

type DescriptorUpdateTemplateCreateInfo struct {
	SType                      StructureType
	Next                       unsafe.Pointer
	Flags                      uint32
	DescriptorUpdateEntryCount uint32
	DescriptorUpdateEntries    *DescriptorUpdateTemplateEntry
	TemplateType               int32
	DescriptorSetLayout        VkDescriptorSetLayout
	PipelineBindPoint          PipelineBindPoint
	PipelineLayout             VkPipelineLayout
	Set                        uint32
}

type DescriptorImageInfo struct {
	Sampler     VkSampler
	ImageView   VkImageView
	ImageLayout ImageLayout
}

type DescriptorBufferInfo struct {
	Buffer VkBuffer
	Offset uint64
	Range  uint64
}

type WriteDescriptorSet struct {
	SType           StructureType
	Next            unsafe.Pointer
	DstSet          VkDescriptorSet
	DstBinding      uint32
	DstArrayElement uint32
	DescriptorCount uint32
	DescriptorType  DescriptorType
	ImageInfo       *DescriptorImageInfo
	BufferInfo      *DescriptorBufferInfo
	TexelBufferView *VkBufferView
}

type CopyDescriptorSet struct {
	SType           StructureType
	Next            unsafe.Pointer
	SrcSet          VkDescriptorSet
	SrcBinding      uint32
	SrcArrayElement uint32
	DstSet          VkDescriptorSet
	DstBinding      uint32
	DstArrayElement uint32
	DescriptorCount uint32
}

type PushConstantRange struct {
	StageFlags uint32
	Offset     uint32
	Size       uint32
}

type PipelineLayoutCreateInfo struct {
	SType                  StructureType
	Next                   unsafe.Pointer
	Flags                  uint32
	SetLayoutCount         uint32
	SetLayouts             *VkDescriptorSetLayout
	PushConstantRangeCount uint32
	PushConstantRanges     *PushConstantRange
}

type PipelineShaderStageCreateInfo struct {
	SType              StructureType
	Next               unsafe.Pointer
	Flags              uint32
	Stage              uint32
	Module             VkShaderModule
	Name               *byte
	SpecializationInfo unsafe.Pointer
}

// GraphicsPipelineCreateInfo keeps the fixed-function sub-states opaque. Callers build them
// with their own C-layout types.
type GraphicsPipelineCreateInfo struct {
	SType              StructureType
	Next               unsafe.Pointer
	Flags              uint32
	StageCount         uint32
	Stages             *PipelineShaderStageCreateInfo
	VertexInputState   unsafe.Pointer
	InputAssemblyState unsafe.Pointer
	TessellationState  unsafe.Pointer
	ViewportState      unsafe.Pointer
	RasterizationState unsafe.Pointer
	MultisampleState   unsafe.Pointer
	DepthStencilState  unsafe.Pointer
	ColorBlendState    unsafe.Pointer
	DynamicState       unsafe.Pointer
	Layout             VkPipelineLayout
	RenderPass         VkRenderPass
	Subpass            uint32
	BasePipelineHandle VkPipeline
	BasePipelineIndex  int32
}

type ComputePipelineCreateInfo struct {
	SType              StructureType
	Next               unsafe.Pointer
	Flags              uint32
	Stage              PipelineShaderStageCreateInfo
	Layout             VkPipelineLayout
	BasePipelineHandle VkPipeline
	BasePipelineIndex  int32
}

type SamplerCreateInfo struct {
	SType                   StructureType
	Next                    unsafe.Pointer
	Flags                   uint32
	MagFilter               SamplerFilter
	MinFilter               SamplerFilter
	MipmapMode              int32
	AddressModeU            int32
	AddressModeV            int32
	AddressModeW            int32
	MipLodBias              float32
	AnisotropyEnable        Bool32
	MaxAnisotropy           float32
	CompareEnable           Bool32
	CompareOp               int32
	MinLod                  float32
	MaxLod                  float32
	BorderColor             int32
	UnnormalizedCoordinates Bool32
}

type AttachmentDescription struct {
	Flags          uint32
	Format         Format
	Samples        uint32
	LoadOp         int32
	StoreOp        int32
	StencilLoadOp  int32
	StencilStoreOp int32
	InitialLayout  ImageLayout
	FinalLayout    ImageLayout
}

type AttachmentReference struct {
	Attachment uint32
	Layout     ImageLayout
}

type SubpassDescription struct {
	Flags                   uint32
	PipelineBindPoint       PipelineBindPoint
	InputAttachmentCount    uint32
	InputAttachments        *AttachmentReference
	ColorAttachmentCount    uint32
	ColorAttachments        *AttachmentReference
	ResolveAttachments      *AttachmentReference
	DepthStencilAttachment  *AttachmentReference
	PreserveAttachmentCount uint32
	PreserveAttachments     *uint32
}

type SubpassDependency struct {
	SrcSubpass      uint32
	DstSubpass      uint32
	SrcStageMask    uint32
	DstStageMask    uint32
	SrcAccessMask   uint32
	DstAccessMask   uint32
	DependencyFlags uint32
}

type RenderPassCreateInfo struct {
	SType           StructureType
	Next            unsafe.Pointer
	Flags           uint32
	AttachmentCount uint32
	Attachments     *AttachmentDescription
	SubpassCount    uint32
	Subpasses       *SubpassDescription
	DependencyCount uint32
	Dependencies    *SubpassDependency
}

type FramebufferCreateInfo struct {
	SType           StructureType
	Next            unsafe.Pointer
	Flags           uint32
	RenderPass      VkRenderPass
	AttachmentCount uint32
	Attachments     *VkImageView
	Width           uint32
	Height          uint32
	Layers          uint32
}

type CommandPoolCreateInfo struct {
	SType            StructureType
	Next             unsafe.Pointer
	Flags            CommandPoolCreateFlags
	QueueFamilyIndex uint32
}

type CommandBufferAllocateInfo struct {
	SType              StructureType
	Next               unsafe.Pointer
	CommandPool        VkCommandPool
	Level              CommandBufferLevel
	CommandBufferCount uint32
}

type CommandBufferBeginInfo struct {
	SType           StructureType
	Next            unsafe.Pointer
	Flags           uint32
	InheritanceInfo unsafe.Pointer
}

type QueryPoolCreateInfo struct {
	SType              StructureType
	Next               unsafe.Pointer
	Flags              uint32
	QueryType          int32
	QueryCount         uint32
	PipelineStatistics uint32
}

type ShaderModuleCreateInfo struct {
	SType    StructureType
	Next     unsafe.Pointer
	Flags    uint32
	CodeSize uintptr
	Code     *uint32
}

type SwapchainCreateInfoKHR struct {
	SType                 StructureType
	Next                  unsafe.Pointer
	Flags                 uint32
	Surface               VkSurfaceKHR
	MinImageCount         uint32
	ImageFormat           Format
	ImageColorSpace       int32
	ImageExtent           Extent2D
	ImageArrayLayers      uint32
	ImageUsage            uint32
	ImageSharingMode      int32
	QueueFamilyIndexCount uint32
	QueueFamilyIndices    *uint32
	PreTransform          uint32
	CompositeAlpha        uint32
	PresentMode           PresentModeKHR
	Clipped               Bool32
	OldSwapchain          VkSwapchainKHR
}

type SubmitInfo struct {
	SType                StructureType
	Next                 unsafe.Pointer
	WaitSemaphoreCount   uint32
	WaitSemaphores       *VkSemaphore
	WaitDstStageMask     *uint32
	CommandBufferCount   uint32
	CommandBuffers       *VkCommandBuffer
	SignalSemaphoreCount uint32
	SignalSemaphores     *VkSemaphore
}

type PresentInfoKHR struct {
	SType              StructureType
	Next               unsafe.Pointer
	WaitSemaphoreCount uint32
	WaitSemaphores     *VkSemaphore
	SwapchainCount     uint32
	Swapchains         *VkSwapchainKHR
	ImageIndices       *uint32
	Results            *Result
}

type CheckpointDataNV struct {
	SType            StructureType
	Next             unsafe.Pointer
	Stage            uint32
	CheckpointMarker unsafe.Pointer
}

type RenderPassBeginInfo struct {
	SType           StructureType
	Next            unsafe.Pointer
	RenderPass      VkRenderPass
	Framebuffer     VkFramebuffer
	RenderArea      Rect2D
	ClearValueCount uint32
	ClearValues     *ClearValue
}

type MemoryBarrier struct {
	SType         StructureType
	Next          unsafe.Pointer
	SrcAccessMask uint32
	DstAccessMask uint32
}

type BufferMemoryBarrier struct {
	SType               StructureType
	Next                unsafe.Pointer
	SrcAccessMask       uint32
	DstAccessMask       uint32
	SrcQueueFamilyIndex uint32
	DstQueueFamilyIndex uint32
	Buffer              VkBuffer
	Offset              uint64
	Size                uint64
}

type ImageMemoryBarrier struct {
	SType               StructureType
	Next                unsafe.Pointer
	SrcAccessMask       uint32
	DstAccessMask       uint32
	OldLayout           ImageLayout
	NewLayout           ImageLayout
	SrcQueueFamilyIndex uint32
	DstQueueFamilyIndex uint32
	Image               VkImage
	SubresourceRange    ImageSubresourceRange
}

type BufferCopy struct {
	SrcOffset uint64
	DstOffset uint64
	Size      uint64
}

type BufferImageCopy struct {
	BufferOffset      uint64
	BufferRowLength   uint32
	BufferImageHeight uint32
	ImageSubresource  ImageSubresourceLayers
	ImageOffset       Offset3D
	ImageExtent       Extent3D
}

type ImageCopy struct {
	SrcSubresource ImageSubresourceLayers
	SrcOffset      Offset3D
	DstSubresource ImageSubresourceLayers
	DstOffset      Offset3D
	Extent         Extent3D
}

type ImageBlit struct {
	SrcSubresource ImageSubresourceLayers
	SrcOffsets     [2]Offset3D
	DstSubresource ImageSubresourceLayers
	DstOffsets     [2]Offset3D
}

type ClearAttachment struct {
	AspectMask      uint32
	ColorAttachment uint32
	ClearValue      ClearValue
}

type ClearRect struct {
	Rect           Rect2D
	BaseArrayLayer uint32
	LayerCount     uint32
}
