package vk

import (
	"github.com/cockroachdb/errors"
)

// PhysicalDevice is a non-owning view of a VkPhysicalDevice. Physical devices belong to
// their instance and are never destroyed individually.
type PhysicalDevice struct {
	handle VkPhysicalDevice
	dld    *InstanceDispatch
}

func NewPhysicalDevice(handle VkPhysicalDevice, dld *InstanceDispatch) PhysicalDevice {
	return PhysicalDevice{handle: handle, dld: dld}
}

func (p PhysicalDevice) Raw() VkPhysicalDevice {
	return p.handle
}

func (p PhysicalDevice) Dispatch() *InstanceDispatch {
	return p.dld
}

func (p PhysicalDevice) GetProperties() PhysicalDeviceProperties {
	var properties PhysicalDeviceProperties
	p.dld.GetPhysicalDeviceProperties(p.handle, &properties)
	return properties
}

// GetProperties2KHR fills properties, including any structures chained through its Next
// pointer. It does nothing when the properties2 extension was not loaded.
func (p PhysicalDevice) GetProperties2KHR(properties *PhysicalDeviceProperties2) {
	if p.dld.GetPhysicalDeviceProperties2KHR == nil {
		return
	}
	properties.SType = StructureTypePhysicalDeviceProperties2
	p.dld.GetPhysicalDeviceProperties2KHR(p.handle, properties)
}

// GetFeatures returns the core feature set. The query goes through features2, so the zero
// value is returned when that extension is unavailable.
func (p PhysicalDevice) GetFeatures() PhysicalDeviceFeatures {
	features := PhysicalDeviceFeatures2{SType: StructureTypePhysicalDeviceFeatures2}
	p.GetFeatures2KHR(&features)
	return features.Features
}

func (p PhysicalDevice) GetFeatures2KHR(features *PhysicalDeviceFeatures2) {
	if p.dld.GetPhysicalDeviceFeatures2KHR == nil {
		return
	}
	features.SType = StructureTypePhysicalDeviceFeatures2
	p.dld.GetPhysicalDeviceFeatures2KHR(p.handle, features)
}

func (p PhysicalDevice) GetFormatProperties(format Format) FormatProperties {
	var properties FormatProperties
	p.dld.GetPhysicalDeviceFormatProperties(p.handle, format, &properties)
	return properties
}

// EnumerateDeviceExtensionProperties lists the device extensions this physical device supports
func (p PhysicalDevice) EnumerateDeviceExtensionProperties() ([]ExtensionProperties, error) {
	properties, err := enumerate(func(count *uint32, properties *ExtensionProperties) Result {
		return p.dld.EnumerateDeviceExtensionProperties(p.handle, nil, count, properties)
	})
	if err != nil {
		return nil, errors.Wrap(err, "enumerating device extensions")
	}
	return properties, nil
}

// Extensions is EnumerateDeviceExtensionProperties indexed by name
func (p PhysicalDevice) Extensions() (ExtensionSet, error) {
	properties, err := p.EnumerateDeviceExtensionProperties()
	if err != nil {
		return ExtensionSet{}, err
	}
	return NewExtensionSet(properties), nil
}

func (p PhysicalDevice) GetQueueFamilyProperties() []QueueFamilyProperties {
	return enumerateNoResult(func(count *uint32, properties *QueueFamilyProperties) {
		p.dld.GetPhysicalDeviceQueueFamilyProperties(p.handle, count, properties)
	})
}

// GetSurfaceSupportKHR reports whether queueFamilyIndex can present to surface
func (p PhysicalDevice) GetSurfaceSupportKHR(queueFamilyIndex uint32, surface VkSurfaceKHR) (bool, error) {
	if p.dld.GetPhysicalDeviceSurfaceSupportKHR == nil {
		return false, missingEntryPoint("vkGetPhysicalDeviceSurfaceSupportKHR")
	}
	var supported Bool32
	if err := Check(p.dld.GetPhysicalDeviceSurfaceSupportKHR(p.handle, queueFamilyIndex, surface, &supported)); err != nil {
		return false, err
	}
	return supported == True, nil
}

func (p PhysicalDevice) GetSurfaceCapabilitiesKHR(surface VkSurfaceKHR) (SurfaceCapabilitiesKHR, error) {
	var capabilities SurfaceCapabilitiesKHR
	if p.dld.GetPhysicalDeviceSurfaceCapabilitiesKHR == nil {
		return capabilities, missingEntryPoint("vkGetPhysicalDeviceSurfaceCapabilitiesKHR")
	}
	err := Check(p.dld.GetPhysicalDeviceSurfaceCapabilitiesKHR(p.handle, surface, &capabilities))
	return capabilities, err
}

func (p PhysicalDevice) GetSurfaceFormatsKHR(surface VkSurfaceKHR) ([]SurfaceFormatKHR, error) {
	if p.dld.GetPhysicalDeviceSurfaceFormatsKHR == nil {
		return nil, missingEntryPoint("vkGetPhysicalDeviceSurfaceFormatsKHR")
	}
	return enumerate(func(count *uint32, formats *SurfaceFormatKHR) Result {
		return p.dld.GetPhysicalDeviceSurfaceFormatsKHR(p.handle, surface, count, formats)
	})
}

func (p PhysicalDevice) GetSurfacePresentModesKHR(surface VkSurfaceKHR) ([]PresentModeKHR, error) {
	if p.dld.GetPhysicalDeviceSurfacePresentModesKHR == nil {
		return nil, missingEntryPoint("vkGetPhysicalDeviceSurfacePresentModesKHR")
	}
	return enumerate(func(count *uint32, modes *PresentModeKHR) Result {
		return p.dld.GetPhysicalDeviceSurfacePresentModesKHR(p.handle, surface, count, modes)
	})
}

func (p PhysicalDevice) GetMemoryProperties() PhysicalDeviceMemoryProperties {
	var properties PhysicalDeviceMemoryProperties
	p.dld.GetPhysicalDeviceMemoryProperties(p.handle, &properties)
	return properties
}

// FindMemoryType returns the first memory type index allowed by typeBits whose property flags
// include properties
func (p PhysicalDevice) FindMemoryType(typeBits uint32, properties MemoryPropertyFlags) (uint32, bool) {
	memory := p.GetMemoryProperties()
	for i := uint32(0); i < memory.MemoryTypeCount; i++ {
		if typeBits&(1<<i) == 0 {
			continue
		}
		if memory.MemoryTypes[i].PropertyFlags&properties == properties {
			return i, true
		}
	}
	return 0, false
}
