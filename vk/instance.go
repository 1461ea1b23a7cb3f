package vk

import (
	"runtime"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v2/common"
	"golang.org/x/exp/slog"

	"github.com/vkngwrapper/vkw/vk/internal/utils"
)

// InstanceCreateOptions describes the instance to create. Strings are copied into pinned
// native storage for the duration of the create call.
type InstanceCreateOptions struct {
	ApplicationName    string
	ApplicationVersion common.Version
	EngineName         string
	EngineVersion      common.Version
	// APIVersion defaults to Vulkan 1.0 when left zero
	APIVersion common.APIVersion

	Layers     []string
	Extensions []string

	Next unsafe.Pointer
}

// Instance owns a VkInstance together with the dispatch table loaded for it
type Instance struct {
	Ownerless[VkInstance, InstanceDispatch]
}

func (i *Instance) Take() Instance {
	return Instance{Ownerless: i.Ownerless.Take()}
}

func (i *Instance) MoveFrom(src *Instance) {
	i.Ownerless.MoveFrom(&src.Ownerless)
}

// CreateInstance creates an instance and loads its instance tier into dld. Failure is not
// an error: the returned Instance is empty and the reason is logged. dld must already hold
// the global tier (see Load).
func CreateInstance(options InstanceCreateOptions, dld *InstanceDispatch) Instance {
	logger := dld.logger()
	if dld.CreateInstance == nil || dld.GetInstanceProcAddr == nil || dld.Bind == nil {
		logger.Error("Instance::Create global entry points were not loaded")
		return Instance{}
	}

	apiVersion := options.APIVersion
	if apiVersion == 0 {
		apiVersion = common.Vulkan1_0
	}

	appName, unpinApp := utils.CString(options.ApplicationName)
	defer unpinApp()
	engineName, unpinEngine := utils.CString(options.EngineName)
	defer unpinEngine()
	layers := utils.NewCStringArray(options.Layers)
	defer layers.Unpin()
	extensions := utils.NewCStringArray(options.Extensions)
	defer extensions.Unpin()

	appInfo := ApplicationInfo{
		SType:              StructureTypeApplicationInfo,
		ApplicationName:    appName,
		ApplicationVersion: uint32(options.ApplicationVersion),
		EngineName:         engineName,
		EngineVersion:      uint32(options.EngineVersion),
		APIVersion:         uint32(apiVersion),
	}
	info := InstanceCreateInfo{
		SType:                 StructureTypeInstanceCreateInfo,
		Next:                  options.Next,
		ApplicationInfo:       &appInfo,
		EnabledLayerCount:     layers.Len(),
		EnabledLayerNames:     layers.Data(),
		EnabledExtensionCount: extensions.Len(),
		EnabledExtensionNames: extensions.Data(),
	}

	var pinner runtime.Pinner
	defer pinner.Unpin()
	pinner.Pin(&appInfo)
	pinner.Pin(&info)
	if options.Next != nil {
		pinner.Pin(options.Next)
	}

	logger.Debug("Instance::Create",
		slog.String("APIVersion", apiVersion.String()),
		slog.Int("Layers", len(options.Layers)),
		slog.Int("Extensions", len(options.Extensions)),
	)

	var instance VkInstance
	if result := dld.CreateInstance(&info, nil, &instance); result != VKSuccess {
		logger.Error("Instance::Create failed", slog.String("Result", result.String()))
		return Instance{}
	}

	// The destroy entry point is resolved first so a failed tier load can still release
	// the instance.
	if addr := dld.GetInstanceProcAddr(instance, "vkDestroyInstance"); addr != 0 {
		dld.Bind(&dld.DestroyInstance, addr)
	} else {
		logger.Error("Instance::Create vkDestroyInstance not resolved, the instance will leak")
		return Instance{}
	}

	if !LoadInstance(instance, dld) {
		logger.Error("Instance::Create failed to load instance entry points")
		dld.DestroyInstance(instance, nil)
		return Instance{}
	}
	return Instance{Ownerless: NewOwnerless(instance, dld)}
}

// EnumeratePhysicalDevices lists the physical devices of the instance. The second return is
// false when enumeration itself failed, which is distinct from an empty list.
func (i *Instance) EnumeratePhysicalDevices() ([]VkPhysicalDevice, bool) {
	devices, err := enumerate(func(count *uint32, devices *VkPhysicalDevice) Result {
		return i.dld.EnumeratePhysicalDevices(i.handle, count, devices)
	})
	if err != nil {
		i.dld.logger().Error("Instance::EnumeratePhysicalDevices failed", slog.Any("error", err))
		return nil, false
	}
	if devices == nil {
		devices = []VkPhysicalDevice{}
	}
	return devices, true
}

// PhysicalDevices wraps every enumerated physical device with this instance's table
func (i *Instance) PhysicalDevices() ([]PhysicalDevice, bool) {
	raw, ok := i.EnumeratePhysicalDevices()
	if !ok {
		return nil, false
	}
	devices := make([]PhysicalDevice, len(raw))
	for index, handle := range raw {
		devices[index] = NewPhysicalDevice(handle, i.dld)
	}
	return devices, true
}

// TryCreateDebugCallback registers callback for warnings and errors from the general,
// validation and performance message types. callback is a native function address, for
// example one returned by loader.NewDebugCallback. The result is empty when debug utils are
// unavailable or registration fails.
func (i *Instance) TryCreateDebugCallback(callback uintptr) DebugCallback {
	if i.dld.CreateDebugUtilsMessengerEXT == nil || i.dld.DestroyDebugUtilsMessengerEXT == nil {
		i.dld.logger().Debug("Instance::TryCreateDebugCallback debug utils unavailable")
		return DebugCallback{}
	}
	info := DebugUtilsMessengerCreateInfoEXT{
		SType:           StructureTypeDebugUtilsMessengerCreateInfoEXT,
		MessageSeverity: DebugUtilsMessageSeverityError | DebugUtilsMessageSeverityWarning,
		MessageType:     DebugUtilsMessageTypeGeneral | DebugUtilsMessageTypeValidation | DebugUtilsMessageTypePerformance,
		UserCallback:    callback,
	}
	var messenger VkDebugUtilsMessengerEXT
	if result := i.dld.CreateDebugUtilsMessengerEXT(i.handle, &info, nil, &messenger); result != VKSuccess {
		i.dld.logger().Debug("Instance::TryCreateDebugCallback failed", slog.String("Result", result.String()))
		return DebugCallback{}
	}
	return NewHandle(messenger, i.handle, i.dld)
}

// EnumerateInstanceExtensionProperties lists the instance extensions the driver exposes. Only
// the global tier of dld needs to be loaded.
func EnumerateInstanceExtensionProperties(dld *InstanceDispatch) (ExtensionSet, error) {
	if dld.EnumerateInstanceExtensionProperties == nil {
		return ExtensionSet{}, missingEntryPoint("vkEnumerateInstanceExtensionProperties")
	}
	properties, err := enumerate(func(count *uint32, properties *ExtensionProperties) Result {
		return dld.EnumerateInstanceExtensionProperties(nil, count, properties)
	})
	if err != nil {
		return ExtensionSet{}, errors.Wrap(err, "enumerating instance extensions")
	}
	return NewExtensionSet(properties), nil
}

// EnumerateInstanceLayerProperties lists the layers the loader can enable
func EnumerateInstanceLayerProperties(dld *InstanceDispatch) ([]LayerProperties, error) {
	if dld.EnumerateInstanceLayerProperties == nil {
		return nil, missingEntryPoint("vkEnumerateInstanceLayerProperties")
	}
	properties, err := enumerate(dld.EnumerateInstanceLayerProperties)
	if err != nil {
		return nil, errors.Wrap(err, "enumerating instance layers")
	}
	return properties, nil
}
