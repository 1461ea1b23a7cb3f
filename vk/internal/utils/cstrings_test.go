package utils

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestCStringArray(t *testing.T) {
	names := []string{"VK_LAYER_KHRONOS_validation", "", "VK_KHR_surface"}
	array := NewCStringArray(names)
	defer array.Unpin()

	require.Equal(t, uint32(3), array.Len())
	ptrs := unsafe.Slice(array.Data(), array.Len())
	for i, name := range names {
		require.Equal(t, name, GoString(ptrs[i]))
	}
}

func TestCStringArrayEmpty(t *testing.T) {
	array := NewCStringArray(nil)
	defer array.Unpin()

	require.Zero(t, array.Len())
	require.Nil(t, array.Data())
}

func TestCString(t *testing.T) {
	ptr, unpin := CString("vkw")
	defer unpin()

	require.Equal(t, "vkw", GoString(ptr))
	require.Equal(t, byte(0), *(*byte)(unsafe.Add(unsafe.Pointer(ptr), 3)))

	empty, unpinEmpty := CString("")
	defer unpinEmpty()
	require.Nil(t, empty)
	require.Equal(t, "", GoString(nil))
}
