package utils

import (
	"runtime"
	"unsafe"
)

// CStringArray is a set of NUL-terminated strings laid out as a native char** array. The
// backing memory stays pinned until Unpin is called, so the pointers may be stored inside
// parameter blocks handed to the driver.
type CStringArray struct {
	pinner  runtime.Pinner
	storage [][]byte
	ptrs    []*byte
}

// NewCStringArray copies strs into NUL-terminated storage and pins it
func NewCStringArray(strs []string) *CStringArray {
	a := &CStringArray{
		storage: make([][]byte, len(strs)),
		ptrs:    make([]*byte, len(strs)),
	}
	for i, s := range strs {
		b := make([]byte, len(s)+1)
		copy(b, s)
		a.storage[i] = b
		a.ptrs[i] = unsafe.SliceData(b)
		a.pinner.Pin(a.ptrs[i])
	}
	if len(a.ptrs) > 0 {
		a.pinner.Pin(unsafe.SliceData(a.ptrs))
	}
	return a
}

// Data returns the char** pointer, or nil for an empty array
func (a *CStringArray) Data() **byte {
	if len(a.ptrs) == 0 {
		return nil
	}
	return unsafe.SliceData(a.ptrs)
}

// Len returns the number of strings as a native count
func (a *CStringArray) Len() uint32 {
	return uint32(len(a.ptrs))
}

// Unpin releases the storage back to the garbage collector
func (a *CStringArray) Unpin() {
	a.pinner.Unpin()
}

// CString returns a pinned NUL-terminated copy of s and the function that unpins it. An empty
// string yields a nil pointer.
func CString(s string) (*byte, func()) {
	if s == "" {
		return nil, func() {}
	}
	b := make([]byte, len(s)+1)
	copy(b, s)
	ptr := unsafe.SliceData(b)
	var pinner runtime.Pinner
	pinner.Pin(ptr)
	return ptr, pinner.Unpin
}

// GoString reads a NUL-terminated string from native memory
func GoString(ptr *byte) string {
	if ptr == nil {
		return ""
	}
	var n int
	for *(*byte)(unsafe.Add(unsafe.Pointer(ptr), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(ptr, n))
}
