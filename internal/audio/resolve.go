package audio

import (
	"fmt"
	"strconv"
)

// ResolveDevice turns a user-supplied device selector into a concrete
// catalog index. Classification order is fixed: an empty selector
// means the default device for the direction, a selector made only of
// decimal digits is an index, and anything else is an exact
// case-sensitive name match (first match wins). A device that happens
// to be named "3" is therefore only reachable by index.
func ResolveDevice(h Host, selector string, dir Direction) (int, error) {
	count, err := h.DeviceCount()
	if err != nil {
		return 0, fmt.Errorf("resolve device %q: %w", selector, err)
	}
	if count == 0 {
		return 0, fmt.Errorf("resolve device %q: %w", selector, ErrNoDevicesAvailable)
	}

	if selector == "" {
		index, err := h.DefaultDevice(dir)
		if err != nil {
			return 0, fmt.Errorf("resolve default %s device: %w", dir, err)
		}
		return index, nil
	}

	if allDigits(selector) {
		index, err := strconv.Atoi(selector)
		if err != nil || index >= count {
			return 0, fmt.Errorf("resolve device %q: %w", selector, ErrDeviceIndex)
		}
		return index, nil
	}

	for i := 0; i < count; i++ {
		info, err := h.DeviceInfo(i)
		if err != nil {
			return 0, fmt.Errorf("resolve device %q: %w", selector, err)
		}
		if info.Name == selector {
			return i, nil
		}
	}
	return 0, fmt.Errorf("resolve device %q: %w", selector, ErrDeviceNotFound)
}

func allDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
