// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build !nogpu

package gpu

import (
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/sight/accel"
	"github.com/gogpu/sight/internal/logging"
)

func init() {
	if err := accel.Register(&CubeAccelerator{}); err != nil {
		logging.Logger().Warn("GPU accelerator not available", "err", err)
	}
}

// SetDeviceProvider makes the registered accelerator share the device of a
// host application instead of opening its own. The provider must also
// expose its HAL device and queue through HalDevice and HalQueue.
func SetDeviceProvider(provider gpucontext.DeviceProvider) error {
	return accel.SetDeviceProvider(provider)
}
