// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gpu registers a wgpu/hal compute accelerator for color cube
// stages.
//
// Import it for its side effect:
//
//	import _ "github.com/gogpu/sight/gpu"
//
// If no Vulkan adapter can be opened the registration is skipped and every
// stage keeps running on the CPU. Build with the nogpu tag to leave the
// accelerator out entirely.
package gpu
