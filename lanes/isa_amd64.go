// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build amd64 && !purego

package lanes

import "golang.org/x/sys/cpu"

func init() {
	hasSSE42 = cpu.X86.HasSSE42
	hasAVX2 = cpu.X86.HasAVX2
	hasAVX512 = cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW
	initCapabilities()
}
