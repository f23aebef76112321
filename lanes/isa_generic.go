// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build purego || !(amd64 || arm64)

package lanes

func init() {
	initCapabilities()
}
