// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package lanes

import (
	"os"
	"strings"

	"github.com/grailbio/base/log"
	"github.com/grailbio/base/simd"
)

// ISA identifies the instruction set the vector width was derived from.
type ISA uint8

const (
	// Generic is the pure-Go fallback.
	Generic ISA = iota
	// SSE42 is x86-64 SSE4.2 (128-bit).
	SSE42
	// NEON is arm64 ASIMD (128-bit).
	NEON
	// AVX2 is x86-64 AVX2 (256-bit).
	AVX2
	// AVX512 is x86-64 AVX-512 F+BW (512-bit).
	AVX512
)

// ISAEnv names the environment variable that overrides ISA detection.
const ISAEnv = "SIMDEXT_ISA"

// minVectorBytes is the narrowest vector width we ever use.  It keeps
// Width() >= 2 for 8-byte element types.
const minVectorBytes = 16

func (i ISA) String() string {
	switch i {
	case Generic:
		return "generic"
	case SSE42:
		return "sse42"
	case NEON:
		return "neon"
	case AVX2:
		return "avx2"
	case AVX512:
		return "avx512"
	default:
		return "unknown"
	}
}

// ParseISA parses the String() form of an ISA.  Matching is
// case-insensitive.
func ParseISA(s string) (ISA, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return Generic, true
	case "sse42":
		return SSE42, true
	case "neon":
		return NEON, true
	case "avx2":
		return AVX2, true
	case "avx512":
		return AVX512, true
	default:
		return Generic, false
	}
}

// Set by the platform-specific init().  Only initCapabilities writes these;
// outside of tests it runs exactly once.
var (
	activeISA   ISA
	hasOverride bool

	// vectorBytes is the size of a lane vector in bytes.  Always a power of
	// two.
	vectorBytes int

	hasSSE42  bool
	hasASIMD  bool
	hasAVX2   bool
	hasAVX512 bool
)

// initCapabilities picks the active ISA after the CPU feature flags are set.
func initCapabilities() {
	hasOverride = false
	activeISA = selectBestISA()
	if override := os.Getenv(ISAEnv); override != "" {
		isa, ok := ParseISA(override)
		switch {
		case !ok:
			log.Error.Printf("lanes: ignoring unparsable %s=%q", ISAEnv, override)
		case !isISAAvailable(isa):
			log.Error.Printf("lanes: ignoring %s=%q: not supported on this CPU", ISAEnv, override)
		default:
			activeISA = isa
			hasOverride = true
		}
	}
	vectorBytes = bytesForISA(activeISA)
	if vectorBytes&(vectorBytes-1) != 0 {
		log.Panicf("lanes: vector width %d is not a power of two", vectorBytes)
	}
	log.Debug.Printf("lanes: using %s, %d-byte vectors (override=%v)", activeISA, vectorBytes, hasOverride)
}

func isISAAvailable(isa ISA) bool {
	switch isa {
	case Generic:
		return true
	case SSE42:
		return hasSSE42
	case NEON:
		return hasASIMD
	case AVX2:
		return hasAVX2
	case AVX512:
		return hasAVX512
	default:
		return false
	}
}

func selectBestISA() ISA {
	switch {
	case hasAVX512:
		return AVX512
	case hasAVX2:
		return AVX2
	case hasSSE42:
		return SSE42
	case hasASIMD:
		return NEON
	default:
		return Generic
	}
}

func bytesForISA(isa ISA) int {
	switch isa {
	case AVX512:
		return 64
	case AVX2:
		return 32
	}
	n := simd.BytesPerVec()
	if n < minVectorBytes {
		n = minVectorBytes
	}
	return n
}

// ActiveISA returns the instruction set lane widths are derived from.
func ActiveISA() ISA {
	return activeISA
}

// IsOverridden reports whether SIMDEXT_ISA selected the active ISA.
func IsOverridden() bool {
	return hasOverride
}

// VectorBytes returns the process-wide lane vector width in bytes.
func VectorBytes() int {
	return vectorBytes
}
