package bmi2

import (
	"os"
	"strconv"
)

// Level identifies which implementation backs the exported functions.
type Level int

const (
	// LevelScalar indicates the pure Go implementation.
	LevelScalar Level = iota

	// LevelBMI2 indicates the hardware PEXT/PDEP/BZHI instructions.
	LevelBMI2
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelBMI2:
		return "bmi2"
	default:
		return "unknown"
	}
}

// currentLevel is set by init() in dispatch_*.go files.
var currentLevel Level

// CurrentLevel returns the implementation in use.
func CurrentLevel() Level {
	return currentLevel
}

// HasBMI2 reports whether the hardware instructions are in use.
func HasBMI2() bool {
	return currentLevel == LevelBMI2
}

// NoAsmEnv checks if the STDSIMD_NO_ASM environment variable is set.
// When set, the pure Go implementation is used regardless of CPU capabilities.
func NoAsmEnv() bool {
	val := os.Getenv("STDSIMD_NO_ASM")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setScalarMode() {
	currentLevel = LevelScalar
	bzhi32Impl = bzhi32Base
	bzhi64Impl = bzhi64Base
	pdep32Impl = pdep32Base
	pdep64Impl = pdep64Base
	pext32Impl = pext32Base
	pext64Impl = pext64Base
}
