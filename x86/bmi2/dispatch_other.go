//go:build !amd64 || noasm

package bmi2

func init() {
	// BMI2 only exists on x86; everything else uses the pure Go versions.
	setScalarMode()
}
