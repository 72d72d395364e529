package di

// version is the library version, constant for a given build.
const version = "0.4.0"

// Version returns the library version string.
func Version() string { return version }
