package config

// CompiledInstallDir holds the install directory provided at build time via
// -ldflags. When empty, the directory containing the executable is used.
var CompiledInstallDir string
