// Package settings loads opensslpack's optional YAML config file.
//
// Every value can also be given on the command line or through the
// environment. Values are resolved in order: flag, environment variable,
// config file, built-in default. The config file is read from the --config
// flag if given, otherwise from $XDG_CONFIG_HOME/opensslpack/config.yaml when
// that file exists. A missing default file is not an error; a missing file
// named with --config is.
//
// Example config file:
//
//	vcvarsall: C:\Program Files (x86)\Microsoft Visual Studio\2017\BuildTools\VC\Auxiliary\Build\vcvarsall.bat
//	source: C:\src\openssl-3.1.2
//	output: C:\dist
//	toolset: vs2017
//	jobs: 2
//
// The target list is compiled in and cannot be changed here.
package settings
