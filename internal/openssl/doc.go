// Package openssl builds OpenSSL for a single Windows target.
//
// The orchestrator only depends on the [Builder] contract: given a target
// triple, an output directory and a toolchain environment, leave an install
// tree at <OutDir>/install or return an error. [Source] implements it by
// driving OpenSSL's own build system from a source checkout: the tree is
// copied to <OutDir>/build, configured with "perl Configure" for the MSVC
// target matching the triple, compiled with nmake and installed with
// "nmake install_sw". Every step runs with the supplied environment, which
// is where cl.exe, link.exe and the include and library paths come from.
//
// [Version] reads the release version from a source checkout, which names
// the output archive.
package openssl
