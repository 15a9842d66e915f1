// Package target holds the fixed list of Windows targets opensslpack builds.
//
// Each [Target] pairs a Rust-style target triple, which keys the per-target
// build directory, with the subdirectory its install tree occupies inside
// the output archive and the arguments that select the matching MSVC
// toolchain from vcvarsall.bat. The list is compiled in and is not
// configurable; [Select] only narrows it.
package target
