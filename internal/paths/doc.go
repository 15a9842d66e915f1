// Provides the on-disk locations opensslpack reads from and writes to.
//
// The optional config file follows XDG conventions on Linux and the
// platform-native conventions on macOS and Windows, with "opensslpack" as the
// subdirectory under the config base. Build directories are deterministic and
// derived from the working directory and the target triple, so that reruns
// reuse the same locations:
//
//	<workDir>/openssl-build/<triple>           per-target build output
//	<workDir>/openssl-build/<triple>/install   per-target install tree
package paths
