package version

// AppVersion is the current docguard release version.
// Bump this when cutting a release.
const AppVersion = "0.3.1"
