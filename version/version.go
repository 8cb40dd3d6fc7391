package version

// Version is set at build time with
// -ldflags "-X github.com/betterleaks/rgrep/version.Version=v1.2.3"
var Version = "version is set by build process"
