package version

var CurrentCommit string

// Version is the release tag baked into the binary.
const Version = "0.1.0"

// GitCommit is Version plus the commit suffix injected at build time.
var GitCommit = Version + CurrentCommit
