package cli

// Version is the tool's release version, printed by -V/--version.
const Version = "1.0.0"
