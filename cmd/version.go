package cmd

// Version is the semantic version of the binaries built from this module.
const Version = "0.1.0"
