package main

// _version is the version of docnotes reported by -version.
// Release builds override it with -ldflags.
var _version = "dev"
