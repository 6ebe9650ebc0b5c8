package main

// Set at release time with -ldflags "-X main.Version=... -X main.GitCommit=... -X main.BuildDate=...".
var (
	Version   = "dev"
	GitCommit = ""
	BuildDate = "" // RFC3339
)
