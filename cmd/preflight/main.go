// cmd/preflight/main.go
package main

import (
	"fmt"
	"os"
	"strings"
)

func main() {
	fail := func(msg string) {
		fmt.Fprintln(os.Stderr, "✖", msg)
		os.Exit(1)
	}
	warn := func(msg string) { fmt.Fprintln(os.Stderr, "⚠", msg) }
	ok := func(msg string) { fmt.Println("✔", msg) }

	token := strings.TrimSpace(os.Getenv("GITHUB_TOKEN"))
	repo := strings.TrimSpace(os.Getenv("GITHUB_REPOSITORY"))
	sid := strings.TrimSpace(os.Getenv("TWILIO_ACCOUNT_SID"))
	auth := strings.TrimSpace(os.Getenv("TWILIO_AUTH_TOKEN"))
	addr := strings.TrimSpace(os.Getenv("ADDR"))

	if token == "" {
		fail("GITHUB_TOKEN is empty (the monitor run will abort).")
	}
	ok("GITHUB_TOKEN present")

	if repo == "" {
		fail("GITHUB_REPOSITORY is empty (the monitor run will abort).")
	}
	if !strings.Contains(repo, "/") {
		fail("GITHUB_REPOSITORY must be owner/name, got: " + repo)
	}
	ok("GITHUB_REPOSITORY=" + repo)

	if sid == "" || auth == "" {
		warn("TWILIO_ACCOUNT_SID/TWILIO_AUTH_TOKEN incomplete — notifications will be skipped.")
	} else {
		ok("Twilio credentials present")
	}

	if addr == "" {
		warn("ADDR is empty; the relay will default to :8080.")
	} else {
		ok("ADDR=" + addr)
	}

	ok("preflight passed")
}
