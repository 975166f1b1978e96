package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/uyouii/chisquare-gof/common"
	"github.com/uyouii/chisquare-gof/report"
)

// Exit codes for different failure modes
const (
	ExitSuccess      = 0
	ExitInvalidInput = 1 // malformed numbers, lengths, alpha or config
	ExitError        = 2 // no critical value could be determined
)

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, report.Message(err))
		os.Exit(exitCode(err))
	}
	os.Exit(ExitSuccess)
}

func exitCode(err error) int {
	if errors.Is(err, common.ErrorInvalidInput) {
		return ExitInvalidInput
	}
	return ExitError
}
