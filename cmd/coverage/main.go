// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"github.com/xmidt-org/cama/coverage"
)

const applicationName = "coverage"

func newFlagSet(errors io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet(applicationName, pflag.ContinueOnError)
	fs.SetOutput(errors)
	fs.StringP("file", "f", coverage.DefaultFile, "the coverage report to rewrite in place")
	return fs
}

func rewrite(arguments []string, output, errors io.Writer) int {
	fs := newFlagSet(errors)
	if err := fs.Parse(arguments); err != nil {
		return 2
	}

	file, _ := fs.GetString("file")
	s, err := coverage.RewriteFile(file)
	if err != nil {
		fmt.Fprintf(errors, "%s: %s\n", applicationName, err)
		return 1
	}

	fmt.Fprintf(output, "rewrote %d packages and %d classes in %s\n", s.Packages, s.Classes, file)
	return 0
}

func main() {
	os.Exit(rewrite(os.Args[1:], os.Stdout, os.Stderr))
}
