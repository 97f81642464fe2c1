// SPDX-License-Identifier: MPL-2.0

// jmvdev is a developer tool for scaffolding jamovi modules and driving the
// external jamovi compiler.
package main

import cmd "jmvdev-cli/cmd/jmvdev"

func main() {
	cmd.Execute()
}
