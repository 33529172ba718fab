// SPDX-License-Identifier: MPL-2.0

package main

import "jvmkit/internal/cli"

func main() {
	cli.Execute()
}
