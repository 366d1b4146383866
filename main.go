/*
Copyright © 2025 Stackctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package main

import "github.com/orien/stackctl/cmd"

func main() {
	cmd.Execute()
}
