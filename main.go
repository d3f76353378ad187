// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/krismajean/epstein-files-highlighter/cmd/efh"

func main() {
	cmd.Execute()
}
