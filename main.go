// Command rocketdoc loads, inspects and converts rocket and motor documents.
package main

import "github.com/papapumpkin/rocketdoc/cmd"

func main() {
	cmd.Execute()
}
