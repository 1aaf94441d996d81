// Command tool is a command package inside the fixture tree.
package main

import "github.com/agentflare-ai/go-mkdocs/testdata/example"

func main() {
	println(example.Default.Greet())
}
