// texgen - procedural texture generator
//
// texgen renders the gradients, checkers, cursor, grid tile and hue wheel
// textures used by the client.
package main

import "github.com/jmylchreest/texgen/internal/cli"

func main() {
	cli.Execute()
}
