// Command sktplan is the cooperative back-office budget planning client.
package main

import "github.com/Kael-Dean/SKT-sub000/internal/cli"

func main() {
	cli.Execute()
}
