package main

import (
	"github.com/alien2112/menu-rwad-sub005/cmd"
)

func main() {
	cmd.Execute()
}
