package main

import "github.com/Goldeenkkj/renomear-comprovantes/cmd"

func main() {
	cmd.Execute()
}
