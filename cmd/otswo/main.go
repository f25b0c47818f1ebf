package main

import "github.com/OpenTraceLab/OpenTraceSWO/cmd/otswo/cmd"

func main() {
	cmd.Execute()
}
