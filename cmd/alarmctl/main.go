package main

import "github.com/oshokin/autorise/cmd/alarmctl/cmd"

func main() {
	cmd.Execute()
}
