package main

import "github.com/oshokin/autorise/cmd/alarm-scheduler/cmd"

func main() {
	cmd.Execute()
}
