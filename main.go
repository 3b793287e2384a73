package main

import "github.com/Tiliavir/schedule-monitor/cmd"

func main() {
	cmd.Execute()
}
