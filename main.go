package main

import "github.com/victor-kauan-coder/dashboard-relatorios/cmd"

func main() {
	cmd.Execute()
}
