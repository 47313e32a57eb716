package main

import "github.com/kamalsrini/PayrollTimecardAgent/cmd"

func main() {
	cmd.Execute()
}
