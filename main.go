package main

import "loan-amortizer/cli"

func main() {
	cli.Execute()
}
