package main

import "github.com/lmy441900/libutils/internal/cmd"

func main() {
	cmd.Execute()
}
