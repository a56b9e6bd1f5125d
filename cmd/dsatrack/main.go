package main

import "dsa_tracker/cmd/dsatrack/root"

func main() {
	root.Execute()
}
