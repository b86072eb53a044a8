package main

import "github.com/protonav/protonav/pkg/protonav"

func main() {
	protonav.Execute()
}
