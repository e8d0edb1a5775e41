package main

import "github.com/mshehata/spyroom/internal/server"

func main() {
	server.NewServer().Run()
}
