package main

import (
	"fmt"
	"os"

	"daylight-server/di"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "prod"
	}

	container := di.NewContainer(env)

	fmt.Println("starting server!")
	container.DaylightHttpServer.Start()
	fmt.Println("server exited!")
}
