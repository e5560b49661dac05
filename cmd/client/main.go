package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/authsvc/internal/client/cli"
	"github.com/dmitrijs2005/authsvc/internal/client/client"
)

func main() {

	addr := flag.String("a", "127.0.0.1:50051", "auth server address")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: client [-a address] signup|signin|signout [args]")
		os.Exit(2)
	}

	c, err := client.NewGRPCClient(*addr)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer c.Close()

	app := cli.NewApp(c, os.Stdin, os.Stdout)

	if err := app.Run(context.Background(), args[0], args[1:]); err != nil {
		log.Fatalf("%v", err)
	}
}
