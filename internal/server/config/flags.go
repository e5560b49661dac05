package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/authsvc/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-w int      bcrypt work factor for password hashing
//	-n int      session token size, random bytes before hex encoding
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-w", "-n"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.IntVar(&config.BcryptCost, "w", config.BcryptCost, "bcrypt work factor")
	fs.IntVar(&config.SessionTokenSize, "n", config.SessionTokenSize, "session token size (random bytes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
