package config

import (
	"flag"
	"io"
	"time"

	"github.com/furball-art/furball/internal/flagx"
)

// parseFlags overlays cfg with command-line flags.
//
//	-a string     gRPC bind address (e.g. ":50051")
//	-d string     PostgreSQL DSN; empty keeps documents in memory
//	-s string     JWT HMAC secret key
//	-t int        access token validity, minutes
//	-cas string   content store backend: memory, localfs or s3
//	-cas-dir string  localfs root directory
//	-b string     S3 bucket
//	-e string     S3 base endpoint
//	-l string     log level
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-s", "-t", "-cas", "-cas-dir", "-b", "-e", "-l"})

	fs := flag.NewFlagSet("docnode", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.EndpointAddrGRPC, "a", cfg.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "secret key")
	validity := fs.Int("t", int(cfg.AccessTokenValidityDuration.Minutes()), "access token validity (in minutes)")
	fs.StringVar(&cfg.CASBackend, "cas", cfg.CASBackend, "content store backend")
	fs.StringVar(&cfg.LocalCASDir, "cas-dir", cfg.LocalCASDir, "localfs content store directory")
	fs.StringVar(&cfg.S3Bucket, "b", cfg.S3Bucket, "S3 bucket")
	fs.StringVar(&cfg.S3BaseEndpoint, "e", cfg.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.AccessTokenValidityDuration = time.Duration(*validity) * time.Minute
		}
	})
	return nil
}
