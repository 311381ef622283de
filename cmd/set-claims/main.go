package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"admin-claims/internal/cli"
	"admin-claims/internal/config"
	"admin-claims/internal/firebase"
)

const defaultKeyFile = "serviceAccountKey.json"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out io.Writer) int {
	fs := flag.NewFlagSet("set-claims", flag.ContinueOnError)
	fs.SetOutput(out)
	key := fs.String("key", defaultKeyFile, "path to the service account key file")
	uid := fs.String("uid", os.Getenv("ADMIN_USER_UID"), "target firebase uid")
	mirror := fs.String("mirror", os.Getenv("ADMIN_CLAIM_MIRROR_COLLECTION"), "firestore collection to mirror the claim into (optional)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fi, err := os.Stat(*key); err != nil || fi.IsDir() {
		fmt.Fprintf(out, "ERROR: Service account key file not found at %s\n", *key)
		fmt.Fprintln(out, "Download it from the Firebase console (Project settings > Service accounts).")
		return 1
	}

	cli.Run(context.Background(), cli.Options{
		Config: config.Config{
			ServiceAccountPath: *key,
			AdminUserUID:       *uid,
			MirrorCollection:   *mirror,
		},
		Source:  firebase.FilePath{Path: *key},
		Out:     out,
		UIDHint: "Pass -uid=<uid> or set ADMIN_USER_UID.",
	})
	return 0
}
